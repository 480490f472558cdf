// config реализует конфигурацию panel-service: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config: корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load (флаг --config);
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	DB       DBConfig      `yaml:"db"`
	S3       S3Config      `yaml:"s3"`
	Assets   AssetsConfig  `yaml:"assets"`
	Auth     AuthConfig    `yaml:"auth"`
	Redis    RedisConfig   `yaml:"redis"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig: общий дедлайн обработки HTTP-запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// HTTPConfig: публичный REST-сервер.
// CORSOrigins: origin'ы браузерных клиентов; "*" разрешает любой.
type HTTPConfig struct {
	Host        string   `yaml:"host"         env:"HTTP_HOST"         env-default:"0.0.0.0"`
	Port        string   `yaml:"port"         env:"HTTP_PORT"         env-default:"5000"`
	CORSOrigins []string `yaml:"cors_origins" env:"HTTP_CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig: настройки подключения к MongoDB.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// S3Config: хранилище изображений (MinIO/S3).
// PublicBaseURL: базовый адрес, от которого строятся публичные ссылки на объекты;
// если пуст, ссылка строится от Endpoint и Bucket.
type S3Config struct {
	Endpoint      string `yaml:"endpoint"        env:"S3_ENDPOINT"      env-required:"true"`
	RootUser      string `yaml:"root_user"       env:"S3_ROOT_USER"     env-required:"true"`
	RootPassword  string `yaml:"root_password"   env:"S3_ROOT_PASSWORD" env-required:"true"`
	Bucket        string `yaml:"bucket"          env:"S3_BUCKET"        env-required:"true"`
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// AssetsConfig: ограничения на загружаемые изображения.
// Для логотипа действует отдельный (более узкий) allow-list.
type AssetsConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes"        env:"ASSETS_MAX_SIZE_BYTES"        env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"ASSETS_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/svg+xml"`
	LogoContentTypes    []string `yaml:"logo_content_types"    env:"ASSETS_LOGO_CONTENT_TYPES"    env-separator:"," env-default:"image/jpeg,image/png"`
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"JWT_SECRET" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"TOKEN_TTL"  env-default:"168h"`
	Issuer     string        `yaml:"issuer"      env:"ISSUER"     env-default:"panel-service"`
	BcryptCost int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// RedisConfig: кэш публичных выдач. Пустой URL отключает кэш.
type RedisConfig struct {
	URL    string        `yaml:"url"    env:"REDIS_URL"`
	TTL    time.Duration `yaml:"ttl"    env:"REDIS_TTL"    env-default:"60s"`
	Prefix string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"panel:public:"`
}

// MustLoad: обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) error {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return fmt.Errorf("failed to overlay env: %w", err)
		}

		return nil
	}

	switch {
	case path != "":
		if err := readFile(path); err != nil {
			return nil, err
		}
	case os.Getenv("CONFIG_PATH") != "":
		if err := readFile(os.Getenv("CONFIG_PATH")); err != nil {
			return nil, err
		}
	default:
		if _, err := os.Stat("local.yaml"); err == nil {
			if err := readFile("local.yaml"); err != nil {
				return nil, err
			}
			break
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate: базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0")
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31]")
	}

	if c.S3.Endpoint == "" {
		return fmt.Errorf("s3.endpoint is required")
	}

	if c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required")
	}

	if c.Assets.MaxSizeBytes <= 0 {
		return fmt.Errorf("assets.max_size_bytes must be > 0")
	}

	if len(c.Assets.AllowedContentTypes) == 0 {
		return fmt.Errorf("assets.allowed_content_types must not be empty")
	}

	if len(c.Assets.LogoContentTypes) == 0 {
		return fmt.Errorf("assets.logo_content_types must not be empty")
	}

	if len(c.HTTP.CORSOrigins) == 0 {
		return fmt.Errorf("http.cors_origins must not be empty")
	}

	if c.Redis.URL != "" && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 when redis.url is set")
	}

	return nil
}
