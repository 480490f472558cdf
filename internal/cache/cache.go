// cache: кэш публичных выборок (новости, рубрики, баннеры, логотипы) в Redis.
// Значения хранятся как JSON; любая запись в панель инвалидирует ключи целиком.
//
// У каждого ключа есть счётчик поколения: Invalidate увеличивает его, а Set
// пишет значение только если поколение не сменилось с момента Get. Так чтение,
// начавшееся до инвалидации, не вернёт в кэш устаревшую выборку.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ключи публичных выборок.
const (
	KeyNews       = "news"
	KeyCategories = "categories"
	KeyBanners    = "banners"
	KeyLogos      = "logos"
)

// AllKeys: все ключи публичных выборок.
var AllKeys = []string{KeyNews, KeyCategories, KeyBanners, KeyLogos}

// ErrStale: ключ инвалидирован между Get и Set, значение не записано.
var ErrStale = errors.New("cache: generation changed")

// PublicCache: контракт кэша публичного API.
type PublicCache interface {
	// Get читает значение в dst и сообщает, было ли оно в кэше,
	// а также текущее поколение ключа для последующего Set.
	Get(ctx context.Context, key string, dst any) (gen int64, hit bool, err error)
	// Set сохраняет значение с TTL кэша, если поколение ключа всё ещё gen;
	// иначе возвращает ErrStale.
	Set(ctx context.Context, key string, gen int64, v any) error
	// Invalidate удаляет перечисленные ключи и сдвигает их поколения.
	Invalidate(ctx context.Context, keys ...string) error
	// Close закрывает клиент.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой: используется "panel:public:".
func NewRedisCache(ctx context.Context, redisURL, prefix string, ttl time.Duration) (PublicCache, error) {
	if prefix == "" {
		prefix = "panel:public:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) key(k string) string { return c.prefix + k }

func (c *redisCache) genKey(k string) string { return c.prefix + "gen:" + k }

func (c *redisCache) Get(ctx context.Context, key string, dst any) (int64, bool, error) {
	pipe := c.rdb.Pipeline()
	val := pipe.Get(ctx, c.key(key))
	genCmd := pipe.Get(ctx, c.genKey(key))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, err
	}

	gen, err := genCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, false, err
	}

	raw, err := val.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return gen, false, nil
		}

		return gen, false, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return gen, false, err
	}

	return gen, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, gen int64, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	gk := c.genKey(key)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, gk).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return ErrStale
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, c.key(key), raw, c.ttl)
			return nil
		})
		return err
	}, gk)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}

	return err
}

func (c *redisCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, k := range keys {
			p.Del(ctx, c.key(k))
			p.Incr(ctx, c.genKey(k))
		}
		return nil
	})

	return err
}

func (c *redisCache) Close() error { return c.rdb.Close() }

// Nop возвращает кэш, который ничего не хранит (Redis не настроен).
func Nop() PublicCache { return nopCache{} }

type nopCache struct{}

func (nopCache) Get(context.Context, string, any) (int64, bool, error) { return 0, false, nil }
func (nopCache) Set(context.Context, string, int64, any) error         { return nil }
func (nopCache) Invalidate(context.Context, ...string) error           { return nil }
func (nopCache) Close() error                                          { return nil }
