// minio предоставляет реализацию storage.AssetStorage на базе MinIO/S3.
// minio.go - конструктор клиента: нормализует endpoint,
// подбирает Secure по схеме и проверяет наличие бакета.
// assets.go - загрузка и удаление изображений сущностей панели.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pribylovaa/go-news-panel/internal/config"
	"github.com/pribylovaa/go-news-panel/internal/storage"
)

// AssetsStorage: адаптер MinIO для изображений рубрик, новостей, баннеров и логотипов.
type AssetsStorage struct {
	cfg    *config.Config
	client *mclient.Client
}

// New создаёт клиент MinIO и проверяет, что бакет существует.
func New(ctx context.Context, cfg *config.Config) (*AssetsStorage, error) {
	const op = "storage/minio/New"

	endpoint, secure := normalizeEndpoint(cfg.S3.Endpoint)

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.RootUser, cfg.S3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.S3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.S3.Bucket)
	}

	return &AssetsStorage{cfg: cfg, client: client}, nil
}

// normalizeEndpoint убирает схему из адреса; https включает Secure.
func normalizeEndpoint(raw string) (string, bool) {
	endpoint := strings.TrimRight(raw, "/")
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" && u.Host != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	return endpoint, secure
}

var _ storage.AssetStorage = (*AssetsStorage)(nil)
