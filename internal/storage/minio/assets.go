package minio

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/pribylovaa/go-news-panel/internal/models"
	"github.com/pribylovaa/go-news-panel/internal/storage"
)

// Upload кладёт файл в бакет под ключом "<folder>/<uuid><ext>".
// Размер и тип проверяются по конфигу; для логотипов действует отдельный allow-list.
// Идентификатор изображения: ключ объекта.
func (s *AssetsStorage) Upload(ctx context.Context, folder string, file models.Upload) (models.Asset, error) {
	const op = "storage/minio/assets/Upload"

	if file.Data == nil || file.Size <= 0 || file.Size > s.cfg.Assets.MaxSizeBytes {
		return models.Asset{}, fmt.Errorf("%s: size: %w", op, storage.ErrInvalidArgument)
	}

	allow := s.cfg.Assets.AllowedContentTypes
	if folder == storage.FolderLogo {
		allow = s.cfg.Assets.LogoContentTypes
	}

	contentType := normalizeContentType(file.ContentType)
	if !slices.Contains(allow, contentType) {
		return models.Asset{}, fmt.Errorf("%s: content type %q: %w", op, contentType, storage.ErrInvalidArgument)
	}

	key := path.Join(folder, uuid.NewString()+extension(contentType))

	_, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, key, file.Data, file.Size, mclient.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return models.Asset{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.Asset{URL: s.publicURL(key), ID: key}, nil
}

// Destroy удаляет объект по ключу. Отсутствующий объект: storage.ErrNotFound.
func (s *AssetsStorage) Destroy(ctx context.Context, assetID string) error {
	const op = "storage/minio/assets/Destroy"

	key := strings.TrimPrefix(strings.TrimSpace(assetID), "/")
	if key == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if _, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{}); err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: stat: %w", op, err)
	}

	if err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, key, mclient.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: remove: %w", op, err)
	}

	return nil
}

// publicURL собирает адрес объекта: от PublicBaseURL, если он задан,
// иначе path-style от endpoint клиента.
func (s *AssetsStorage) publicURL(key string) string {
	if base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/"); base != "" {
		return base + "/" + key
	}

	u := *s.client.EndpointURL()
	u.Path = path.Join("/", s.cfg.S3.Bucket, key)

	return u.String()
}

// normalizeContentType отбрасывает параметры ("image/png; charset=...").
func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}

	return strings.ToLower(strings.TrimSpace(ct))
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/svg+xml":
		return ".svg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
