package assets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"screencraft-backend/internal/dataurl"
	"screencraft-backend/internal/models"
)

const (
	assetKeyPrefix = "asset:"
	assetOrderKey  = "assets:order"
)

// RedisStore backs the asset registry with Redis, for deployments where the
// generation API runs more than one replica behind a load balancer.
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Upload(ctx context.Context, uploads []models.AssetUpload) ([]models.AssetReference, error) {
	refs := make([]models.AssetReference, 0, len(uploads))

	for _, up := range uploads {
		id := uuid.NewString()
		fileName := up.FileName
		if fileName == "" {
			fileName = "asset-" + id
		}
		fileType := up.FileType
		if fileType == "" {
			fileType = "application/octet-stream"
		}

		pipe := s.client.TxPipeline()
		pipe.HSet(ctx, assetKeyPrefix+id, map[string]interface{}{
			"dataUrl":  up.DataURL,
			"fileName": fileName,
			"fileType": fileType,
			"category": up.Category,
		})
		pipe.RPush(ctx, assetOrderKey, id)
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("store asset %s: %w", id, err)
		}

		refs = append(refs, models.AssetReference{
			ID:       id,
			URL:      URLFor(id),
			FileName: up.FileName,
			Category: up.Category,
		})
		log.Printf("[ASSET] Stored asset %s: %s", id, up.FileName)
	}
	return refs, nil
}

func (s *RedisStore) Resolve(ctx context.Context, id string) (Content, error) {
	fields, err := s.client.HGetAll(ctx, assetKeyPrefix+id).Result()
	if err != nil {
		return Content{}, fmt.Errorf("load asset %s: %w", id, err)
	}
	if len(fields) == 0 {
		return Content{}, ErrNotFound
	}

	bytes, mime, err := dataurl.DecodeBinary(fields["dataUrl"], fields["fileType"])
	if err != nil {
		if errors.Is(err, dataurl.ErrNotDataURL) {
			return Content{}, ErrInvalidDataURL
		}
		return Content{}, fmt.Errorf("decode asset %s: %w", id, err)
	}
	return Content{Bytes: bytes, MimeType: mime, FileName: fields["fileName"]}, nil
}

func (s *RedisStore) Remove(ctx context.Context, id string) error {
	deleted, err := s.client.Del(ctx, assetKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete asset %s: %w", id, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	s.client.LRem(ctx, assetOrderKey, 1, id)
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]models.AssetReference, error) {
	ids, err := s.client.LRange(ctx, assetOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}

	refs := make([]models.AssetReference, 0, len(ids))
	for _, id := range ids {
		fields, err := s.client.HGetAll(ctx, assetKeyPrefix+id).Result()
		if err != nil {
			return nil, fmt.Errorf("load asset %s: %w", id, err)
		}
		if len(fields) == 0 {
			// order entry outlived the record; skip
			continue
		}
		refs = append(refs, models.AssetReference{
			ID:       id,
			URL:      URLFor(id),
			FileName: fields["fileName"],
			Category: fields["category"],
		})
	}
	return refs, nil
}
