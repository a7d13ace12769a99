// Package storage — клиент объектного хранилища для картинок статей.
// Внешний вызов ограничен бюджетом времени: просроченный запрос
// завершается ошибкой Timeout, а не висит бесконечно.
package storage

import (
	"context"
	"io"
	"time"

	"pressroom/internal/apperror"
	"pressroom/internal/config"
	"pressroom/internal/logger"

	storage_go "github.com/supabase-community/storage-go"
	"go.uber.org/zap"
)

// Uploader — контракт объектного хранилища для сервисного слоя.
type Uploader interface {
	Upload(ctx context.Context, path, contentType string, data io.Reader) (string, error)
}

type SupabaseStorage struct {
	client  *storage_go.Client
	bucket  string
	timeout time.Duration
}

func NewSupabaseStorage(cfg *config.Config) *SupabaseStorage {
	client := storage_go.NewClient(cfg.SupabaseURL+"/storage/v1", cfg.SupabaseKey, nil)
	return &SupabaseStorage{
		client:  client,
		bucket:  cfg.StorageBucket,
		timeout: cfg.StorageTimeout,
	}
}

// Upload кладёт файл в бакет и возвращает публичный URL.
func (s *SupabaseStorage) Upload(ctx context.Context, path, contentType string, data io.Reader) (string, error) {
	log := logger.WithCtx(ctx)
	log.Info("Загрузка файла в хранилище",
		zap.String("bucket", s.bucket),
		zap.String("path", path),
		zap.Duration("timeout", s.timeout),
	)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Клиент хранилища не принимает контекст, поэтому бюджет
	// контролируем сами: гонка вызова против дедлайна.
	done := make(chan error, 1)
	go func() {
		upsert := true
		_, err := s.client.UploadFile(s.bucket, path, data, storage_go.FileOptions{
			ContentType: &contentType,
			Upsert:      &upsert,
		})
		done <- err
	}()

	select {
	case <-ctx.Done():
		log.Warn("Загрузка файла не уложилась в бюджет",
			zap.String("path", path),
			zap.Duration("timeout", s.timeout),
		)
		return "", apperror.Wrap(apperror.KindTimeout, "хранилище не ответило вовремя", ctx.Err())
	case err := <-done:
		if err != nil {
			log.Error("Хранилище вернуло ошибку", zap.String("path", path), zap.Error(err))
			return "", apperror.Wrap(apperror.KindProviderError, "ошибка хранилища", err)
		}
	}

	url := s.client.GetPublicUrl(s.bucket, path).SignedURL
	log.Info("Файл загружен", zap.String("path", path), zap.String("url", url))
	return url, nil
}
