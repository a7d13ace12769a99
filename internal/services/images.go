package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"pressroom/internal/logger"
	"pressroom/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageService — загрузка иллюстраций статей в объектное хранилище.
type ImageService struct {
	store storage.Uploader
}

func NewImageService(store storage.Uploader) *ImageService {
	return &ImageService{store: store}
}

// Upload сохраняет файл под ключом images/ГГГГ/ММ/uuid.расширение
// и возвращает публичный URL.
func (s *ImageService) Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	log := logger.WithCtx(ctx)

	ext := strings.ToLower(filepath.Ext(filename))
	now := time.Now()
	key := fmt.Sprintf("images/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.NewString(), ext)

	log.Info("Загрузка иллюстрации", zap.String("filename", filename), zap.String("key", key))

	url, err := s.store.Upload(ctx, key, contentType, data)
	if err != nil {
		log.Error("Ошибка загрузки иллюстрации", zap.String("key", key), zap.Error(err))
		return "", err
	}

	log.Info("Иллюстрация загружена", zap.String("url", url))
	return url, nil
}
