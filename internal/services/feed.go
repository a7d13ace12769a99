package services

import (
	"context"

	"pressroom/internal/logger"
	"pressroom/internal/models"
	"pressroom/internal/repository"

	"go.uber.org/zap"
)

// FeedService — путь чтения: опубликованные статьи активных разделов,
// свежие первыми. Каждый запрос читает хранилище заново, кэша нет.
type FeedService struct {
	repo repository.ArticleRepo
}

func NewFeedService(repo repository.ArticleRepo) *FeedService {
	return &FeedService{repo: repo}
}

func (s *FeedService) List(ctx context.Context, f models.FeedFilter) ([]*models.FeedItem, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Запрос публичной ленты",
		zap.Bool("featured_only", f.FeaturedOnly),
		zap.String("section", f.SectionName),
	)

	items, err := s.repo.ListPublished(ctx, f)
	if err != nil {
		log.Error("Ошибка получения ленты (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Лента получена", zap.Int("count", len(items)))
	return items, nil
}

func (s *FeedService) GetByID(ctx context.Context, id int64) (*models.FeedItem, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Запрос статьи ленты", zap.Int64("id", id))

	it, err := s.repo.GetPublishedByID(ctx, id)
	if err != nil {
		log.Warn("Статья ленты не найдена (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return it, nil
}
