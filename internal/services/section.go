package services

import (
	"context"

	"pressroom/internal/logger"
	"pressroom/internal/models"
	"pressroom/internal/repository"
	"pressroom/internal/workflow"

	"go.uber.org/zap"
)

// SectionService — реестр разделов. Управляется только редакторами
// (роль отсекается на маршрутах), удаление защищено ссылочным барьером.
type SectionService struct {
	repo     repository.SectionRepo
	articles repository.ArticleRepo
}

func NewSectionService(repo repository.SectionRepo, articles repository.ArticleRepo) *SectionService {
	return &SectionService{repo: repo, articles: articles}
}

func (s *SectionService) Create(ctx context.Context, sec *models.Section) (int, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание раздела", zap.String("name", sec.Name))

	id, err := s.repo.Create(ctx, sec)
	if err != nil {
		log.Error("Ошибка создания раздела (repo)", zap.Error(err))
		return 0, err
	}

	log.Info("Раздел создан", zap.Int("id", id))
	return id, nil
}

func (s *SectionService) Update(ctx context.Context, sec *models.Section) error {
	log := logger.WithCtx(ctx)
	log.Info("Обновление раздела", zap.Int("id", sec.ID), zap.String("name", sec.Name))

	if err := s.repo.Update(ctx, sec); err != nil {
		log.Error("Ошибка обновления раздела (repo)", zap.Int("id", sec.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *SectionService) Toggle(ctx context.Context, id int) (*models.Section, error) {
	log := logger.WithCtx(ctx)

	sec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Раздел не найден при переключении (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.SetActive(ctx, id, !sec.IsActive); err != nil {
		log.Error("Ошибка переключения раздела (repo)", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	sec.IsActive = !sec.IsActive

	log.Info("Раздел переключён", zap.Int("id", id), zap.Bool("is_active", sec.IsActive))
	return sec, nil
}

func (s *SectionService) Delete(ctx context.Context, id int) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление раздела", zap.Int("id", id))

	sec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Раздел не найден при удалении (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}

	count, err := s.articles.CountBySection(ctx, id)
	if err != nil {
		log.Error("Ошибка подсчёта статей раздела (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}

	if err := workflow.AttemptDeleteSection(*sec, count); err != nil {
		log.Warn("Удаление раздела отклонено",
			zap.Int("id", id),
			zap.Int("articles_count", count),
			zap.Error(err),
		)
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления раздела (repo)", zap.Int("id", id), zap.Error(err))
		return err
	}

	log.Info("Раздел удалён", zap.Int("id", id))
	return nil
}

func (s *SectionService) ListActive(ctx context.Context) ([]*models.Section, error) {
	return s.repo.List(ctx, true)
}

func (s *SectionService) ListWithCounts(ctx context.Context) ([]models.SectionWithCount, error) {
	return s.repo.ListWithCounts(ctx)
}
