package services

import (
	"context"

	"pressroom/internal/apperror"
	"pressroom/internal/logger"
	"pressroom/internal/models"
	"pressroom/internal/repository"
	"pressroom/internal/workflow"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// ArticleService — оркестрация панелей репортёра и редактора.
// Вся логика переходов живёт в workflow; здесь только валидация
// полей на входе, вызов движка и сохранение результата.
type ArticleService interface {
	Create(ctx context.Context, actor workflow.Actor, req models.CreateArticleRequest) (*models.Article, error)
	Edit(ctx context.Context, actor workflow.Actor, id int64, patch models.ArticlePatch) (*models.Article, error)
	Transition(ctx context.Context, actor workflow.Actor, id int64, target models.ArticleState) (*models.Article, error)
	ListOwn(ctx context.Context, actor workflow.Actor) ([]*models.Article, error)
	ListForReview(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Delete(ctx context.Context, actor workflow.Actor, id int64) error
}

type articleService struct {
	repo   repository.ArticleRepo
	policy *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepo) ArticleService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &articleService{repo: repo, policy: p}
}

func (s *articleService) Create(ctx context.Context, actor workflow.Actor, req models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи",
		zap.String("author", actor.Name),
		zap.String("title", req.Title),
	)

	req.Body = s.policy.Sanitize(req.Body)

	a, err := workflow.NewArticle(actor, req)
	if err != nil {
		log.Warn("Создание статьи отклонено", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, &a)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана", zap.Int64("id", created.ID), zap.String("state", string(created.State)))
	return created, nil
}

func (s *articleService) Edit(ctx context.Context, actor workflow.Actor, id int64, patch models.ArticlePatch) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Правка статьи", zap.Int64("id", id), zap.String("actor", actor.Name))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья для правки не найдена (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if patch.Body != nil {
		clean := s.policy.Sanitize(*patch.Body)
		patch.Body = &clean
	}

	out, err := workflow.AttemptEdit(*a, actor, patch)
	if err != nil {
		log.Warn("Правка отклонена", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Update(ctx, &out); err != nil {
		log.Error("Ошибка сохранения правки (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Статья обновлена", zap.Int64("id", id))
	return &out, nil
}

func (s *articleService) Transition(ctx context.Context, actor workflow.Actor, id int64, target models.ArticleState) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Смена состояния статьи",
		zap.Int64("id", id),
		zap.String("target", string(target)),
		zap.String("actor", actor.Name),
	)

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья не найдена при смене состояния (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	out, err := workflow.AttemptTransition(*a, actor, target)
	if err != nil {
		log.Warn("Переход отклонён",
			zap.Int64("id", id),
			zap.String("from", string(a.State)),
			zap.String("to", string(target)),
			zap.Error(err),
		)
		return nil, err
	}

	// Повторный перевод в то же состояние — без записи в базу.
	if out.State == a.State {
		log.Info("Состояние уже установлено", zap.Int64("id", id), zap.String("state", string(out.State)))
		return a, nil
	}

	if err := s.repo.Update(ctx, &out); err != nil {
		log.Error("Ошибка сохранения перехода (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	log.Info("Состояние изменено",
		zap.Int64("id", id),
		zap.String("from", string(a.State)),
		zap.String("to", string(out.State)),
	)
	return &out, nil
}

func (s *articleService) ListOwn(ctx context.Context, actor workflow.Actor) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Список статей автора", zap.String("author", actor.Name))

	list, err := s.repo.ListByAuthor(ctx, actor.Name)
	if err != nil {
		log.Error("Ошибка получения статей автора (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Статьи автора получены", zap.Int("count", len(list)))
	return list, nil
}

// ListForReview — подборка редакторской панели: всё, что ждёт решения
// или уже прошло через него.
func (s *articleService) ListForReview(ctx context.Context) ([]*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Список статей на проверку")

	list, err := s.repo.ListByStates(ctx,
		models.StateTerminated, models.StatePublished, models.StateDeactivated,
	)
	if err != nil {
		log.Error("Ошибка получения статей на проверку (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Статьи на проверку получены", zap.Int("count", len(list)))
	return list, nil
}

func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение статьи по ID", zap.Int64("id", id))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья не найдена (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, actor workflow.Actor, id int64) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.Int64("id", id), zap.String("actor", actor.Name))

	// Физическое удаление — только явное действие редактора.
	if actor.Role != models.RoleEditor {
		return apperror.New(apperror.KindPermissionDenied, "удалять статьи может только редактор")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}

	log.Info("Статья удалена", zap.Int64("id", id))
	return nil
}
