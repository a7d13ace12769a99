package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pressroom/internal/logger"
	"pressroom/internal/models"
	"pressroom/internal/services"
	helpers "pressroom/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

func articleID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

// ListOwn godoc
// @Summary Статьи текущего репортёра
// @Tags reporter
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Article
// @Router /api/reporter/articles [get]
func (h *ArticleHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	actor := actorFrom(r)

	list, err := h.svc.ListOwn(r.Context(), actor)
	if err != nil {
		log.Error("Ошибка получения статей автора", zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	log.Info("Статьи автора получены", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// Create godoc
// @Summary Создать статью (репортёр, состояние drafting)
// @Tags reporter
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CreateArticleRequest true "Данные статьи"
// @Success 201 {object} models.Article
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/reporter/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при создании статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	created, err := h.svc.Create(r.Context(), actorFrom(r), req)
	if err != nil {
		log.Warn("Создание статьи отклонено", zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, created)
}

// Edit godoc
// @Summary Править поля статьи (автор — до публикации, редактор — всегда)
// @Tags reporter
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID статьи"
// @Param input body models.ArticlePatch true "Изменяемые поля"
// @Success 200 {object} models.Article
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 403 {string} string "Правка запрещена"
// @Router /api/reporter/articles/{id} [patch]
func (h *ArticleHandler) Edit(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	var patch models.ArticlePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Warn("Невалидный JSON при правке статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	out, err := h.svc.Edit(r.Context(), actorFrom(r), id, patch)
	if err != nil {
		log.Warn("Правка статьи отклонена", zap.Int64("id", id), zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, out)
}

// Submit godoc
// @Summary Отдать статью на проверку (drafting → terminated)
// @Tags reporter
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.Article
// @Failure 403 {string} string "Действие запрещено"
// @Failure 409 {string} string "Недопустимый переход"
// @Router /api/reporter/articles/{id}/submit [post]
func (h *ArticleHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.StateTerminated)
}

// ListForReview godoc
// @Summary Статьи редакторской панели (terminated/published/deactivated)
// @Tags editor
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Article
// @Router /api/editor/articles [get]
func (h *ArticleHandler) ListForReview(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.ListForReview(r.Context())
	if err != nil {
		log.Error("Ошибка получения статей на проверку", zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	log.Info("Статьи на проверку получены", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// Publish godoc
// @Summary Опубликовать статью (редактор)
// @Tags editor
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.Article
// @Failure 403 {string} string "Действие запрещено"
// @Failure 409 {string} string "Недопустимый переход"
// @Router /api/editor/articles/{id}/publish [post]
func (h *ArticleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.StatePublished)
}

// Deactivate godoc
// @Summary Снять статью с публикации (редактор)
// @Tags editor
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.Article
// @Failure 409 {string} string "Недопустимый переход"
// @Router /api/editor/articles/{id}/deactivate [post]
func (h *ArticleHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.StateDeactivated)
}

func (h *ArticleHandler) transition(w http.ResponseWriter, r *http.Request, target models.ArticleState) {
	log := logger.WithCtx(r.Context())

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	out, err := h.svc.Transition(r.Context(), actorFrom(r), id, target)
	if err != nil {
		log.Warn("Переход отклонён",
			zap.Int64("id", id),
			zap.String("target", string(target)),
			zap.Error(err),
		)
		helpers.Problem(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, out)
}

// Get godoc
// @Summary Статья по ID (для панелей)
// @Tags editor
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.Article
// @Failure 404 {string} string "Не найдено"
// @Router /api/editor/articles/{id} [get]
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		helpers.Problem(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, a)
}

// Delete godoc
// @Summary Удалить статью (только редактор)
// @Tags editor
// @Security ApiKeyAuth
// @Param id path int true "ID статьи"
// @Success 200 {string} string "Удалено"
// @Failure 404 {string} string "Не найдено"
// @Router /api/editor/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, ok := articleID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	if err := h.svc.Delete(r.Context(), actorFrom(r), id); err != nil {
		log.Error("Ошибка удаления статьи", zap.Int64("id", id), zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	log.Info("Статья удалена", zap.Int64("id", id))
	helpers.JSON(w, http.StatusOK, "Удалено")
}
