package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pressroom/internal/logger"
	"pressroom/internal/models"
	"pressroom/internal/services"
	helpers "pressroom/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type FeedHandler struct {
	feedService *services.FeedService
}

func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// List godoc
// @Summary Публичная лента: опубликованные статьи активных разделов
// @Description Фильтры: ?featured=true — только главные, ?section=имя — по разделу
// @Tags feed
// @Produce json
// @Param featured query bool false "Только главные новости"
// @Param section query string false "Имя раздела"
// @Success 200 {array} models.FeedItem
// @Router /api/feed [get]
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	f := models.FeedFilter{
		FeaturedOnly: strings.ToLower(r.URL.Query().Get("featured")) == "true",
		SectionName:  r.URL.Query().Get("section"),
	}

	items, err := h.feedService.List(r.Context(), f)
	if err != nil {
		log.Error("Ошибка получения ленты", zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	log.Info("Лента получена", zap.Int("count", len(items)))
	helpers.JSON(w, http.StatusOK, items)
}

// Get godoc
// @Summary Опубликованная статья по ID
// @Tags feed
// @Produce json
// @Param id path int true "ID статьи"
// @Success 200 {object} models.FeedItem
// @Failure 404 {string} string "Не найдено"
// @Router /api/feed/{id} [get]
func (h *FeedHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	item, err := h.feedService.GetByID(r.Context(), id)
	if err != nil {
		log.Warn("Статья ленты не найдена", zap.Int64("id", id))
		helpers.Problem(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, item)
}
