package handlers

import (
	"net/http"

	"pressroom/internal/logger"
	"pressroom/internal/services"
	helpers "pressroom/internal/utils/helpers"

	"go.uber.org/zap"
)

type ImageHandler struct {
	images *services.ImageService
}

func NewImageHandler(images *services.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload godoc
// @Summary Загрузка иллюстрации статьи
// @Description Файл уходит в объектное хранилище; в ответе публичный URL
// @Tags images
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл изображения"
// @Success 201 {object} map[string]string
// @Failure 400 {string} string "Ошибка загрузки"
// @Failure 504 {string} string "Хранилище не ответило вовремя"
// @Router /api/images [post]
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	log.Info("Запрос на загрузку иллюстрации")

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10MB
		log.Warn("Ошибка разбора формы при загрузке иллюстрации", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Ошибка разбора формы")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("Файл не найден при загрузке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Файл не найден")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.images.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		log.Error("Ошибка загрузки иллюстрации", zap.String("filename", header.Filename), zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	log.Info("Иллюстрация загружена", zap.String("filename", header.Filename), zap.String("url", url))
	helpers.JSON(w, http.StatusCreated, map[string]string{"url": url})
}
