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

type SectionHandler struct{ svc *services.SectionService }

func NewSectionHandler(s *services.SectionService) *SectionHandler {
	return &SectionHandler{svc: s}
}

// ListActive godoc
// @Summary      Активные разделы (публично)
// @Tags         sections
// @Produce      json
// @Success      200 {array} models.Section
// @Failure      500 {object} map[string]string
// @Router       /api/sections [get]
func (h *SectionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.ListActive(r.Context())
	if err != nil {
		log.Error("sections: ошибка получения активных разделов", zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	log.Info("sections: активные разделы получены", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// ListWithCounts godoc
// @Summary      Все разделы со счётчиком статей
// @Description  Доступно только редактору
// @Tags         sections
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {array} models.SectionWithCount
// @Failure      500 {object} map[string]string
// @Router       /api/editor/sections [get]
func (h *SectionHandler) ListWithCounts(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	list, err := h.svc.ListWithCounts(r.Context())
	if err != nil {
		log.Error("sections: ошибка получения разделов", zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	log.Info("sections: разделы получены", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// Create godoc
// @Summary      Создать раздел
// @Description  Доступно только редактору
// @Tags         sections
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body  models.Section  true  "Данные раздела"
// @Success      201   {object} map[string]int
// @Failure      400   {object} map[string]string
// @Router       /api/editor/sections [post]
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.Section
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("sections: невалидный JSON при создании раздела", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "bad json")
		return
	}

	log.Info("sections: создание раздела", zap.String("name", req.Name))

	id, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		log.Error("sections: ошибка создания раздела", zap.Error(err))
		helpers.Problem(w, err)
		return
	}

	log.Info("sections: раздел создан", zap.Int("id", id))
	helpers.JSON(w, http.StatusCreated, map[string]int{"id": id})
}

// Update godoc
// @Summary      Обновить раздел
// @Description  Доступно только редактору
// @Tags         sections
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "ID раздела"
// @Param        body  body  models.Section  true  "Обновлённые данные"
// @Success      204   {string} string "No Content"
// @Failure      400   {object} map[string]string
// @Router       /api/editor/sections/{id} [patch]
func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Warn("sections: неверный id раздела при обновлении", zap.String("raw", idStr))
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	var req models.Section
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("sections: невалидный JSON при обновлении раздела", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "bad json")
		return
	}
	req.ID = id

	if err := h.svc.Update(r.Context(), &req); err != nil {
		log.Error("sections: ошибка обновления раздела", zap.Error(err), zap.Int("id", id))
		helpers.Problem(w, err)
		return
	}

	log.Info("sections: раздел обновлён", zap.Int("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// Toggle godoc
// @Summary      Переключить активность раздела
// @Description  Доступно только редактору
// @Tags         sections
// @Security     ApiKeyAuth
// @Produce      json
// @Param        id  path  int  true  "ID раздела"
// @Success      200 {object} models.Section
// @Failure      404 {object} map[string]string
// @Router       /api/editor/sections/{id}/toggle [patch]
func (h *SectionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Warn("sections: неверный id раздела при переключении", zap.String("raw", idStr))
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	sec, err := h.svc.Toggle(r.Context(), id)
	if err != nil {
		log.Error("sections: ошибка переключения раздела", zap.Error(err), zap.Int("id", id))
		helpers.Problem(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, sec)
}

// Delete godoc
// @Summary      Удалить раздел
// @Description  Доступно только редактору; раздел со статьями не удаляется
// @Tags         sections
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "ID раздела"
// @Success      204 {string} string "No Content"
// @Failure      409 {object} map[string]string "Раздел используется"
// @Router       /api/editor/sections/{id} [delete]
func (h *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Warn("sections: неверный id раздела при удалении", zap.String("raw", idStr))
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	log.Info("sections: удаление раздела", zap.Int("id", id))
	if err := h.svc.Delete(r.Context(), id); err != nil {
		log.Warn("sections: удаление раздела отклонено", zap.Error(err), zap.Int("id", id))
		helpers.Problem(w, err)
		return
	}

	log.Info("sections: раздел удалён", zap.Int("id", id))
	w.WriteHeader(http.StatusNoContent)
}
