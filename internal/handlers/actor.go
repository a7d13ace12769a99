package handlers

import (
	"net/http"

	"pressroom/internal/middleware"
	"pressroom/internal/models"
	"pressroom/internal/workflow"
)

// actorFrom собирает явный контекст актора из claims запроса.
func actorFrom(r *http.Request) workflow.Actor {
	name, _ := r.Context().Value(middleware.ContextName).(string)
	role, _ := r.Context().Value(middleware.ContextRole).(string)
	return workflow.Actor{Name: name, Role: models.Role(role)}
}
