package routes

import (
	"pressroom/internal/handlers"
	"pressroom/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	articleHandler *handlers.ArticleHandler,
	sectionHandler *handlers.SectionHandler,
	feedHandler *handlers.FeedHandler,
	imageHandler *handlers.ImageHandler,
) {
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	api.HandleFunc("/feed", feedHandler.List).Methods("GET")
	api.HandleFunc("/feed/{id:[0-9]+}", feedHandler.Get).Methods("GET")
	api.HandleFunc("/sections", sectionHandler.ListActive).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth)

	protected.HandleFunc("/profile", authHandler.Profile).Methods("GET")

	// Загрузка картинок доступна обеим ролям
	images := protected.PathPrefix("/images").Subrouter()
	images.Use(middleware.AnyRole("reporter", "editor"))
	images.HandleFunc("", imageHandler.Upload).Methods("POST")

	// Панель репортёра
	reporter := protected.PathPrefix("/reporter").Subrouter()
	reporter.Use(middleware.AnyRole("reporter", "editor"))
	reporter.HandleFunc("/articles", articleHandler.ListOwn).Methods("GET")
	reporter.HandleFunc("/articles", articleHandler.Create).Methods("POST")
	reporter.HandleFunc("/articles/{id:[0-9]+}", articleHandler.Edit).Methods("PATCH")
	reporter.HandleFunc("/articles/{id:[0-9]+}/submit", articleHandler.Submit).Methods("POST")

	// Панель редактора
	editor := protected.PathPrefix("/editor").Subrouter()
	editor.Use(middleware.OnlyRole("editor"))
	editor.HandleFunc("/articles", articleHandler.ListForReview).Methods("GET")
	editor.HandleFunc("/articles/{id:[0-9]+}", articleHandler.Get).Methods("GET")
	editor.HandleFunc("/articles/{id:[0-9]+}", articleHandler.Edit).Methods("PATCH")
	editor.HandleFunc("/articles/{id:[0-9]+}", articleHandler.Delete).Methods("DELETE")
	editor.HandleFunc("/articles/{id:[0-9]+}/publish", articleHandler.Publish).Methods("POST")
	editor.HandleFunc("/articles/{id:[0-9]+}/deactivate", articleHandler.Deactivate).Methods("POST")

	editor.HandleFunc("/sections", sectionHandler.ListWithCounts).Methods("GET")
	editor.HandleFunc("/sections", sectionHandler.Create).Methods("POST")
	editor.HandleFunc("/sections/{id:[0-9]+}", sectionHandler.Update).Methods("PATCH")
	editor.HandleFunc("/sections/{id:[0-9]+}/toggle", sectionHandler.Toggle).Methods("PATCH")
	editor.HandleFunc("/sections/{id:[0-9]+}", sectionHandler.Delete).Methods("DELETE")
}
