package app

import (
	"pressroom/internal/config"
	"pressroom/internal/db"
	"pressroom/internal/handlers"
	"pressroom/internal/repository"
	"pressroom/internal/routes"
	"pressroom/internal/services"
	"pressroom/internal/storage"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	articleRepo := repository.NewArticleRepo(conn)
	sectionRepo := repository.NewSectionRepo(conn)

	// Хранилище картинок
	supabase := storage.NewSupabaseStorage(cfg)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)
	sectionService := services.NewSectionService(sectionRepo, articleRepo)
	feedService := services.NewFeedService(articleRepo)
	imageService := services.NewImageService(supabase)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	sectionHandler := handlers.NewSectionHandler(sectionService)
	feedHandler := handlers.NewFeedHandler(feedService)
	imageHandler := handlers.NewImageHandler(imageService)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, articleHandler, sectionHandler, feedHandler, imageHandler)

	return router, nil
}
