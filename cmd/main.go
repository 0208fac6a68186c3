package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"studentflow/studentflow/config"
	"studentflow/studentflow/database"
	"studentflow/studentflow/middleware"
	"studentflow/studentflow/routes"
	"studentflow/studentflow/services"
	"studentflow/studentflow/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	db, err := database.Setup(cfg)
	if err != nil {
		appLogger.Fatalw("Failed to initialize database", "error", err)
	}
	defer db.Close()

	authService := services.NewAuthService(cfg.JWT.Secret, cfg.JWT.ExpirationHours)
	services.AuthServiceInstance = authService

	userService := services.NewUserService(authService)
	services.UserServiceInstance = userService

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(middleware.CORSMiddleware(cfg.App.AllowedOrigins))

	routes.RegisterHealthRoutes(router)
	routes.RegisterAuthRoutes(router, db, authService, userService)

	// Everything below requires a verified identity.
	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.AuthMiddleware(db, authService))

	routes.RegisterMeRoute(apiGroup, db, userService)
	routes.RegisterTaskRoutes(apiGroup, db, services.TaskServiceInstance)
	routes.RegisterEventRoutes(apiGroup, db, services.EventServiceInstance)
	routes.RegisterExpenseRoutes(apiGroup, db, services.ExpenseServiceInstance)
	routes.RegisterNoteRoutes(apiGroup, db, services.NoteServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		appLogger.Infow("Shutting down server")
		db.Close()
		os.Exit(0)
	}()

	appLogger.Infow("API server is running", "port", cfg.App.Port)
	if err := http.ListenAndServe(":"+cfg.App.Port, router); err != nil {
		appLogger.Fatalw("Failed to start server", "error", err)
	}
}
