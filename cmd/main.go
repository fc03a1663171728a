package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/parthkumar123/backend/internal/app"
	"github.com/parthkumar123/backend/internal/config"
	"github.com/parthkumar123/backend/internal/controllers"
	"github.com/parthkumar123/backend/internal/middleware"
	"github.com/parthkumar123/backend/internal/repositories"
	"github.com/parthkumar123/backend/internal/services"
	"github.com/parthkumar123/backend/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	blacklistRepo := repositories.NewBlacklistRepository(application.DB)
	taskRepo := repositories.NewTaskRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	jwtService := services.NewJWTService(cfg)
	authService := services.NewAuthService(userRepo, blacklistRepo, jwtService, cfg)
	taskService := services.NewTaskService(taskRepo)
	blacklistCleanupService := services.NewBlacklistCleanupService(blacklistRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService, cfg)
	taskController := controllers.NewTaskController(taskService, cfg)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	// Health
	router.HandleFunc("/health", healthController.HealthCheckHandler).Methods("GET")

	// /auth
	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup", authController.Signup).Methods("POST")
	authRouter.HandleFunc("/login", authController.Login).Methods("POST")
	authRouter.HandleFunc("/logout", authController.Logout).Methods("POST")

	// Protected endpoints require a valid, non-blacklisted token
	taskRouter := router.PathPrefix("/tasks").Subrouter()
	taskRouter.Use(middleware.AuthMiddleware(blacklistRepo, jwtService, !cfg.IsProduction()))
	taskRouter.HandleFunc("", taskController.CreateTask).Methods("POST")
	taskRouter.HandleFunc("", taskController.ListTasks).Methods("GET")
	taskRouter.HandleFunc("/{id}", taskController.GetTask).Methods("GET")
	taskRouter.HandleFunc("/{id}", taskController.UpdateTask).Methods("PUT")
	taskRouter.HandleFunc("/{id}", taskController.DeleteTask).Methods("DELETE")

	//----------------------------------------------------------------------
	// Nightly blacklist cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()
	if _, schErr := c.AddFunc("0 3 * * *", func() {
		if e := blacklistCleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled blacklisted-token cleanup failed")
		}
	}); schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule blacklisted-token cleanup job")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
