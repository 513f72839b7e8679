package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/harikrish1993-phk/telvel/config"
	"github.com/harikrish1993-phk/telvel/handler"
	"github.com/harikrish1993-phk/telvel/middleware"
	"github.com/harikrish1993-phk/telvel/pkg/logger"
	"github.com/harikrish1993-phk/telvel/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded", "env", cfg.Server.Env)

	db, err := service.OpenDatabase(cfg.Database.DSN)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	store := service.NewStore(db)

	storage, err := service.NewResumeStorage(&cfg.Storage, &cfg.Uploads)
	if err != nil {
		slog.Error("failed to initialize resume storage", "error", err)
		os.Exit(1)
	}
	if ms, ok := storage.(*service.MinioStorage); ok {
		if err := ms.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure storage bucket", "error", err)
			os.Exit(1)
		}
	}

	mailer := service.NewMailer(&cfg.Email, &cfg.Company)

	authHandler := handler.NewAuthHandler(&cfg.Admin, cfg.IsProduction())
	publicHandler := handler.NewPublicHandler(store, storage, mailer, cfg)
	adminHandler := handler.NewAdminHandler(store, cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(corsMiddleware(cfg.Server.CORSOrigin))
	router.Use(middleware.RateLimit(100, time.Minute, "Too many requests"))

	// Uploaded resumes are public by filename; names are unguessable but
	// there is no access control on this path.
	if _, ok := storage.(*service.DiskStorage); ok {
		router.Static("/uploads", cfg.Uploads.Dir)
	}

	start := time.Now()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"uptime":    int(time.Since(start).Seconds()),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// The form limiter stacks on the global one: 10 submissions per 15
	// minutes per IP.
	formLimit := middleware.RateLimit(10, 15*time.Minute, "Too many submissions — wait 15 minutes")

	api := router.Group("/api")
	{
		api.GET("/company-info", publicHandler.CompanyInfo)
		api.GET("/jobs", publicHandler.ListJobs)
		api.GET("/jobs/:slug", publicHandler.GetJob)
		api.GET("/stats", publicHandler.Stats)
		api.POST("/applications", formLimit, publicHandler.SubmitApplication)
		api.POST("/contact", formLimit, publicHandler.SubmitContact)
	}

	admin := api.Group("/admin")
	admin.POST("/login", authHandler.Login)

	protected := admin.Group("/")
	protected.Use(middleware.AdminAuth(&cfg.Admin))
	{
		protected.GET("/dashboard", adminHandler.Dashboard)
		protected.GET("/jobs", adminHandler.ListJobs)
		protected.POST("/jobs", adminHandler.CreateJob)
		protected.PUT("/jobs/:id", adminHandler.UpdateJob)
		protected.DELETE("/jobs/:id", adminHandler.DeleteJob)
		protected.GET("/applications", adminHandler.ListApplications)
		protected.PUT("/applications/:id", adminHandler.UpdateApplication)
		protected.DELETE("/applications/:id", adminHandler.DeleteApplication)
		protected.GET("/contacts", adminHandler.ListContacts)
		protected.PUT("/contacts/:id", adminHandler.UpdateContact)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.Server.Port,
			"company", cfg.Company.Name,
			"email_enabled", mailer.Enabled(),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

func corsMiddleware(origin string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if origin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{origin}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID"}
	return cors.New(corsCfg)
}
