package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"EDMS/internal"
	"EDMS/internal/config"
	"EDMS/internal/handlers"
	"EDMS/internal/identity"
	"EDMS/internal/services"
	"EDMS/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	if err := internal.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Record store client over the shared connection
	recordStore := store.NewClient(internal.DB)

	// Identity provider client
	identityClient, err := identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.APIKey, cfg.Identity.JWTSecret, cfg.Identity.Timeout)
	if err != nil {
		log.Fatalf("Failed to initialize identity client: %v", err)
	}
	if cfg.Identity.BaseURL == "" {
		log.Printf("Warning: no identity provider configured, requests are anonymous")
	} else {
		log.Printf("Identity provider: %s", cfg.Identity.BaseURL)
	}

	// Initialize services
	employeeService := services.NewEmployeeService(recordStore)
	documentService := services.NewDocumentService(recordStore)
	activityLogService := services.NewActivityLogService()
	statisticsService := services.NewStatisticsService()

	// Initialize handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeService, statisticsService)
	documentHandler := handlers.NewDocumentHandler(documentService, employeeService, statisticsService)
	metaHandler := handlers.NewMetaHandler()
	authHandler := handlers.NewAuthHandler(identityClient)
	logsHandler := handlers.NewLogsHandler(activityLogService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)

	// Initialize Gin router
	r := gin.Default()

	// CORS for the browser frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Identity resolution, then activity logging (logging wants the user)
	r.Use(authHandler.Middleware())
	r.Use(activityLogService.LoggingMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Employee management
		v1.GET("/employees", employeeHandler.GetEmployees)
		v1.POST("/employees", employeeHandler.CreateEmployee)
		v1.GET("/employees/:employeeId", employeeHandler.GetEmployee)
		v1.PUT("/employees/:employeeId", employeeHandler.UpdateEmployee)
		v1.DELETE("/employees/:employeeId", employeeHandler.DeleteEmployee)

		// Per-employee document list
		v1.GET("/employees/:employeeId/documents", documentHandler.GetEmployeeDocuments)

		// Document management
		v1.GET("/documents", documentHandler.GetDocuments)
		v1.POST("/documents", documentHandler.CreateDocument)
		v1.GET("/documents/:documentId", documentHandler.GetDocument)
		v1.PUT("/documents/:documentId", documentHandler.UpdateDocument)
		v1.DELETE("/documents/:documentId", documentHandler.DeleteDocument)

		// Shared form/filter reference data
		v1.GET("/meta/options", metaHandler.GetOptions)

		// Identity delegation
		v1.GET("/auth/me", authHandler.Me)
		v1.POST("/auth/signout", authHandler.SignOut)

		// Activity logs
		v1.GET("/logs", logsHandler.GetAllLogs)

		// Statistics
		v1.GET("/stats/summary", statisticsHandler.GetSummary)
		v1.GET("/stats/employees/:employeeId", statisticsHandler.GetEmployeeStats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s (environment: %s)", cfg.Server.Port, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := internal.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited")
}
