package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"complaint_tracker/internal/config"
	"complaint_tracker/internal/email"
	"complaint_tracker/internal/handler"
	"complaint_tracker/internal/middleware"
	"complaint_tracker/internal/repository"
	"complaint_tracker/internal/service"
	"complaint_tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil {
		log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads" // Default uploads directory
	}
	if err := os.MkdirAll(uploadsDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create uploads directory %s: %v", uploadsDir, err)
	}
	log.Printf("Complaint images will be stored in: %s", uploadsDir)

	smtpCfg, err := email.LoadSMTPConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load SMTP config: %v", err)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)
	mailer := email.NewSMTPMailer(*smtpCfg)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	workerRepo := repository.NewWorkerRepository(dbPool)
	adminRepo := repository.NewAdminRepository(dbPool)
	addressRepo := repository.NewAddressRepository(dbPool)
	resetRepo := repository.NewPasswordResetRepository(dbPool)
	complaintRepo := repository.NewComplaintRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, workerRepo, adminRepo, resetRepo, mailer, jwtUtil)
	addressService := service.NewAddressService(addressRepo)
	complaintService := service.NewComplaintService(complaintRepo, addressRepo, userRepo, mailer, uploadsDir)
	adminService := service.NewAdminService(complaintRepo, workerRepo)
	workerService := service.NewWorkerService(complaintRepo)

	// --- Seed Admin Account ---
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername != "" && adminPassword != "" {
		if err := authService.EnsureAdminAccount(context.Background(), adminUsername, adminPassword); err != nil {
			log.Fatalf("Failed to seed admin account: %v", err)
		}
	} else {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seeding")
	}

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	addressHandler := handler.NewAddressHandler(addressService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	adminHandler := handler.NewAdminHandler(adminService)
	workerHandler := handler.NewWorkerHandler(workerService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()
	router.MaxMultipartMemory = service.MaxImageSize

	// Simple CORS middleware (allow all for development)
	// For production, configure specific origins, methods, headers
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	userRoleMW := middleware.UserMiddleware()
	workerRoleMW := middleware.WorkerMiddleware()
	adminRoleMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	addressHandler.RegisterAddressRoutes(apiGroup, jwtAuthMW, userRoleMW)
	complaintHandler.RegisterComplaintRoutes(apiGroup, jwtAuthMW, userRoleMW)
	adminHandler.RegisterAdminRoutes(apiGroup, jwtAuthMW, adminRoleMW)
	workerHandler.RegisterWorkerRoutes(apiGroup, jwtAuthMW, workerRoleMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
