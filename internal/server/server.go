package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/handler"
	"tasktrack/internal/middleware"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
	"tasktrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Log    *logrus.Logger
}

func Init(cfg *config.Config) (*Server, error) {
	log := logrus.New()

	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Info("✅ Connected to database")

	if err := db.AutoMigrate(
		&model.Employee{},
		&model.Team{},
		&model.Membership{},
		&model.Task{},
	); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("❌ invalid SERVER_TIMEZONE %q: %w", cfg.Timezone, err)
	}

	// Setup Gin
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	tokenTTL := time.Duration(cfg.JWTExpiryHours) * time.Hour
	authService := service.NewAuthService(employeeRepo, cfg.JWTSecret, tokenTTL)
	taskService := service.NewTaskService(taskRepo, employeeRepo, teamRepo, loc)
	teamService := service.NewTeamService(teamRepo, employeeRepo, cfg.TeamAutoEnroll)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, log)
	taskHandler := handler.NewTaskHandler(taskService, log)
	teamHandler := handler.NewTeamHandler(teamService, log)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Protected routes - require authentication
	authorized := api.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, employeeRepo))
	{
		// Task routes
		authorized.POST("/tasks", taskHandler.Create)
		authorized.GET("/tasks/:id", taskHandler.GetByID)
		authorized.PUT("/tasks/:id", taskHandler.Update)
		authorized.DELETE("/tasks/:id", taskHandler.Delete)

		// Employee-scoped listings
		authorized.GET("/employees/:id/tasks", taskHandler.ListByEmployee)
		authorized.GET("/employees/:id/tasks/today", taskHandler.ListByEmployeeToday)
		authorized.GET("/employees/:id/teams", teamHandler.GetTeamsForEmployee)

		// Team routes
		authorized.POST("/teams", teamHandler.Create)
		authorized.PUT("/teams/:id", teamHandler.Update)
		authorized.DELETE("/teams/:id", teamHandler.Delete)
		authorized.GET("/teams/:id/members", teamHandler.GetMembers)
		authorized.PATCH("/teams/:id/members", teamHandler.UpdateMembers)
		authorized.GET("/teams/:id/tasks", taskHandler.ListByTeam)
		authorized.GET("/teams/:id/tasks/today", taskHandler.ListByTeamToday)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Log:    log,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Log.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	s.Log.Info("✅ Server exited properly")
}
