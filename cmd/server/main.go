package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "tasktracker/docs" // swagger docs

	"tasktracker/internal/auth"
	"tasktracker/internal/cache"
	"tasktracker/internal/config"
	"tasktracker/internal/db"
	"tasktracker/internal/handler"
	"tasktracker/internal/repository"
	"tasktracker/internal/router"
	"tasktracker/internal/service"
	"tasktracker/internal/view"
)

// @title Task Tracker API
// @version 1.0
// @description Multi-user task list. Sign in through the /login form; the JSON API uses the resulting session cookie.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Printf("Warning: Failed to drop tables (may not exist): %v", err)
		}
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	var (
		cacheClient  *cache.Client
		sessionStore auth.SessionStore
	)
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		rdb := cache.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rdb.Close()
		cacheClient = cache.New(rdb)
		sessionStore = auth.NewRedisSessionStore(rdb)
	case config.SessionStoreMemory:
		log.Println("SESSION_STORE=memory: sessions are lost on restart and not shared between instances")
		sessionStore = auth.NewMemorySessionStore()
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize session components
	sessionTokens := auth.NewSessionTokens(cfg.SecretKey)
	sessions := auth.NewSessionManager(sessionTokens, sessionStore, cfg.SessionTTL, cfg.SessionSecure)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessions)
	userService := service.NewUserService(userRepo, cacheClient)
	taskService := service.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	pageHandler := handler.NewPageHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	router.Register(
		e,
		renderer,
		sessions,
		authHandler,
		pageHandler,
		taskHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("Swagger documentation available at: http://localhost%s/swagger/index.html", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
