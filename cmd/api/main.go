package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/SalmanuRidwan/Trivia-API/internal/config"
	"github.com/SalmanuRidwan/Trivia-API/internal/handler"
	"github.com/SalmanuRidwan/Trivia-API/internal/middleware"
	pgRepo "github.com/SalmanuRidwan/Trivia-API/internal/repository/postgres"
	redisRepo "github.com/SalmanuRidwan/Trivia-API/internal/repository/redis"
	"github.com/SalmanuRidwan/Trivia-API/internal/service"
	"github.com/SalmanuRidwan/Trivia-API/pkg/auth"
	"github.com/SalmanuRidwan/Trivia-API/pkg/database"
)

func main() {
	flags := pflag.NewFlagSet("trivia-api", pflag.ExitOnError)
	configFlag := flags.String("config", "", "путь к файлу конфигурации (по умолчанию CONFIG_PATH или config/config.yaml)")
	flags.String("port", "", "порт HTTP сервера (перекрывает server.port)")
	issueToken := flags.Bool("issue-admin-token", false, "вывести административный JWT и завершить работу")
	flags.Parse(os.Args[1:])

	// Загружаем конфигурацию
	configPath := *configFlag
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath, flags)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Сервис токенов нужен только при заданном секрете
	var tokenService *auth.TokenService
	if cfg.Auth.AdminSecret != "" {
		tokenService, err = auth.NewTokenService(cfg.Auth.AdminSecret, cfg.Auth.AdminTokenTTL)
		if err != nil {
			log.Printf("Failed to initialize TokenService: %v", err)
			os.Exit(1)
		}
	}

	if *issueToken {
		if tokenService == nil {
			log.Printf("auth.admin_secret is not set (check AUTH_ADMIN_SECRET env var)")
			os.Exit(1)
		}
		token, err := tokenService.Generate("cli", auth.RoleAdmin)
		if err != nil {
			log.Printf("Failed to issue admin token: %v", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), gin.Mode() == gin.DebugMode)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	sqlDB, err := database.GetSQLDB(db)
	if err != nil {
		log.Printf("Failed to get sql.DB: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Применяем миграции
	if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Redis опционален: без него нет кеша категорий и rate limiting
	var (
		cacheRepo   *redisRepo.CacheRepo
		rateLimiter *middleware.RateLimiter
		cachePinger handler.CachePinger
	)
	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := database.NewUniversalRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		log.Println("Successfully connected to Redis")

		cacheRepo, err = redisRepo.NewCacheRepo(redisClient, cfg.Redis.KeyPrefix)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cachePinger = cacheRepo
		rateLimiter = middleware.NewRateLimiter(redisClient)
	} else {
		log.Println("Redis отключен: кеш категорий и rate limiting не используются")
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	var categoryService *service.CategoryService
	if cacheRepo != nil {
		categoryService = service.NewCategoryService(categoryRepo, cacheRepo, cfg.Cache.CategoriesTTL)
	} else {
		categoryService = service.NewCategoryService(categoryRepo, nil, 0)
	}
	questionService := service.NewQuestionService(questionRepo, categoryService)
	quizService := service.NewQuizService(questionRepo)

	// Инициализируем обработчики и роутер
	router := handler.NewRouter(handler.RouterDeps{
		Categories:  handler.NewCategoryHandler(categoryService, questionService),
		Questions:   handler.NewQuestionHandler(questionService),
		Quizzes:     handler.NewQuizHandler(quizService),
		Health:      handler.NewHealthHandler(sqlDB, cachePinger),
		Auth:        middleware.NewAuthMiddleware(tokenService),
		RateLimiter: rateLimiter,
		RateLimit: middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
			KeyPrefix:   cfg.Redis.KeyPrefix + ":ratelimit",
		},
		Middlewares: []gin.HandlerFunc{
			// Настройка CORS
			cors.New(cors.Config{
				AllowAllOrigins: true,
				AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
				AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
				ExposeHeaders:   []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
				MaxAge:          12 * time.Hour,
			}),
		},
	})

	// В production не доверяем прокси-заголовкам (защита от IP spoofing в rate limiter)
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
