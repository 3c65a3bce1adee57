package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/workforce-api/internal/config"
	"github.com/yourusername/workforce-api/internal/handler"
	"github.com/yourusername/workforce-api/internal/repository/postgres"
	redisrepo "github.com/yourusername/workforce-api/internal/repository/redis"
	"github.com/yourusername/workforce-api/internal/service"
	"github.com/yourusername/workforce-api/pkg/auth"
)

func main() {
	configPath := flag.String("config", "config.yml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Порядок инициализации фиксирован: хранилища подключаются до старта
	// HTTP-сервера и отключаются после его остановки.
	db, err := postgres.Connect(
		cfg.Database.PostgresConnectionString(),
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
	)
	if err != nil {
		log.Fatalf("Ошибка подключения к PostgreSQL: %v", err)
	}

	redisClient, err := redisrepo.NewClient(
		cfg.Redis.Mode, cfg.Redis.Addrs, cfg.Redis.MasterName, cfg.Redis.Password, cfg.Redis.DB,
	)
	if err != nil {
		log.Fatalf("Ошибка создания клиента Redis: %v", err)
	}
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	cancelPing()
	log.Println("[Redis] Подключение установлено")

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Fatalf("Ошибка создания JWT сервиса: %v", err)
	}

	userRepo := postgres.NewUserRepo(db)
	companyRepo := postgres.NewCompanyRepo(db)
	workerRepo := postgres.NewWorkerRepo(db)
	requestRepo := postgres.NewMembershipRequestRepo(db)
	quizRepo := postgres.NewQuizRepo(db)
	resultRepo := postgres.NewResultRepo(db)
	answerHistory := redisrepo.NewAnswerHistoryRepo(redisClient)

	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, jwtService)
	companyService := service.NewCompanyService(companyRepo, workerRepo)
	workflowService := service.NewWorkflowService(requestRepo, workerRepo, companyRepo, userRepo)
	quizService := service.NewQuizService(quizRepo, workerRepo, companyRepo)
	resultService := service.NewResultService(resultRepo, quizRepo, answerHistory)

	router := handler.NewRouter(
		authService,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewCompanyHandler(companyService),
		handler.NewWorkflowHandler(workflowService, companyService, userService),
		handler.NewQuizHandler(quizService, resultService),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("[Server] Сервер запущен на порту %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка HTTP сервера: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[Server] Получен сигнал остановки, завершаем работу...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Server] Ошибка остановки сервера: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("[Redis] Ошибка закрытия клиента: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("[Postgres] Ошибка закрытия соединения: %v", err)
		}
	}
	log.Println("[Server] Остановка завершена")
}
