package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addCustomUnavailabilityHandler "github.com/m04kA/SMC-ScreenAvailability/internal/api/handlers/add_custom_unavailability"
	configureAvailabilityHandler "github.com/m04kA/SMC-ScreenAvailability/internal/api/handlers/configure_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ScreenAvailability/internal/api/handlers/get_available_slots"
	getScreenScheduleHandler "github.com/m04kA/SMC-ScreenAvailability/internal/api/handlers/get_screen_schedule"
	"github.com/m04kA/SMC-ScreenAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-ScreenAvailability/internal/config"
	slotsCache "github.com/m04kA/SMC-ScreenAvailability/internal/infra/cache/slots"
	scheduleRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/slot"
	theaterRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/theater"
	unavailabilityRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/unavailability"
	"github.com/m04kA/SMC-ScreenAvailability/internal/integrations/eventbus"
	screensService "github.com/m04kA/SMC-ScreenAvailability/internal/service/screens"
	addCustomUnavailabilityUC "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/add_custom_unavailability"
	configureAvailabilityUC "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/configure_availability"
	getAvailableSlotsUC "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/logger"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/metrics"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/txmanager"
)

// availabilityCache кэш слотов со стороны чтения и записи
type availabilityCache interface {
	getAvailableSlotsUC.SlotsCache
	configureAvailabilityUC.SlotsCache
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ScreenAvailability...")
	log.Info("Configuration loaded from config.toml (timezone=%s)", cfg.Location())

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены); nil коллектор ничего не пишет
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш доступных слотов
	var cache availabilityCache = slotsCache.Noop{}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		cache = slotsCache.NewCache(rdb, time.Duration(cfg.Redis.TTL)*time.Second)
		log.Info("Slots cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Публикация событий об изменении доступности
	var publisher configureAvailabilityUC.EventPublisher = eventbus.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		p, err := eventbus.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()

		publisher = p
		log.Info("Event publishing enabled (queue=%s)", cfg.RabbitMQ.Queue)
	}

	// Инициализируем репозитории
	theaterRepository := theaterRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	unavailabilityRepository := unavailabilityRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	screensSvc := screensService.NewService(
		theaterRepository,
		scheduleRepository,
		unavailabilityRepository,
		cfg.Location(),
		log,
	)

	// Инициализируем use cases
	configureAvailabilityUseCase := configureAvailabilityUC.NewUseCase(
		theaterRepository,
		scheduleRepository,
		unavailabilityRepository,
		txMgr,
		cache,
		publisher,
		metricsCollector,
		&configureAvailabilityUC.RealTimeProvider{},
		cfg.Location(),
		log,
	)

	addCustomUnavailabilityUseCase := addCustomUnavailabilityUC.NewUseCase(
		theaterRepository,
		unavailabilityRepository,
		txMgr,
		cache,
		publisher,
		metricsCollector,
		&addCustomUnavailabilityUC.RealTimeProvider{},
		cfg.Location(),
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		theaterRepository,
		unavailabilityRepository,
		slotRepository,
		cache,
		metricsCollector,
		cfg.Location(),
		log,
	)

	// Инициализируем handlers
	configureAvailability := configureAvailabilityHandler.NewHandler(configureAvailabilityUseCase, log)
	addCustomUnavailability := addCustomUnavailabilityHandler.NewHandler(addCustomUnavailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, cfg.Location(), log)
	getScreenSchedule := getScreenScheduleHandler.NewHandler(screensSvc, cfg.Location(), log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID())

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		api.Use(limiter.Middleware())
		log.Info("Rate limit enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// --- Настройка доступности ---
	// Недельное расписание и недельная недоступность
	api.HandleFunc("/theatres/{theaterId}/availability",
		configureAvailability.Handle).Methods(http.MethodPost)

	// Недоступность по конкретным датам
	api.HandleFunc("/theatres/{theaterId}/custom-unavailability",
		addCustomUnavailability.Handle).Methods(http.MethodPost)

	// --- Чтение ---
	// Доступные слоты зала в диапазоне дат
	api.HandleFunc("/theatres/{theaterId}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание и недоступность зала
	api.HandleFunc("/theatres/{theaterId}/screens/{screenId}/schedule",
		getScreenSchedule.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи: статистику пула и очистку rate limiter
	close(stopMetricsCh)
	stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
