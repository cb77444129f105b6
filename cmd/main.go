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

	cancelBookingHandler "github.com/layananku/LSP-BookingGateway/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/layananku/LSP-BookingGateway/internal/api/handlers/create_booking"
	getBookingHandler "github.com/layananku/LSP-BookingGateway/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/layananku/LSP-BookingGateway/internal/api/handlers/get_catalog"
	getSubmissionHistoryHandler "github.com/layananku/LSP-BookingGateway/internal/api/handlers/get_submission_history"
	getUserBookingsHandler "github.com/layananku/LSP-BookingGateway/internal/api/handlers/get_user_bookings"
	"github.com/layananku/LSP-BookingGateway/internal/api/middleware"
	"github.com/layananku/LSP-BookingGateway/internal/config"
	journalRepo "github.com/layananku/LSP-BookingGateway/internal/infra/storage/journal"
	catalogServiceClient "github.com/layananku/LSP-BookingGateway/internal/integrations/catalogservice"
	coreServiceClient "github.com/layananku/LSP-BookingGateway/internal/integrations/coreservice"
	bookingsService "github.com/layananku/LSP-BookingGateway/internal/service/bookings"
	createBookingUC "github.com/layananku/LSP-BookingGateway/internal/usecase/create_booking"
	"github.com/layananku/LSP-BookingGateway/pkg/dbmetrics"
	"github.com/layananku/LSP-BookingGateway/pkg/logger"
	"github.com/layananku/LSP-BookingGateway/pkg/metrics"
)

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

	log.Info("Starting LSP-BookingGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных журнала отправок
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	coreClient := coreServiceClient.NewClient(
		cfg.CoreService.URL,
		time.Duration(cfg.CoreService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CoreService=%s timeout=%ds, CatalogService=%s timeout=%ds)",
		cfg.CoreService.URL, cfg.CoreService.Timeout, cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозиторий журнала (с метриками или без)
	var journalRepository *journalRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		journalRepository = journalRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		journalRepository = journalRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		coreClient,
		journalRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		coreClient,
		journalRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSubmissionHistory := getSubmissionHistoryHandler.NewHandler(bookingSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочники для заполнения форм
	api.HandleFunc("/catalog/doctors", getCatalog.HandleDoctors).Methods(http.MethodGet)
	api.HandleFunc("/catalog/durations", getCatalog.HandleDurations).Methods(http.MethodGet)
	api.HandleFunc("/catalog/workshops", getCatalog.HandleWorkshops).Methods(http.MethodGet)
	api.HandleFunc("/catalog/daily-services", getCatalog.HandleDailyServices).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и bearer-креденшл)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования (все три вертикали)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Журнал отправок пользователя
	protected.HandleFunc("/users/{userId}/submissions", getSubmissionHistory.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
