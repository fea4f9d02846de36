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

	cancelBookingHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/get_booking"
	getPolicyHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/get_policy"
	getRoomBookingsHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/get_room_bookings"
	getUserBookingsHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/get_user_bookings"
	quoteGroupPriceHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/quote_group_price"
	quotePriceHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/quote_price"
	refundPreviewHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/refund_preview"
	updateBookingStatusHandler "github.com/pkamnoy/PVB-BookingService/internal/api/handlers/update_booking_status"
	"github.com/pkamnoy/PVB-BookingService/internal/api/middleware"
	"github.com/pkamnoy/PVB-BookingService/internal/config"
	bookingRepo "github.com/pkamnoy/PVB-BookingService/internal/infra/storage/booking"
	policyRepo "github.com/pkamnoy/PVB-BookingService/internal/infra/storage/policy"
	ratesRepo "github.com/pkamnoy/PVB-BookingService/internal/infra/storage/rates"
	propertyServiceClient "github.com/pkamnoy/PVB-BookingService/internal/integrations/propertyservice"
	bookingsService "github.com/pkamnoy/PVB-BookingService/internal/service/bookings"
	rulesService "github.com/pkamnoy/PVB-BookingService/internal/service/rules"
	checkAvailabilityUC "github.com/pkamnoy/PVB-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/pkamnoy/PVB-BookingService/internal/usecase/create_booking"
	quoteGroupPriceUC "github.com/pkamnoy/PVB-BookingService/internal/usecase/quote_group_price"
	quotePriceUC "github.com/pkamnoy/PVB-BookingService/internal/usecase/quote_price"
	"github.com/pkamnoy/PVB-BookingService/pkg/dbmetrics"
	"github.com/pkamnoy/PVB-BookingService/pkg/logger"
	"github.com/pkamnoy/PVB-BookingService/pkg/metrics"
	"github.com/pkamnoy/PVB-BookingService/pkg/simpletxmanager"
	"github.com/pkamnoy/PVB-BookingService/pkg/txmanager"
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

	log.Info("Starting PVB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент PropertyService
	propertyClient := propertyServiceClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PropertyService=%s timeout=%ds)",
		cfg.PropertyService.URL, cfg.PropertyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		ratesRepository   *ratesRepo.Repository
		policyRepository  *policyRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		ratesRepository = ratesRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		ratesRepository = ratesRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	rulesSvc := rulesService.New(ratesRepository, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		policyRepository,
		&bookingsService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	quotePriceUseCase := quotePriceUC.NewUseCase(propertyClient, rulesSvc, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, propertyClient, rulesSvc, log)
	quoteGroupPriceUseCase := quoteGroupPriceUC.NewUseCase(propertyClient, rulesSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		policyRepository,
		propertyClient,
		rulesSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	quoteGroupPrice := quoteGroupPriceHandler.NewHandler(quoteGroupPriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getPolicy := getPolicyHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	refundPreview := refundPreviewHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчет цены проживания
	api.HandleFunc("/rooms/{roomId}/price-quote", quotePrice.Handle).Methods(http.MethodGet)

	// Проверка доступности номера
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Групповой расчет цены
	api.HandleFunc("/group-quotes", quoteGroupPrice.Handle).Methods(http.MethodPost)

	// Условия отмены бронирования
	api.HandleFunc("/policies/{policyId}", getPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Предварительный расчет возврата
	protected.HandleFunc("/bookings/{bookingId}/refund-preview", refundPreview.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// INTERNAL ROUTES (для PropertyService, доступ через API gateway)
	// ============================================================

	internal := r.PathPrefix("/internal/v1").Subrouter()

	// Список бронирований номера
	internal.HandleFunc("/rooms/{roomId}/bookings", getRoomBookings.Handle).Methods(http.MethodGet)

	// Обновление статуса бронирования (заезд/выезд/неявка)
	internal.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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
