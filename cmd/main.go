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

	cancelBookingHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/create_booking"
	createDockHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/create_dock"
	getAvailableSlotsHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/get_booking"
	getCompanyBookingsHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/get_company_bookings"
	getDocksHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/get_docks"
	getWarehousesHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/get_warehouses"
	requestBookingHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/request_booking"
	updateBookingHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/update_booking"
	updateDockHandler "github.com/m04kA/WMS-DockService/internal/api/handlers/update_dock"
	"github.com/m04kA/WMS-DockService/internal/api/middleware"
	"github.com/m04kA/WMS-DockService/internal/config"
	bookingRepo "github.com/m04kA/WMS-DockService/internal/infra/storage/booking"
	dockRepo "github.com/m04kA/WMS-DockService/internal/infra/storage/dock"
	companyServiceClient "github.com/m04kA/WMS-DockService/internal/integrations/companyservice"
	bookingsService "github.com/m04kA/WMS-DockService/internal/service/bookings"
	docksService "github.com/m04kA/WMS-DockService/internal/service/docks"
	warehousesService "github.com/m04kA/WMS-DockService/internal/service/warehouses"
	confirmBookingUC "github.com/m04kA/WMS-DockService/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/WMS-DockService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/WMS-DockService/internal/usecase/get_available_slots"
	requestBookingUC "github.com/m04kA/WMS-DockService/internal/usecase/request_booking"
	"github.com/m04kA/WMS-DockService/pkg/dbmetrics"
	"github.com/m04kA/WMS-DockService/pkg/logger"
	"github.com/m04kA/WMS-DockService/pkg/metrics"
	"github.com/m04kA/WMS-DockService/pkg/simpletxmanager"
	"github.com/m04kA/WMS-DockService/pkg/txmanager"
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

	log.Info("Starting WMS-DockService...")
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

	// Инициализируем интеграционного клиента
	companyClient := companyServiceClient.NewClient(
		cfg.CompanyService.URL,
		time.Duration(cfg.CompanyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CompanyService=%s timeout=%ds)",
		cfg.CompanyService.URL, cfg.CompanyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		dockRepository    *dockRepo.Repository
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
		dockRepository = dockRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		dockRepository = dockRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	dockSvc := docksService.NewService(dockRepository, log)
	warehouseSvc := warehousesService.NewService(companyClient, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		dockRepository,
		companyClient,
		cfg.Booking.SlotIntervalMinutes,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		dockRepository,
		companyClient,
		txMgr,
		log,
	)

	requestBookingUseCase := requestBookingUC.NewUseCase(
		bookingRepository,
		dockRepository,
		companyClient,
		txMgr,
		cfg.Booking.SlotIntervalMinutes,
		cfg.Booking.ConfirmationWindowMinutes,
		cfg.Booking.AlternativeSlotsLimit,
		log,
	)

	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		dockRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCompanyBookings := getCompanyBookingsHandler.NewHandler(bookingSvc, log)
	getDocks := getDocksHandler.NewHandler(dockSvc, log)
	createDock := createDockHandler.NewHandler(dockSvc, log)
	updateDock := updateDockHandler.NewHandler(dockSvc, log)
	getWarehouses := getWarehousesHandler.NewHandler(warehouseSvc, log)
	requestBooking := requestBookingHandler.NewHandler(requestBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(confirmBookingUseCase, log)

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
	// INTEGRATION ROUTES (требуют X-Api-Key header)
	// ============================================================

	integration := api.PathPrefix("/integration").Subrouter()
	integration.Use(middleware.IntegrationAuth(cfg.Integration.APIKeys))

	// Список складов компании-интегратора
	integration.HandleFunc("/warehouses", getWarehouses.Handle).Methods(http.MethodGet)

	// Предварительное бронирование с подбором слота
	integration.HandleFunc("/bookings", requestBooking.Handle).Methods(http.MethodPost)

	// Подтверждение предварительного бронирования
	integration.HandleFunc("/bookings/{confirmationId}", updateBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты ---
	// Слоты дня с признаком доступности
	protected.HandleFunc("/companies/{companyId}/warehouses/{warehouseId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание подтверждённого бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Список бронирований компании
	protected.HandleFunc("/companies/{companyId}/bookings", getCompanyBookings.Handle).Methods(http.MethodGet)

	// --- Доки ---
	// Список доков склада
	protected.HandleFunc("/companies/{companyId}/warehouses/{warehouseId}/docks",
		getDocks.Handle).Methods(http.MethodGet)

	// Создание дока
	protected.HandleFunc("/companies/{companyId}/warehouses/{warehouseId}/docks",
		createDock.Handle).Methods(http.MethodPost)

	// Обновление конфигурации дока
	protected.HandleFunc("/docks/{dockId}", updateDock.Handle).Methods(http.MethodPut)

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
