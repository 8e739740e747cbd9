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

	cancelAppointmentHandler "github.com/m04kA/LashBookingService/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/LashBookingService/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/LashBookingService/internal/api/handlers/create_appointment"
	getAddOnHandler "github.com/m04kA/LashBookingService/internal/api/handlers/get_addon"
	getAppointmentHandler "github.com/m04kA/LashBookingService/internal/api/handlers/get_appointment"
	getByConfirmationHandler "github.com/m04kA/LashBookingService/internal/api/handlers/get_appointment_by_confirmation"
	getAvailableSlotsHandler "github.com/m04kA/LashBookingService/internal/api/handlers/get_available_slots"
	getServiceHandler "github.com/m04kA/LashBookingService/internal/api/handlers/get_service"
	listAddOnsHandler "github.com/m04kA/LashBookingService/internal/api/handlers/list_addons"
	listAppointmentsHandler "github.com/m04kA/LashBookingService/internal/api/handlers/list_appointments"
	listBlockedDatesHandler "github.com/m04kA/LashBookingService/internal/api/handlers/list_blocked_dates"
	listBusinessHoursHandler "github.com/m04kA/LashBookingService/internal/api/handlers/list_business_hours"
	listServicesHandler "github.com/m04kA/LashBookingService/internal/api/handlers/list_services"
	rescheduleAppointmentHandler "github.com/m04kA/LashBookingService/internal/api/handlers/reschedule_appointment"
	updateStatusHandler "github.com/m04kA/LashBookingService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/LashBookingService/internal/api/middleware"
	"github.com/m04kA/LashBookingService/internal/config"
	"github.com/m04kA/LashBookingService/internal/infra/migrations"
	appointmentRepo "github.com/m04kA/LashBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/LashBookingService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/LashBookingService/internal/infra/storage/customer"
	scheduleRepo "github.com/m04kA/LashBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/LashBookingService/internal/integrations/notification"
	appointmentsService "github.com/m04kA/LashBookingService/internal/service/appointments"
	"github.com/m04kA/LashBookingService/internal/service/availability"
	catalogService "github.com/m04kA/LashBookingService/internal/service/catalog"
	"github.com/m04kA/LashBookingService/internal/service/pricing"
	scheduleService "github.com/m04kA/LashBookingService/internal/service/schedule"
	checkAvailabilityUC "github.com/m04kA/LashBookingService/internal/usecase/check_availability"
	createAppointmentUC "github.com/m04kA/LashBookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/LashBookingService/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/m04kA/LashBookingService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/LashBookingService/pkg/confirmation"
	"github.com/m04kA/LashBookingService/pkg/dbmetrics"
	"github.com/m04kA/LashBookingService/pkg/logger"
	"github.com/m04kA/LashBookingService/pkg/metrics"
	"github.com/m04kA/LashBookingService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting LashBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). Nil-коллектор безопасен для всех вызовов.
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Обертка с метриками запросов
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB, log)

	// Инициализируем сервисы
	engine := availability.NewEngine(
		scheduleRepository,
		appointmentRepository,
		cfg.Studio.Policy(),
		metricsCollector,
		log,
	)
	aggregator := pricing.NewAggregator(catalogRepository, cfg.Studio.StrictCatalog, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, txMgr, log)

	codeGenerator := confirmation.NewGenerator(cfg.Studio.ConfirmationPrefix)

	notifier := notification.NewDispatcher(
		cfg.Notifications.SMTPHost,
		cfg.Notifications.SMTPPort,
		cfg.Notifications.Username,
		cfg.Notifications.Password,
		notification.Settings{
			Enabled:    cfg.Notifications.Enabled,
			From:       cfg.Notifications.From,
			AdminEmail: cfg.Notifications.AdminEmail,
			Timeout:    time.Duration(cfg.Notifications.Timeout) * time.Second,
		},
		log,
	)
	log.Info("Notifications enabled=%t (smtp=%s:%d)",
		cfg.Notifications.Enabled, cfg.Notifications.SMTPHost, cfg.Notifications.SMTPPort)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		aggregator,
		engine,
		customerRepository,
		appointmentRepository,
		codeGenerator,
		txMgr,
		notifier,
		metricsCollector,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(appointmentRepository, engine, txMgr, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(engine, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(engine, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	listAddOns := listAddOnsHandler.NewHandler(catalogSvc, log)
	getAddOn := getAddOnHandler.NewHandler(catalogSvc, log)
	listBusinessHours := listBusinessHoursHandler.NewHandler(scheduleSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(scheduleSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getByConfirmation := getByConfirmationHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log), middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и расписание ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addons", listAddOns.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addons/{addOnId}", getAddOn.Handle).Methods(http.MethodGet)
	api.HandleFunc("/business-hours", listBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	// Статические пути регистрируются раньше /appointments/{appointmentId}
	api.HandleFunc("/appointments/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/check-availability", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/by-confirmation", getByConfirmation.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}", cancelAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}/status", updateStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

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
	close(stopMetricsCh)

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
