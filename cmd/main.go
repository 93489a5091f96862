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

	addAppointmentServiceHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/add_appointment_service"
	cancelAppointmentHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/create_appointment"
	createCreditMovementHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/create_credit_movement"
	createTimeBlockHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/create_time_block"
	deleteTimeBlockHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/delete_time_block"
	getAppointmentHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/get_available_slots"
	getCreditLedgerHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/get_credit_ledger"
	getSalonAppointmentsHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/get_salon_appointments"
	getSubscriptionHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/get_subscription"
	getWorkingHoursHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/get_working_hours"
	listCommissionsHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/list_commissions"
	listTimeBlocksHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/list_time_blocks"
	payCommissionHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/pay_commission"
	removeAppointmentServiceHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/remove_appointment_service"
	updateWorkingHoursHandler "github.com/nkosach/SLN-SalonService/internal/api/handlers/update_working_hours"
	"github.com/nkosach/SLN-SalonService/internal/api/middleware"
	"github.com/nkosach/SLN-SalonService/internal/config"
	appointmentRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/appointment"
	appointmentLogRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/appointmentlog"
	cashflowRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/cashflow"
	clientRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/client"
	commissionRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/commission"
	paymentRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/payment"
	productRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/product"
	professionalRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/professional"
	salonRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/salon"
	serviceRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/service"
	timeBlockRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/timeblock"
	workingHoursRepo "github.com/nkosach/SLN-SalonService/internal/infra/storage/workinghours"
	billingClient "github.com/nkosach/SLN-SalonService/internal/integrations/billing"
	appointmentsService "github.com/nkosach/SLN-SalonService/internal/service/appointments"
	commissionsService "github.com/nkosach/SLN-SalonService/internal/service/commissions"
	creditsService "github.com/nkosach/SLN-SalonService/internal/service/credits"
	scheduleService "github.com/nkosach/SLN-SalonService/internal/service/schedule"
	subscriptionsService "github.com/nkosach/SLN-SalonService/internal/service/subscriptions"
	completeAppointmentUC "github.com/nkosach/SLN-SalonService/internal/usecase/complete_appointment"
	createAppointmentUC "github.com/nkosach/SLN-SalonService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/nkosach/SLN-SalonService/internal/usecase/get_available_slots"
	"github.com/nkosach/SLN-SalonService/pkg/dbmetrics"
	"github.com/nkosach/SLN-SalonService/pkg/logger"
	"github.com/nkosach/SLN-SalonService/pkg/metrics"
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

	log.Info("Starting SLN-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Инициализируем интеграционного клиента биллинга
	billing := billingClient.NewClient(
		cfg.BillingService.URL,
		time.Duration(cfg.BillingService.Timeout)*time.Second,
		log,
	)
	log.Info("Billing client initialized (url=%s, timeout=%ds)",
		cfg.BillingService.URL, cfg.BillingService.Timeout)

	// Оборачиваем соединение в сборщик метрик БД (если метрики включены)
	var dbExecutor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		dbExecutor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	salonRepository := salonRepo.NewRepository(dbExecutor)
	workingHoursRepository := workingHoursRepo.NewRepository(dbExecutor)
	timeBlockRepository := timeBlockRepo.NewRepository(dbExecutor)
	professionalRepository := professionalRepo.NewRepository(dbExecutor)
	serviceRepository := serviceRepo.NewRepository(dbExecutor)
	clientRepository := clientRepo.NewRepository(dbExecutor)
	appointmentRepository := appointmentRepo.NewRepository(dbExecutor)
	appointmentLogRepository := appointmentLogRepo.NewRepository(dbExecutor)
	commissionRepository := commissionRepo.NewRepository(dbExecutor)
	paymentRepository := paymentRepo.NewRepository(dbExecutor)
	cashflowRepository := cashflowRepo.NewRepository(dbExecutor)
	productRepository := productRepo.NewRepository(dbExecutor)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		serviceRepository,
		appointmentLogRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		workingHoursRepository,
		timeBlockRepository,
		professionalRepository,
		log,
	)
	commissionsSvc := commissionsService.NewService(commissionRepository, log)
	creditsSvc := creditsService.NewService(clientRepository, log)
	subscriptionsSvc := subscriptionsService.NewService(billing, professionalRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		workingHoursRepository,
		timeBlockRepository,
		appointmentRepository,
		professionalRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		professionalRepository,
		clientRepository,
		workingHoursRepository,
		timeBlockRepository,
		appointmentLogRepository,
		log,
	)
	completeAppointmentUseCase := completeAppointmentUC.NewUseCase(
		appointmentRepository,
		salonRepository,
		professionalRepository,
		paymentRepository,
		commissionRepository,
		cashflowRepository,
		productRepository,
		appointmentLogRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	completeAppointment := completeAppointmentHandler.NewHandler(completeAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getSalonAppointments := getSalonAppointmentsHandler.NewHandler(appointmentsSvc, log)
	addAppointmentService := addAppointmentServiceHandler.NewHandler(appointmentsSvc, log)
	removeAppointmentService := removeAppointmentServiceHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)
	createTimeBlock := createTimeBlockHandler.NewHandler(scheduleSvc, log)
	listTimeBlocks := listTimeBlocksHandler.NewHandler(scheduleSvc, log)
	deleteTimeBlock := deleteTimeBlockHandler.NewHandler(scheduleSvc, log)
	listCommissions := listCommissionsHandler.NewHandler(commissionsSvc, log)
	payCommission := payCommissionHandler.NewHandler(commissionsSvc, log)
	createCreditMovement := createCreditMovementHandler.NewHandler(creditsSvc, log)
	getCreditLedger := getCreditLedgerHandler.NewHandler(creditsSvc, log)
	getSubscription := getSubscriptionHandler.NewHandler(subscriptionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Получение доступных слотов мастера
	api.HandleFunc("/salons/{salonId}/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// График работы салона
	api.HandleFunc("/salons/{salonId}/working-hours",
		getWorkingHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Визиты ---
	protected.HandleFunc("/salons/{salonId}/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/appointments", getSalonAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/appointments/{appointmentId}/services", addAppointmentService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/appointments/{appointmentId}/services/{lineId}", removeAppointmentService.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/salons/{salonId}/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/salons/{salonId}/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPost)

	// --- Расписание ---
	protected.HandleFunc("/salons/{salonId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/salons/{salonId}/time-blocks", createTimeBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/time-blocks", listTimeBlocks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/time-blocks/{blockId}", deleteTimeBlock.Handle).Methods(http.MethodDelete)

	// --- Комиссии ---
	protected.HandleFunc("/salons/{salonId}/commissions", listCommissions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/salons/{salonId}/commissions/{commissionId}/pay", payCommission.Handle).Methods(http.MethodPatch)

	// --- Кредитный журнал клиентов ---
	protected.HandleFunc("/salons/{salonId}/clients/{clientId}/credit-movements", createCreditMovement.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/salons/{salonId}/clients/{clientId}/credit-ledger", getCreditLedger.Handle).Methods(http.MethodGet)

	// --- Подписка ---
	protected.HandleFunc("/salons/{salonId}/subscription", getSubscription.Handle).Methods(http.MethodGet)

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
