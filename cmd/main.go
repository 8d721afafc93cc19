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

	checkConflictHandler "github.com/salonhq/scheduling-service/internal/api/handlers/check_conflict"
	createCommitmentHandler "github.com/salonhq/scheduling-service/internal/api/handlers/create_commitment"
	deleteCommitmentHandler "github.com/salonhq/scheduling-service/internal/api/handlers/delete_commitment"
	deleteShiftHandler "github.com/salonhq/scheduling-service/internal/api/handlers/delete_shift"
	deleteSlotHandler "github.com/salonhq/scheduling-service/internal/api/handlers/delete_slot"
	getBusinessHoursHandler "github.com/salonhq/scheduling-service/internal/api/handlers/get_business_hours"
	getSalonScheduleHandler "github.com/salonhq/scheduling-service/internal/api/handlers/get_salon_schedule"
	listSlotsHandler "github.com/salonhq/scheduling-service/internal/api/handlers/list_slots"
	publishSlotsHandler "github.com/salonhq/scheduling-service/internal/api/handlers/publish_slots"
	rescheduleCommitmentHandler "github.com/salonhq/scheduling-service/internal/api/handlers/reschedule_commitment"
	setCommitmentStatusHandler "github.com/salonhq/scheduling-service/internal/api/handlers/set_commitment_status"
	setShiftHandler "github.com/salonhq/scheduling-service/internal/api/handlers/set_shift"
	updateBusinessHoursHandler "github.com/salonhq/scheduling-service/internal/api/handlers/update_business_hours"
	"github.com/salonhq/scheduling-service/internal/api/middleware"
	"github.com/salonhq/scheduling-service/internal/config"
	businessHoursRepo "github.com/salonhq/scheduling-service/internal/infra/storage/businesshours"
	commitmentRepo "github.com/salonhq/scheduling-service/internal/infra/storage/commitment"
	shiftRepo "github.com/salonhq/scheduling-service/internal/infra/storage/shift"
	slotRepo "github.com/salonhq/scheduling-service/internal/infra/storage/slot"
	calendarService "github.com/salonhq/scheduling-service/internal/service/calendar"
	commitmentsService "github.com/salonhq/scheduling-service/internal/service/commitments"
	conflictsService "github.com/salonhq/scheduling-service/internal/service/conflicts"
	shiftsService "github.com/salonhq/scheduling-service/internal/service/shifts"
	slotsService "github.com/salonhq/scheduling-service/internal/service/slots"
	createCommitmentUC "github.com/salonhq/scheduling-service/internal/usecase/create_commitment"
	publishSlotsUC "github.com/salonhq/scheduling-service/internal/usecase/publish_slots"
	rescheduleCommitmentUC "github.com/salonhq/scheduling-service/internal/usecase/reschedule_commitment"
	"github.com/salonhq/scheduling-service/migrations"
	"github.com/salonhq/scheduling-service/pkg/dbmetrics"
	"github.com/salonhq/scheduling-service/pkg/logger"
	"github.com/salonhq/scheduling-service/pkg/metrics"
	"github.com/salonhq/scheduling-service/pkg/txmanager"
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

	log.Info("Starting scheduling-service...")
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

	// Применяем миграции
	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозитории и менеджер транзакций
	// (с метриками или без)
	var (
		commitmentRepository    *commitmentRepo.Repository
		businessHoursRepository *businessHoursRepo.Repository
		shiftRepository         *shiftRepo.Repository
		slotRepository          *slotRepo.Repository
		txMgr                   *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		commitmentRepository = commitmentRepo.NewRepository(wrappedDB)
		businessHoursRepository = businessHoursRepo.NewRepository(wrappedDB)
		shiftRepository = shiftRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		commitmentRepository = commitmentRepo.NewRepository(db)
		businessHoursRepository = businessHoursRepo.NewRepository(db)
		shiftRepository = shiftRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(dbmetrics.PlainDB{DB: db})
	}

	// Инициализируем сервисы
	calendarSvc := calendarService.NewService(businessHoursRepository, log)
	shiftsSvc := shiftsService.NewService(shiftRepository, log)
	conflictsSvc := conflictsService.NewService(commitmentRepository, log)
	commitmentsSvc := commitmentsService.NewService(commitmentRepository, log)
	slotsSvc := slotsService.NewService(slotRepository, log)

	// Инициализируем use cases
	createCommitmentUseCase := createCommitmentUC.NewUseCase(
		commitmentRepository,
		calendarSvc,
		shiftsSvc,
		conflictsSvc,
		txMgr,
		log,
	)

	rescheduleCommitmentUseCase := rescheduleCommitmentUC.NewUseCase(
		commitmentRepository,
		calendarSvc,
		shiftsSvc,
		conflictsSvc,
		txMgr,
		log,
	)

	publishSlotsUseCase := publishSlotsUC.NewUseCase(slotRepository, log)

	// Инициализируем handlers
	createCommitment := createCommitmentHandler.NewHandler(createCommitmentUseCase, log)
	rescheduleCommitment := rescheduleCommitmentHandler.NewHandler(rescheduleCommitmentUseCase, log)
	setCommitmentStatus := setCommitmentStatusHandler.NewHandler(commitmentsSvc, log)
	deleteCommitment := deleteCommitmentHandler.NewHandler(commitmentsSvc, log)
	checkConflict := checkConflictHandler.NewHandler(conflictsSvc, log)
	publishSlots := publishSlotsHandler.NewHandler(publishSlotsUseCase, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	getSalonSchedule := getSalonScheduleHandler.NewHandler(commitmentsSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(calendarSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(calendarSvc, log)
	setShift := setShiftHandler.NewHandler(shiftsSvc, log)
	deleteShift := deleteShiftHandler.NewHandler(shiftsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все операции расписания требуют X-Tenant-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Записи расписания ---
	api.HandleFunc("/commitments", createCommitment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/commitments/{commitmentId}", rescheduleCommitment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/commitments/{commitmentId}/status", setCommitmentStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/commitments/{commitmentId}", deleteCommitment.Handle).Methods(http.MethodDelete)

	// Проверка конфликтов для UI перед отправкой формы
	api.HandleFunc("/staff/{staffId}/conflict-check", checkConflict.Handle).Methods(http.MethodGet)

	// --- Публикуемые окна записи ---
	api.HandleFunc("/slots", publishSlots.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/salons/{salonId}/staff/{staffId}/slots", listSlots.Handle).Methods(http.MethodGet)

	// --- Расписание салона ---
	api.HandleFunc("/salons/{salonId}/commitments", getSalonSchedule.Handle).Methods(http.MethodGet)

	// --- Рабочие часы и смены ---
	api.HandleFunc("/salons/{salonId}/business-hours", updateBusinessHours.Handle).Methods(http.MethodPut)
	api.HandleFunc("/salons/{salonId}/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/shifts", setShift.Handle).Methods(http.MethodPut)
	api.HandleFunc("/staff/{staffId}/shifts", deleteShift.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
