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

	checkAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_availability"
	createBlockedDateHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_blocked_date"
	createReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_reservation"
	createSeasonRuleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_season_rule"
	deleteBlockedDateHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_blocked_date"
	deleteReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_reservation"
	deleteSeasonRuleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_season_rule"
	getActiveSeasonRulesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_active_season_rules"
	getCalendarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_calendar"
	getReservationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_reservation"
	getSeasonRuleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_season_rule"
	listBlockedDatesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_blocked_dates"
	listReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_reservations"
	listSeasonRulesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_season_rules"
	refreshSeasonRulesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/refresh_season_rules"
	updateReservationStatusHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_reservation_status"
	updateSeasonRuleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_season_rule"
	validateBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	blockedDateRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/blockeddate"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	seasonRuleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/seasonrule"
	"github.com/m04kA/SMC-RentalService/internal/rulecache"
	availabilityService "github.com/m04kA/SMC-RentalService/internal/service/availability"
	blockedDatesService "github.com/m04kA/SMC-RentalService/internal/service/blockeddates"
	reservationsService "github.com/m04kA/SMC-RentalService/internal/service/reservations"
	seasonRulesService "github.com/m04kA/SMC-RentalService/internal/service/seasonrules"
	createReservationUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-RentalService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены). nil означает, что метрики выключены.
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

	// Обёртка над соединением: без метрик просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	blockedDateRepository := blockedDateRepo.NewRepository(wrappedDB)
	seasonRuleRepository := seasonRuleRepo.NewRepository(wrappedDB)

	// Кэш правил сезона
	ruleCache := rulecache.New(
		seasonRuleRepository,
		rulecache.Options{
			TTL:             cfg.Rules.CacheTTL(),
			FallbackOnEmpty: cfg.Rules.FallbackOnEmpty,
		},
		metricsCollector,
		log,
	)
	log.Info("Season rule cache initialized (ttl=%s, fallback_on_empty=%v)",
		cfg.Rules.CacheTTL(), cfg.Rules.FallbackOnEmpty)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		reservationRepository,
		blockedDateRepository,
		ruleCache,
		metricsCollector,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		blockedDateRepository,
		txMgr,
		log,
	)
	seasonRulesSvc := seasonRulesService.NewService(seasonRuleRepository, ruleCache, log)
	blockedDatesSvc := blockedDatesService.NewService(blockedDateRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		availabilitySvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(availabilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	validateBooking := validateBookingHandler.NewHandler(availabilitySvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	createAdminReservation := createReservationHandler.NewAdminHandler(createReservationUseCase, log)
	getActiveSeasonRules := getActiveSeasonRulesHandler.NewHandler(seasonRulesSvc, log)

	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)

	listSeasonRules := listSeasonRulesHandler.NewHandler(seasonRulesSvc, log)
	getSeasonRule := getSeasonRuleHandler.NewHandler(seasonRulesSvc, log)
	createSeasonRule := createSeasonRuleHandler.NewHandler(seasonRulesSvc, log)
	updateSeasonRule := updateSeasonRuleHandler.NewHandler(seasonRulesSvc, log)
	deleteSeasonRule := deleteSeasonRuleHandler.NewHandler(seasonRulesSvc, log)
	refreshSeasonRules := refreshSeasonRulesHandler.NewHandler(seasonRulesSvc, log)

	createBlockedDate := createBlockedDateHandler.NewHandler(blockedDatesSvc, log)
	listBlockedDates := listBlockedDatesHandler.NewHandler(blockedDatesSvc, log)
	deleteBlockedDate := deleteBlockedDateHandler.NewHandler(blockedDatesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/season-rules/active", getActiveSeasonRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey))

	// --- Бронирования ---
	admin.HandleFunc("/admin/reservations", createAdminReservation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Правила сезона ---
	admin.HandleFunc("/season-rules", listSeasonRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/season-rules", createSeasonRule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/season-rules/refresh", refreshSeasonRules.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/season-rules/{id}", getSeasonRule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/season-rules/{id}", updateSeasonRule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/season-rules/{id}", deleteSeasonRule.Handle).Methods(http.MethodDelete)

	// --- Блокировки ---
	admin.HandleFunc("/blocked-dates", listBlockedDates.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-dates", createBlockedDate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-dates/{id}", deleteBlockedDate.Handle).Methods(http.MethodDelete)

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
