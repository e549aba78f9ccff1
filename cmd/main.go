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
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"

	getCalendarEventsHandler "github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers/get_calendar_events"
	getFreeSlotsHandler "github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers/get_free_slots"
	getHealthHandler "github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers/get_health"
	getUserBookingsHandler "github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers/get_user_bookings"
	postChatMessageHandler "github.com/m04kA/SMC-ScheduleAssistant/internal/api/handlers/post_chat_message"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/config"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/infra/credstore"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/infra/sessionstore"
	bookingLogRepo "github.com/m04kA/SMC-ScheduleAssistant/internal/infra/storage/bookinglog"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-ScheduleAssistant/internal/nlp"
	schedulingService "github.com/m04kA/SMC-ScheduleAssistant/internal/service/scheduling"
	findSlotsUC "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/find_slots"
	getBookingsUC "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_bookings"
	getEventsUC "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/get_events"
	handleMessageUC "github.com/m04kA/SMC-ScheduleAssistant/internal/usecase/handle_message"
	"github.com/m04kA/SMC-ScheduleAssistant/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleAssistant/pkg/logger"
	"github.com/m04kA/SMC-ScheduleAssistant/pkg/metrics"
)

// noopMetrics используется при выключенных метриках
type noopMetrics struct{}

func (noopMetrics) IncBookingCreated() {}
func (noopMetrics) IncTurn(string)     {}

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

	log.Info("Starting SMC-ScheduleAssistant...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона планирования
	loc, err := time.LoadLocation(cfg.Scheduling.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var ucMetrics handleMessageUC.Metrics = noopMetrics{}
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		ucMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к Redis (диалоговое состояние и токены)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	pendingTTL := time.Duration(cfg.Scheduling.PendingTTLSeconds) * time.Second
	sessionStore := sessionstore.NewStore(redisClient, pendingTTL)
	credStore := credstore.NewStore(redisClient)

	// Подключаемся к базе данных (опционально, журнал бронирований)
	var (
		db           *sql.DB
		logRepo      *bookingLogRepo.Repository
		bookingLog   handleMessageUC.BookingLogRepository
		healthChecks = map[string]getHealthHandler.CheckFunc{}
	)
	healthChecks["redis"] = func(ctx context.Context) error {
		return redisClient.Ping(ctx).Err()
	}

	if cfg.Database.Enabled {
		db, err = sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			logRepo = bookingLogRepo.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			logRepo = bookingLogRepo.NewRepository(db)
		}
		bookingLog = logRepo

		healthChecks["postgres"] = func(ctx context.Context) error {
			return db.PingContext(ctx)
		}
	} else {
		log.Info("Database disabled, booking log is not persisted")
	}

	// Клиент Google Calendar
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}
	calendarClient := googlecalendar.NewClient(oauthConfig, credStore, cfg.Google.CalendarIDs, loc, log)
	log.Info("Google Calendar client initialized (calendars=%v)", cfg.Google.CalendarIDs)

	// Сервисы и экстрактор
	schedSvc := schedulingService.NewService(cfg.Scheduling.BusinessStartHour, cfg.Scheduling.BusinessEndHour, log)
	extractor := nlp.NewExtractor(loc, cfg.Scheduling.BusinessStartHour, cfg.Scheduling.BusinessEndHour)

	// Инициализируем use cases
	minBooking := time.Duration(cfg.Scheduling.MinBookingDurationMinutes) * time.Minute
	minDisplay := time.Duration(cfg.Scheduling.MinDisplayDurationMinutes) * time.Minute

	handleMessageUseCase := handleMessageUC.NewUseCase(
		calendarClient,
		sessionStore,
		extractor,
		schedSvc,
		bookingLog,
		ucMetrics,
		handleMessageUC.Config{
			Location:           loc,
			MinBookingDuration: minBooking,
			MinDisplayDuration: minDisplay,
			WidenEmptyResults:  cfg.Scheduling.WidenEmptyResults,
			MaxListSlots:       cfg.Scheduling.MaxListSlots,
		},
		log,
	)

	findSlotsUseCase := findSlotsUC.NewUseCase(calendarClient, schedSvc, loc, minDisplay, log)
	getEventsUseCase := getEventsUC.NewUseCase(calendarClient, loc, cfg.Scheduling.EventsLookaheadDays, log)

	// Инициализируем handlers
	postChatMessage := postChatMessageHandler.NewHandler(handleMessageUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(findSlotsUseCase, log)
	getCalendarEvents := getCalendarEventsHandler.NewHandler(getEventsUseCase, log)
	getHealth := getHealthHandler.NewHandler(healthChecks, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", getHealth.Handle).Methods(http.MethodGet)

	// API prefix; идентификатор пользователя берется из X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.UserID(cfg.Scheduling.DefaultUserID))

	// Диалог с ассистентом
	api.HandleFunc("/chat/schedule", postChatMessage.Handle).Methods(http.MethodPost)

	// Свободные слоты на дату
	api.HandleFunc("/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Ближайшие события календаря
	api.HandleFunc("/calendar/events", getCalendarEvents.Handle).Methods(http.MethodGet)

	// История бронирований (только при включенной БД)
	if logRepo != nil {
		getBookingsUseCase := getBookingsUC.NewUseCase(logRepo, log)
		getUserBookings := getUserBookingsHandler.NewHandler(getBookingsUseCase, log)
		api.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	}

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
