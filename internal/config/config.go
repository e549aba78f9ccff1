package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleAssistant/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Redis      RedisConfig      `toml:"redis"`
	Database   DatabaseConfig   `toml:"database"`
	Google     GoogleConfig     `toml:"google"`
	Scheduling SchedulingConfig `toml:"scheduling"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RedisConfig настройки подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// DatabaseConfig настройки подключения к PostgreSQL
// БД опциональна: при enabled=false журнал бронирований не ведется
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// GoogleConfig настройки OAuth и календарей Google
type GoogleConfig struct {
	ClientID     string   `toml:"client_id"`
	ClientSecret string   `toml:"client_secret"`
	RedirectURL  string   `toml:"redirect_url"`
	CalendarIDs  []string `toml:"calendar_ids"`
}

// SchedulingConfig настройки планирования
type SchedulingConfig struct {
	BusinessStartHour         int    `toml:"business_start_hour"`
	BusinessEndHour           int    `toml:"business_end_hour"`
	MinBookingDurationMinutes int    `toml:"min_booking_duration_minutes"`
	MinDisplayDurationMinutes int    `toml:"min_display_duration_minutes"`
	Timezone                  string `toml:"timezone"`
	PendingTTLSeconds         int    `toml:"pending_ttl_seconds"`
	WidenEmptyResults         bool   `toml:"widen_empty_results"`
	EventsLookaheadDays       int    `toml:"events_lookahead_days"`
	MaxListSlots              int    `toml:"max_list_slots"`
	DefaultUserID             string `toml:"default_user_id"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "schedule-assistant"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if len(c.Google.CalendarIDs) == 0 {
		c.Google.CalendarIDs = []string{domain.DefaultCalendarID}
	}

	if c.Scheduling.BusinessStartHour == 0 {
		c.Scheduling.BusinessStartHour = domain.DefaultBusinessStartHour
	}
	if c.Scheduling.BusinessEndHour == 0 {
		c.Scheduling.BusinessEndHour = domain.DefaultBusinessEndHour
	}
	if c.Scheduling.MinBookingDurationMinutes == 0 {
		c.Scheduling.MinBookingDurationMinutes = int(domain.DefaultMinBookingDuration.Minutes())
	}
	if c.Scheduling.MinDisplayDurationMinutes == 0 {
		c.Scheduling.MinDisplayDurationMinutes = int(domain.DefaultMinDisplayDuration.Minutes())
	}
	if c.Scheduling.Timezone == "" {
		c.Scheduling.Timezone = domain.DefaultTimezone
	}
	if c.Scheduling.PendingTTLSeconds == 0 {
		c.Scheduling.PendingTTLSeconds = int(domain.DefaultPendingTTL.Seconds())
	}
	if c.Scheduling.EventsLookaheadDays == 0 {
		c.Scheduling.EventsLookaheadDays = domain.DefaultEventsLookaheadDays
	}
	if c.Scheduling.MaxListSlots == 0 {
		c.Scheduling.MaxListSlots = domain.DefaultSelectionListMaxSlots
	}
	if c.Scheduling.DefaultUserID == "" {
		c.Scheduling.DefaultUserID = domain.DefaultUserID
	}
}

func (c *Config) validate() error {
	if c.Scheduling.BusinessStartHour < 0 || c.Scheduling.BusinessStartHour > 23 {
		return fmt.Errorf("invalid business_start_hour: %d", c.Scheduling.BusinessStartHour)
	}
	if c.Scheduling.BusinessEndHour < 1 || c.Scheduling.BusinessEndHour > 24 {
		return fmt.Errorf("invalid business_end_hour: %d", c.Scheduling.BusinessEndHour)
	}
	if c.Scheduling.BusinessStartHour >= c.Scheduling.BusinessEndHour {
		return fmt.Errorf("business_start_hour %d must be before business_end_hour %d",
			c.Scheduling.BusinessStartHour, c.Scheduling.BusinessEndHour)
	}
	if c.Database.Enabled && c.Database.Host == "" {
		return fmt.Errorf("database enabled but host is empty")
	}
	return nil
}
