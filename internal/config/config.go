package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/confirmation"
)

// ErrInvalidConfig возвращается при ошибках валидации конфигурации
var ErrInvalidConfig = errors.New("invalid config")

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Studio        StudioConfig        `toml:"studio"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StudioConfig бизнес-настройки студии
type StudioConfig struct {
	ConfirmationPrefix string `toml:"confirmation_prefix"`
	// MissingHoursPolicy: "unconstrained" (по умолчанию) или "closed"
	MissingHoursPolicy string `toml:"missing_hours_policy"`
	// StrictCatalog: неактивные услуги и допы нельзя бронировать
	StrictCatalog bool `toml:"strict_catalog"`
}

type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	SMTPHost   string `toml:"smtp_host"`
	SMTPPort   int    `toml:"smtp_port"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	From       string `toml:"from"`
	AdminEmail string `toml:"admin_email"`
	Timeout    int    `toml:"timeout"` // секунды
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и проверяет её
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "lash_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			AutoMigrate:     true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "lash-booking-service",
		},
		Studio: StudioConfig{
			ConfirmationPrefix: "HLS",
			MissingHoursPolicy: string(domain.MissingHoursUnconstrained),
			StrictCatalog:      true,
		},
		Notifications: NotificationsConfig{
			SMTPPort: 587,
			Timeout:  10,
		},
	}
}

// Validate проверяет корректность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("%w: database.max_open_conns must be positive", ErrInvalidConfig)
	}

	switch domain.MissingHoursPolicy(c.Studio.MissingHoursPolicy) {
	case domain.MissingHoursUnconstrained, domain.MissingHoursClosed:
	default:
		return fmt.Errorf("%w: studio.missing_hours_policy must be %q or %q, got %q",
			ErrInvalidConfig, domain.MissingHoursUnconstrained, domain.MissingHoursClosed, c.Studio.MissingHoursPolicy)
	}

	if err := confirmation.ValidatePrefix(strings.TrimSpace(c.Studio.ConfirmationPrefix)); err != nil {
		return fmt.Errorf("%w: studio.confirmation_prefix: %v", ErrInvalidConfig, err)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	if c.Notifications.Enabled {
		if c.Notifications.SMTPHost == "" || c.Notifications.From == "" {
			return fmt.Errorf("%w: notifications.smtp_host and notifications.from are required when notifications are enabled", ErrInvalidConfig)
		}
	}

	return nil
}

// Policy политика для дней без записи в business_hours
func (s StudioConfig) Policy() domain.MissingHoursPolicy {
	return domain.MissingHoursPolicy(s.MissingHoursPolicy)
}
