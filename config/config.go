package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task storage
	Storage StorageConfig

	// Scheduling heuristics
	Scheduler SchedulerConfig

	// Quick-add parsing
	QuickAdd QuickAddConfig

	// Optional calendar mirroring
	GoogleCalendar GoogleCalendarConfig

	// API rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	// SQLitePath is the database file; ":memory:" keeps everything in RAM.
	SQLitePath string
}

type SchedulerConfig struct {
	WorkStartHour          int
	WorkEndHour            int
	BreakMinutes           int
	DefaultDurationMinutes int
	MaxSuggestions         int
	ProbeStepMinutes       int
	MaxProbes              int
}

type QuickAddConfig struct {
	DefaultTitle string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")
	if path := viper.GetString("sqlite_path"); path != "" {
		cfg.Storage.SQLitePath = path
	}

	// Scheduler
	cfg.Scheduler.WorkStartHour = viper.GetInt("scheduler.work_start_hour")
	cfg.Scheduler.WorkEndHour = viper.GetInt("scheduler.work_end_hour")
	cfg.Scheduler.BreakMinutes = viper.GetInt("scheduler.break_minutes")
	cfg.Scheduler.DefaultDurationMinutes = viper.GetInt("scheduler.default_duration_minutes")
	cfg.Scheduler.MaxSuggestions = viper.GetInt("scheduler.max_suggestions")
	cfg.Scheduler.ProbeStepMinutes = viper.GetInt("scheduler.probe_step_minutes")
	cfg.Scheduler.MaxProbes = viper.GetInt("scheduler.max_probes")
	if cfg.Scheduler.WorkEndHour <= cfg.Scheduler.WorkStartHour {
		return nil, fmt.Errorf("scheduler window [%d, %d) is empty", cfg.Scheduler.WorkStartHour, cfg.Scheduler.WorkEndHour)
	}

	// Quick-add
	cfg.QuickAdd.DefaultTitle = viper.GetString("quickadd.default_title")

	// Google Calendar
	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath == "" {
		return nil, fmt.Errorf("google_calendar.enabled requires google_calendar.credentials_path")
	}

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.sqlite_path", "taskpilot.db")

	viper.SetDefault("scheduler.work_start_hour", 9)
	viper.SetDefault("scheduler.work_end_hour", 18)
	viper.SetDefault("scheduler.break_minutes", 15)
	viper.SetDefault("scheduler.default_duration_minutes", 60)
	viper.SetDefault("scheduler.max_suggestions", 5)
	viper.SetDefault("scheduler.probe_step_minutes", 15)
	viper.SetDefault("scheduler.max_probes", 96)

	viper.SetDefault("quickadd.default_title", "New Task")

	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("google_calendar.timezone", "Local")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)
}
