package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log      Logger         `mapstructure:"logger"`
	API      API            `mapstructure:"api"`
	Fetcher  Fetcher        `mapstructure:"fetcher"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port            int           `mapstructure:"port"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Fetcher configures the process that mirrors the API signal into the
// MetaTrader Files folder.
type Fetcher struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Interval time.Duration `mapstructure:"interval"`
	FilesDir string        `mapstructure:"files_dir"`
	FileName string        `mapstructure:"file_name"`
}

type TelegramConfig struct {
	BotToken                  string        `mapstructure:"bot_token"`
	ChatID                    int64         `mapstructure:"chat_id"`
	TimeoutDuration           time.Duration `mapstructure:"timeout_duration"`
	MaxGlobalRequestPerSecond int           `mapstructure:"max_global_request_per_second"`
}

// Enabled reports whether signals should be pushed to a Telegram chat.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("api.port", 3000)
	v.SetDefault("api.rate_limit", 10)
	v.SetDefault("api.rate_burst", 30)
	v.SetDefault("api.shutdown_timeout", 10*time.Second)

	v.SetDefault("fetcher.base_url", "http://localhost:3000")
	v.SetDefault("fetcher.timeout", 10*time.Second)
	v.SetDefault("fetcher.interval", 5*time.Second)
	v.SetDefault("fetcher.files_dir", "")
	v.SetDefault("fetcher.file_name", "barbellfx_signal.txt")

	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.chat_id", 0)
	v.SetDefault("telegram.timeout_duration", 10*time.Second)
	v.SetDefault("telegram.max_global_request_per_second", 1)
}

// Load reads config.yaml from the working directory (optional), a .env
// file (optional) and the environment. Environment keys use "_" instead
// of ".", e.g. API_PORT or FETCHER_BASE_URL.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file loaded:", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Hosting platforms hand the listen port over as PORT.
	if err := v.BindEnv("api.port", "API_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind api port: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Fetcher.Interval <= 0 {
		return nil, fmt.Errorf("fetcher.interval must be positive, got %s", cfg.Fetcher.Interval)
	}
	cfg.Fetcher.BaseURL = strings.TrimRight(cfg.Fetcher.BaseURL, "/")

	return &cfg, nil
}
