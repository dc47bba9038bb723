package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultUserAgent is the default User-Agent string sent with all HTTP requests.
const DefaultUserAgent = "ReelRate/1.0 (+https://github.com/Belphemur/ReelRate)"

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
	DefaultLanguage     = "en-US"
)

type TMDBConfig struct {
	AccessToken  string `mapstructure:"access_token"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Language     string `mapstructure:"language"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Config struct {
	TMDB                  TMDBConfig `mapstructure:"tmdb"`
	ProxyConnectionString string     `mapstructure:"proxy_connection_string"`
	ClientTimeout         string     `mapstructure:"client_timeout"` // Go duration string like "30s", "1h", etc.
	UserAgent             string     `mapstructure:"user_agent"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	LogLevel string `mapstructure:"log_level"`
	Cache    struct {
		Provider string `mapstructure:"provider"` // "memory" or "redis"
		Size     int    `mapstructure:"size"`     // Maximum number of entries in the LRU cache
		TTL      string `mapstructure:"ttl"`      // Go duration string like "10m", "1h", etc.
	} `mapstructure:"cache"`
	Session struct {
		Provider string `mapstructure:"provider"` // "file", "memory" or "redis"
		Path     string `mapstructure:"path"`     // file provider only
		Key      string `mapstructure:"key"`      // redis provider only
	} `mapstructure:"session"`
	Redis  RedisConfig `mapstructure:"redis"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Logs go to stderr so CLI output stays pipeable
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: false,
	}).With().Timestamp().Logger()

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	level := zerolog.InfoLevel
	if config.LogLevel != "" {
		if parsedLevel, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = parsedLevel
		} else {
			logger.Warn().Str("invalid_level", config.LogLevel).Msg("Invalid log level, using default 'info'")
		}
	}

	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Debug().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "reelrate"))
	}

	// Environment variable support
	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.BindEnv("log_level", "LOG_LEVEL")
	_ = viper.BindEnv("tmdb.access_token", "APP_TMDB_ACCESS_TOKEN", "TMDB_ACCESS_TOKEN")

	viper.SetDefault("tmdb.base_url", DefaultBaseURL)
	viper.SetDefault("tmdb.image_base_url", DefaultImageBaseURL)
	viper.SetDefault("tmdb.language", DefaultLanguage)
	viper.SetDefault("client_timeout", "30s")
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.address", "localhost")
	viper.SetDefault("metrics.port", 9090)
	viper.SetDefault("cache.provider", "memory")
	viper.SetDefault("cache.size", 500)
	viper.SetDefault("cache.ttl", "10m")
	viper.SetDefault("session.provider", "file")
	viper.SetDefault("session.key", "reelrate:guest_session")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	config.TMDB.Language = NormalizeLanguage(config.TMDB.Language)

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

func GetUserAgent() string {
	if globalConfig != nil && globalConfig.UserAgent != "" {
		return globalConfig.UserAgent
	}

	return DefaultUserAgent
}

func GetLogger() zerolog.Logger {
	return logger
}
