package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      Server
	Bun         BunConfig
	JWT         JWT
	LoggerMode  LoggerMode
	Marketplace Marketplace
}

type Server struct {
	Port            string
	Environment     string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

type BunConfig struct {
	DSN   string
	Debug bool
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

type JWT struct {
	Secret    string
	ExpiredIn int // minutes
}

// Marketplace holds the knobs of the negotiation core.
type Marketplace struct {
	DefaultCategory  string
	ReviewWindowDays int
	PreviewLength    int
}

// ReviewWindow is the period after job completion during which reviews are accepted.
func (m Marketplace) ReviewWindow() time.Duration {
	return time.Duration(m.ReviewWindowDays) * 24 * time.Hour
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.ratelimitrps", 10.0)
	v.SetDefault("server.ratelimitburst", 20)
	v.SetDefault("server.shutdowntimeout", 10*time.Second)
	v.SetDefault("bun.debug", false)
	v.SetDefault("jwt.expiredin", 60)
	v.SetDefault("loggermode.development", true)
	v.SetDefault("loggermode.level", "info")
	v.SetDefault("marketplace.defaultcategory", "general")
	v.SetDefault("marketplace.reviewwindowdays", 30)
	v.SetDefault("marketplace.previewlength", 100)
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	setDefaults(v)
	v.SetEnvPrefix("TASKBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	if c.Marketplace.ReviewWindowDays <= 0 {
		return nil, errors.New("marketplace.reviewWindowDays must be positive")
	}
	return &c, nil
}
