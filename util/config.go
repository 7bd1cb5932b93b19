package util

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	MigrationURL      string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	ScanCacheTTL      time.Duration `mapstructure:"SCAN_CACHE_TTL"`
	MaxFileSize       int64         `mapstructure:"MAX_FILE_SIZE"`
	MaxUploadSize     int           `mapstructure:"MAX_UPLOAD_SIZE"`
	ScanWorkers       int           `mapstructure:"SCAN_WORKERS"`
}

// defaults used when neither app.env nor the environment sets a value.
// Every key is listed so that the environment alone can configure the program.
var defaults = map[string]any{
	"ENVIRONMENT":         "production",
	"DB_SOURCE":           "",
	"MIGRATION_URL":       "file://db/migration",
	"HTTP_SERVER_ADDRESS": "http://0.0.0.0:8080",
	"REDIS_ADDRESS":       "localhost:6379",
	"ALLOWED_ORIGINS":     "",
	"SCAN_CACHE_TTL":      "24h",
	"MAX_FILE_SIZE":       8 << 20,
	"MAX_UPLOAD_SIZE":     1 << 20,
	"SCAN_WORKERS":        0,
}

// ErrConfigNotFound is returned along with a usable config when there is no
// app.env: the config then holds the defaults and the environment.
var ErrConfigNotFound = errors.New("config file not found")

func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var missing error
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		missing = fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	return config, missing
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The scheme may be omitted. If no port is specified, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host = u.Hostname()
	port = u.Port()

	if host == "" {
		err = fmt.Errorf("http server url %q has no host", config.HTTPServerAddress)
	}

	return
}

// ListenAddress returns the host:port the HTTP server should listen on.
func (config *Config) ListenAddress() (string, error) {
	host, port, err := config.ExtractHostPort()
	if err != nil {
		return "", err
	}

	if port == "" {
		port = "80"
	}

	return net.JoinHostPort(host, port), nil
}
