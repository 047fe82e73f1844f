package util

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	MigrationURL         string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins       []string      `mapstructure:"ALLOWED_ORIGINS"`
	ResultCacheTTL       time.Duration `mapstructure:"RESULT_CACHE_TTL"`
	MaxFiles             int           `mapstructure:"MAX_FILES"`
	MaxDocumentBytes     int64         `mapstructure:"MAX_DOCUMENT_BYTES"`
	MaxWorkers           int           `mapstructure:"MAX_WORKERS"`
	MaxErrorsPerDocument int           `mapstructure:"MAX_ERRORS_PER_DOCUMENT"`
	TokenizerMode        string        `mapstructure:"TOKENIZER_MODE"`
	RulesFile            string        `mapstructure:"RULES_FILE"`
}

// LoadConfig reads app.env from path, letting the environment variables override it.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("RESULT_CACHE_TTL", time.Hour)
	v.SetDefault("MAX_FILES", 32)
	v.SetDefault("MAX_DOCUMENT_BYTES", 1<<20)
	v.SetDefault("TOKENIZER_MODE", "classic")

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// The scheme is optional. If no port is specified, port will be an empty string.
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

	host, port = u.Hostname(), u.Port()
	if host == "" {
		err = fmt.Errorf("http server url %q has no host", config.HTTPServerAddress)
	}

	return
}

// ListenAddress returns the "host:port" address the HTTP server binds to.
// Port 80 is assumed when the address has none.
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
