package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "FL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Println("Warning: no config file found, using defaults and environment")
	}

	return decode(v, env)
}

// LoadFromViper decodes configuration from an already populated viper
// instance, applying defaults and environment overrides
func LoadFromViper(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)
	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.requestTimeout", 10)    // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "data/finance-ledger.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.seedDemoData", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("alert.enabled", true)
	v.SetDefault("alert.interval", 360) // minutes
	v.SetDefault("alert.thresholdPercent", "80")
	v.SetDefault("alert.concurrency", 4)
	v.SetDefault("alert.budgetTimeout", 30) // seconds
	v.SetDefault("alert.lockDuration", 150) // seconds
	v.SetDefault("alert.timezone", "UTC")

	v.SetDefault("notification.exchange", "finance-ledger")
	v.SetDefault("notification.routingKey", "budget.alert")
	v.SetDefault("notification.queue", "budget-alerts")
}

// getEnvironment determines the environment to use based on FL_ENV
func getEnvironment() string {
	env := os.Getenv("FL_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"FL_DB_DRIVER":        "database.driver",
		"FL_DB_HOST":          "database.host",
		"FL_DB_PORT":          "database.port",
		"FL_DB_USERNAME":      "database.username",
		"FL_DB_PASSWORD":      "database.password",
		"FL_DB_NAME":          "database.database",
		"FL_DB_SSL_MODE":      "database.sslMode",
		"FL_DB_SQLITE_PATH":   "database.sqlitePath",
		"FL_SERVER_HOST":      "server.host",
		"FL_SERVER_PORT":      "server.port",
		"FL_LOGGER_LEVEL":     "logger.level",
		"FL_ALERT_TIMEZONE":   "alert.timezone",
		"FL_ALERT_THRESHOLD":  "alert.thresholdPercent",
		"FL_AMQP_URL":         "notification.amqpUrl",
		"FL_AMQP_EXCHANGE":    "notification.exchange",
		"FL_AMQP_ROUTING_KEY": "notification.routingKey",
		"FL_AMQP_QUEUE":       "notification.queue",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"FL_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"FL_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"FL_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"FL_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"FL_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"FL_ALERT_INTERVAL_MINUTES":        "alert.interval",
		"FL_ALERT_CONCURRENCY":             "alert.concurrency",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, 0); value > 0 {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Server.RequestTimeout = time.Duration(config.Server.RequestTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Alert.Interval = time.Duration(config.Alert.Interval) * time.Minute
	config.Alert.BudgetTimeout = time.Duration(config.Alert.BudgetTimeout) * time.Second
	config.Alert.LockDuration = time.Duration(config.Alert.LockDuration) * time.Second
}

// Location returns the configured alert time zone
func (c AlertConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
