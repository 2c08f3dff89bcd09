package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/config"
)

func TestConfigValidate(t *testing.T) {
	validPostgres := func() *Config {
		return &Config{
			Driver:       DriverPostgres,
			Host:         "localhost",
			Port:         5432,
			Username:     "ledger",
			Password:     "secret",
			Database:     "ledger",
			SSLMode:      "disable",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			QueryTimeout: 5 * time.Second,
			LogLevel:     "info",
		}
	}

	t.Run("should accept a complete postgres config", func(t *testing.T) {
		assert.NoError(t, validPostgres().Validate())
	})

	t.Run("should require a host for postgres", func(t *testing.T) {
		cfg := validPostgres()
		cfg.Host = ""
		assert.EqualError(t, cfg.Validate(), "database host is required")
	})

	t.Run("should accept sqlite without server settings", func(t *testing.T) {
		cfg := &Config{
			Driver:       DriverSQLite,
			SQLitePath:   ":memory:",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			QueryTimeout: time.Second,
			LogLevel:     "silent",
		}
		assert.NoError(t, cfg.Validate())
		assert.True(t, cfg.IsInMemory())
	})

	t.Run("should reject unknown drivers", func(t *testing.T) {
		cfg := validPostgres()
		cfg.Driver = "mysql"
		assert.EqualError(t, cfg.Validate(), "unsupported database driver: mysql")
	})
}

func TestConfigDSN(t *testing.T) {
	sqliteCfg := &Config{Driver: DriverSQLite, SQLitePath: "data/ledger.db"}
	assert.Equal(t, "data/ledger.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteCfg.DSN())

	pgCfg := &Config{Driver: DriverPostgres, Host: "db", Port: 5432, Username: "u", Password: "p", Database: "d", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=d sslmode=disable", pgCfg.DSN())
}

func TestCreateConfigFromViperConfig(t *testing.T) {
	conf := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       DriverSQLite,
			SQLitePath:   "/var/lib/ledger.db",
			Port:         "6543",
			MaxOpenConns: 7,
			QueryTimeout: 3 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "warn"},
	}

	dbConf := CreateConfigFromViperConfig(conf)

	assert.Equal(t, DriverSQLite, dbConf.Driver)
	assert.Equal(t, "/var/lib/ledger.db", dbConf.SQLitePath)
	assert.Equal(t, 6543, dbConf.Port)
	assert.Equal(t, 7, dbConf.MaxOpenConns)
	assert.Equal(t, 3*time.Second, dbConf.QueryTimeout)
	assert.Equal(t, "warn", dbConf.LogLevel)
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("70000"))
}
