package config

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV"      envDefault:"development"`
		Port        string `env:"PORT"         envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	}
	DB struct {
		Driver   string `env:"DB_DRIVER"   envDefault:"postgres"`
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"ladder_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
		TimeZone string `env:"DB_TIMEZONE" envDefault:"UTC"`
	}
	Redis struct {
		Addr     string        `env:"REDIS_ADDR"`
		Password string        `env:"REDIS_PASSWORD"`
		DB       int           `env:"REDIS_DB"           envDefault:"0"`
		LockTTL  time.Duration `env:"CHALLENGE_LOCK_TTL" envDefault:"5s"`
	}
	Log struct {
		Level  string `env:"LOG_LEVEL"  envDefault:"info"`
		Format string `env:"LOG_FORMAT"`
		Output string `env:"LOG_OUTPUT" envDefault:"stdout"`
	}
}

// Global DB instance, accessible after Initialize.
var DB *gorm.DB

// Global redis client, nil when REDIS_ADDR is not set.
var Redis *redis.Client

var appConfig *Config
var once sync.Once

// LoadConfig loads configuration from environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	// A missing .env is fine: production sets variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on system environment variables.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
		if cfg.App.Env == "development" {
			cfg.Log.Format = "console"
		}
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.DB.Driver, DriverPostgres, DriverSQLite)
	}

	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		log.Println("WARNING: Using default DB password in production. Please set DB_PASSWORD environment variable.")
	}

	appConfig = cfg
	return cfg, nil
}

// Dialector returns the gorm dialector for the configured driver.
func (c Config) Dialector() gorm.Dialector {
	if c.DB.Driver == DriverSQLite {
		return sqlite.Open(c.DB.Name)
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
		c.DB.TimeZone,
	)
	return postgres.Open(dsn)
}

// ConnectDB establishes a connection to the database using the provided configuration.
// It sets the global DB variable.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(cfg.Dialector(), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Printf("Successfully connected to %s database!", cfg.DB.Driver)
	return gormDB, nil
}

// ConnectRedis opens the redis client used for challenge locks.
// It returns nil without error when no address is configured.
func ConnectRedis(cfg Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	Redis = client
	return client, nil
}

// Initialize loads all configurations and connects to the database and redis.
// This should be called once at the start of the application.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}

		if _, err = ConnectDB(*loadedCfg); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}

		if _, err = ConnectRedis(*loadedCfg); err != nil {
			loadErr = fmt.Errorf("failed to connect to redis during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded application configuration.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}
