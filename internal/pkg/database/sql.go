package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
)

// SQLClient represents a relational database client backed by sqlx
type SQLClient struct {
	DB *sqlx.DB
}

// DriverName maps a configured driver to the registered database/sql driver name
func DriverName(driver string) (string, error) {
	switch driver {
	case "postgres":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// BuildDSN builds the connection string for the configured driver
func BuildDSN(config models.DatabaseConfig) (string, error) {
	switch config.Driver {
	case "postgres":
		sslMode := config.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(config.Username, config.Password),
			Host:     fmt.Sprintf("%s:%d", config.Host, config.Port),
			Path:     "/" + config.Database,
			RawQuery: "sslmode=" + url.QueryEscape(sslMode),
		}
		return u.String(), nil
	case "mysql":
		cfg := mysql.NewConfig()
		cfg.User = config.Username
		cfg.Passwd = config.Password
		cfg.Net = "tcp"
		cfg.Addr = fmt.Sprintf("%s:%d", config.Host, config.Port)
		cfg.DBName = config.Database
		cfg.ParseTime = true
		cfg.ClientFoundRows = true
		cfg.Loc = time.UTC
		return cfg.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported sql driver %q", config.Driver)
	}
}

// NewSQLClient opens and verifies a connection pool for postgres or mysql
func NewSQLClient(config models.DatabaseConfig) (*SQLClient, error) {
	driverName, err := DriverName(config.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := BuildDSN(config)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", config.Driver, err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", config.Driver, err)
	}

	return &SQLClient{DB: db}, nil
}

// GetDB returns the underlying sqlx handle
func (s *SQLClient) GetDB() *sqlx.DB {
	return s.DB
}

// Ping checks the connection
func (s *SQLClient) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close closes the connection pool
func (s *SQLClient) Close() error {
	return s.DB.Close()
}
