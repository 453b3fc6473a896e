package database

import (
	"fmt"

	"appointment-data-proxy/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connections holds one pool per logical database.
type Connections struct {
	Central *gorm.DB
	Company *gorm.DB
}

// NewConnections opens the central and company databases.
func NewConnections(cfg config.DatabaseConfig) (*Connections, error) {
	central, err := NewPostgresConnection("central", cfg.CentralURL, cfg)
	if err != nil {
		return nil, err
	}

	company, err := NewPostgresConnection("company", cfg.CompanyURL, cfg)
	if err != nil {
		closeDB(central)
		return nil, err
	}

	return &Connections{Central: central, Company: company}, nil
}

// NewPostgresConnection opens a pool for dsn. Sessions run in UTC so
// timestamps round-trip without zone conversion.
func NewPostgresConnection(name, dsn string, cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid %s database url: %w", name, err)
	}
	connConfig.RuntimeParams["timezone"] = "UTC"

	sqlDB := stdlib.OpenDB(*connConfig)
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	logrus.WithField("database", name).Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// Close closes both pools.
func (c *Connections) Close() {
	closeDB(c.Central)
	closeDB(c.Company)
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
