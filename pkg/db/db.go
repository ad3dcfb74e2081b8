// Package db opens database connections and manages draw tables across the
// supported drivers.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names accepted by Open. These match the database/sql driver
// registrations pulled in above.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverDuckDB   = "duckdb"
)

// Open connects to the database identified by driver and dsn and applies
// per-driver connection settings. For sqlite3 and duckdb the dsn is a file
// path (or ":memory:"); for postgres it is a connection URL.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite, DriverPostgres, DriverDuckDB:
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	switch driver {
	case DriverPostgres:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(5 * time.Minute)
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	default:
		// File-backed engines: a single connection avoids table locking
		// between the writer and concurrent readers.
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}
