// Package dbpkg provides helpers to make db initialization and testing easier.
package dbpkg

import (
	"database/sql"
	"time"
)

// PoolConfig limits the connections held by the shared handle.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Setup sets up connection with database.
func Setup(driver, source string) (*sql.DB, error) {
	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// SetupPool sets up connection with database and applies the pool limits.
func SetupPool(driver, source string, pc PoolConfig) (*sql.DB, error) {
	db, err := Setup(driver, source)
	if err != nil {
		return nil, err
	}

	ApplyPool(db, pc)

	return db, nil
}

// ApplyPool applies non-zero pool limits to db.
func ApplyPool(db *sql.DB, pc PoolConfig) {
	if pc.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pc.MaxOpenConns)
	}

	if pc.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pc.MaxIdleConns)
	}

	if pc.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pc.ConnMaxLifetime)
	}
}
