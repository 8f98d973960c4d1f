// Package store persists decode_trace output (pushed search nodes and
// the terminal node of each decode run) to a SQLite-backed database
// via GORM, for offline inspection or visualization. It is entirely
// optional: decoder.Decode and decoder.DecodeTrace work with a nil
// sink and never import this package.
package store

import (
	"database/sql"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Config holds database configuration.
type Config struct {
	Path string // path to SQLite database file
}

// DB wraps the GORM database instance.
type DB struct {
	db *gorm.DB
}

// NewDB creates a new database connection with the pure Go SQLite
// driver and migrates the decode-run schema.
func NewDB(config Config, log *log.Logger) (*DB, error) {
	var gormLog logger.Interface
	if log != nil {
		gormLog = logger.New(
			log,
			logger.Config{
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		)
	} else {
		gormLog = logger.Default.LogMode(logger.Silent)
	}

	dialector := sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        config.Path,
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := tuneForTraceWrites(sqlDB); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&DecodeRun{}, &DecodeNode{}); err != nil {
		return nil, err
	}

	if log != nil {
		log.Printf("decode-trace database initialized: %s", config.Path)
	}

	return &DB{db: db}, nil
}

// tuneForTraceWrites configures SQLite for a single decoder process
// appending many DecodeNode rows in a short burst per run: WAL lets
// the burst write concurrently with any reader inspecting past runs,
// and the larger page cache amortizes the per-node insert cost of a
// large trace. There is no declared foreign key between DecodeNode and
// DecodeRun, so PRAGMA foreign_keys is left at its default.
func tuneForTraceWrites(sqlDB *sql.DB) error {
	pragmaSettings := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA cache_size=-20000",
		"PRAGMA temp_store=memory",
	}

	for _, pragma := range pragmaSettings {
		if _, err := sqlDB.Exec(pragma); err != nil {
			return err
		}
	}

	return nil
}

// GetDB returns the underlying GORM database instance.
func (db *DB) GetDB() *gorm.DB {
	return db.db
}

// Close closes the database connection.
func (db *DB) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health checks if the database connection is healthy.
func (db *DB) Health() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
