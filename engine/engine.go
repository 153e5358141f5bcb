package engine

import (
	"database/sql"
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Config holds the environment-driven settings for opening a database.
type Config struct {
	// DSN is passed to the sqlite driver: a file path such as "./db.sqlite"
	// or ":memory:".
	DSN string `env:"VECFRAC_SQLITE_DSN" envDefault:":memory:"`

	// Functions controls whether the frac_* and vec_* SQL functions are
	// registered before the connection is opened.
	Functions bool `env:"VECFRAC_SQL_FUNCTIONS" envDefault:"true"`
}

// LoadConfig reads Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// OpenConfig registers the SQL functions when cfg asks for them and opens
// cfg.DSN.
func OpenConfig(cfg Config) (*sql.DB, error) {
	if cfg.Functions {
		if err := RegisterFunctions(); err != nil {
			return nil, err
		}
	}
	dsn := cfg.DSN
	if dsn == "" {
		dsn = ":memory:"
	}
	return Open(dsn)
}
