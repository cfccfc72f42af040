package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// The modernc driver registers itself as "sqlite", which sqlx does not
	// know a bindvar style for out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open connects to the SQLite database at path, creating the file on first
// use. The busy timeout keeps concurrent writers queued at the engine
// instead of failing immediately.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)

	pool, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(5)

	return pool, nil
}
