package db

import "context"

// The schema is drop-and-recreate: running it again clears all existing data.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS user`,
	`CREATE TABLE user (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`,
}

// InitSchema clears any existing data and creates fresh tables over the
// provider's connection. It is only ever invoked by an explicit
// administrative action, never on the request path.
func InitSchema(ctx context.Context, p *Provider) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}

	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return &SchemaError{Err: err}
		}
	}
	return nil
}
