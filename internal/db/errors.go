package db

import "fmt"

// ConnectionError means the underlying database engine could not be reached.
// It is not recovered; the request or command carrying it fails.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SchemaError means the schema script could not be executed. There is no
// partial-state recovery.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema initialization failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
