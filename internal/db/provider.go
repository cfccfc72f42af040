package db

import (
	"context"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
)

// Provider owns at most one database connection for the lifetime of a single
// request. All data access within a request goes through the same handle, and
// the provider is the only component that releases it.
type Provider struct {
	pool *sqlx.DB
	conn *sqlx.Conn
}

func NewProvider(pool *sqlx.DB) *Provider {
	return &Provider{pool: pool}
}

// Acquire returns the request's connection, checking one out of the pool on
// first use. Later calls within the same request return the cached handle.
func (p *Provider) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	if p.conn != nil {
		return p.conn, nil
	}

	conn, err := p.pool.Connx(ctx)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	p.conn = conn
	return p.conn, nil
}

// Release returns the connection to the pool if one was acquired. Calling it
// without a prior Acquire, or calling it a second time, is a no-op.
func (p *Provider) Release() error {
	if p.conn == nil {
		return nil
	}

	conn := p.conn
	p.conn = nil
	return conn.Close()
}

type contextKey string

const contextProviderKey contextKey = "dbProvider"

// WithProvider stores the request's provider in the context.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, contextProviderKey, p)
}

// FromContext returns the provider installed by Middleware.
func FromContext(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(contextProviderKey).(*Provider)
	return p, ok
}

// Middleware installs a fresh Provider into every request's context and
// guarantees the connection is released when the request ends, whether the
// handler succeeded or not.
func Middleware(pool *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := NewProvider(pool)
			defer func() {
				if err := p.Release(); err != nil {
					log.Printf("Failed to release database connection: %v", err)
				}
			}()

			next.ServeHTTP(w, r.WithContext(WithProvider(r.Context(), p)))
		})
	}
}
