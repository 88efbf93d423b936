package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database.
	DefaultMaxOpenConns = 10
	// DefaultMaxIdleConns is the default maximum number of idle connections to the database.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused.
	DefaultConnMaxLifetime = 30 * time.Second
)

// PostgresDatabaseClient manages the connection pool for the PostgreSQL
// backend of the credential store. Repositories issue their own SQL through
// the query helpers; the client owns pool sizing and lifecycle.
type PostgresDatabaseClient struct {
	db              *sql.DB
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewPostgresDatabaseClient(maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) *PostgresDatabaseClient {
	if maxOpenConns <= 0 {
		maxOpenConns = DefaultMaxOpenConns
	}
	if maxIdleConns <= 0 {
		maxIdleConns = DefaultMaxIdleConns
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = DefaultConnMaxLifetime
	}

	return &PostgresDatabaseClient{
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}
}

// Connect establishes a connection to a PostgreSQL database.
func (p *PostgresDatabaseClient) Connect(ctx context.Context, dsn string) error {
	var err error
	p.db, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	p.db.SetMaxOpenConns(p.MaxOpenConns)
	p.db.SetMaxIdleConns(p.MaxIdleConns)
	p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

	return p.Ping(ctx)
}

// Disconnect closes the PostgreSQL database connection.
func (p *PostgresDatabaseClient) Disconnect(ctx context.Context) error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// Ping verifies the database connection is alive.
func (p *PostgresDatabaseClient) Ping(ctx context.Context) error {
	if p.db == nil {
		return fmt.Errorf("not connected to a database")
	}
	return p.db.PingContext(ctx)
}

// QueryRowContext runs a query expected to return at most one row.
func (p *PostgresDatabaseClient) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return p.db.QueryRowContext(ctx, query, args...)
}

// QueryContext runs a query returning any number of rows.
func (p *PostgresDatabaseClient) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return p.db.QueryContext(ctx, query, args...)
}

// ExecContext runs a statement without a result set.
func (p *PostgresDatabaseClient) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return p.db.ExecContext(ctx, query, args...)
}

// EnsureSchema applies a DDL statement, typically a CREATE TABLE IF NOT
// EXISTS for the repository's table.
func (p *PostgresDatabaseClient) EnsureSchema(ctx context.Context, ddl string) error {
	_, err := p.db.ExecContext(ctx, ddl)
	return err
}
