// Package adapter provides database adapter interfaces and implementations
// for sourcing tabular data into frames.
package adapter

import (
	"context"
	"database/sql"
)

// Config holds the configuration for connecting to a database.
type Config struct {
	// Type specifies the database type (e.g., "duckdb", "postgres")
	Type string

	// Path is the file path for file-based databases (e.g., DuckDB).
	// Use ":memory:" for an in-memory database
	Path string

	// Host is the hostname for network-based databases
	Host string

	// Port is the port number for network-based databases
	Port int

	// Database is the database name
	Database string

	// Username for authentication
	Username string

	// Password for authentication
	Password string

	// Schema is the default schema to use
	Schema string

	// Options contains additional driver-specific options
	Options map[string]string
}

// ColumnMeta describes a column of a database table.
type ColumnMeta struct {
	Name     string
	Type     string
	Nullable bool
	Position int
}

// TableMeta holds metadata about a database table.
type TableMeta struct {
	Schema  string
	Name    string
	Columns []ColumnMeta
}

// Rows wraps sql.Rows to provide a consistent interface across adapters.
type Rows struct {
	*sql.Rows
}

// Adapter is the interface all database adapters implement.
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string) (*Rows, error)

	// TableMetadata retrieves metadata for a table, optionally qualified as
	// "schema.table".
	TableMetadata(ctx context.Context, table string) (*TableMeta, error)

	// DialectName returns the SQL dialect name (e.g., "duckdb", "postgres").
	DialectName() string
}
