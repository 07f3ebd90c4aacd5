package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/dbsmedya/goclean/internal/config"
	"github.com/dbsmedya/goclean/internal/dataset"
)

// SQLSource reads tabular data out of a MySQL database.
type SQLSource struct {
	db *sql.DB
}

// OpenSQL connects to the configured MySQL database.
func OpenSQL(cfg *config.DatabaseConfig) (*SQLSource, error) {
	db, err := sql.Open("mysql", BuildDSN(cfg))
	if err != nil {
		return nil, &IngestError{Source: cfg.Database, Message: "cannot open database", Err: err}
	}
	if cfg.MaxConnections > 0 {
		db.SetMaxOpenConns(cfg.MaxConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	db.SetConnMaxLifetime(10 * time.Minute)
	return &SQLSource{db: db}, nil
}

// NewSQLSource wraps an existing database handle. Useful for testing.
func NewSQLSource(db *sql.DB) *SQLSource {
	return &SQLSource{db: db}
}

// Close releases the underlying connection pool.
func (s *SQLSource) Close() error {
	return s.db.Close()
}

// Ping verifies the connection.
func (s *SQLSource) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &IngestError{Source: "mysql", Message: "connection failed", Err: err}
	}
	return nil
}

// ReadTable materializes a whole table as a dataset, preserving the
// table's column order. SQL NULL becomes the missing sentinel.
func (s *SQLSource) ReadTable(ctx context.Context, table string) (*dataset.Dataset, error) {
	quoted, err := QuoteIdentifierSafe(table)
	if err != nil {
		return nil, &IngestError{Source: table, Message: "invalid table name", Err: err}
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+quoted)
	if err != nil {
		return nil, &IngestError{Source: table, Message: "query failed", Err: err}
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, &IngestError{Source: table, Message: "failed to get columns", Err: err}
	}

	columns := make([]dataset.Column, len(names))
	for i, name := range names {
		columns[i] = dataset.Column{Name: name}
	}

	for rows.Next() {
		values := make([]interface{}, len(names))
		ptrs := make([]interface{}, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &IngestError{Source: table, Message: "failed to scan row", Err: err}
		}
		for i, v := range values {
			columns[i].Values = append(columns[i].Values, scanValue(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &IngestError{Source: table, Message: "error iterating rows", Err: err}
	}

	// The text protocol reports numeric columns as bytes; whole-column
	// coercion keeps mixed text columns text, same as the CSV reader.
	for i := range columns {
		columns[i].Values = coerceNumeric(columns[i].Values)
	}

	return dataset.New(columns...)
}

// scanValue converts a database/sql scan result to a cell value.
func scanValue(v interface{}) dataset.Value {
	switch x := v.(type) {
	case nil:
		return dataset.Missing()
	case int64:
		return dataset.Number(float64(x))
	case float64:
		return dataset.Number(x)
	case bool:
		if x {
			return dataset.Number(1)
		}
		return dataset.Number(0)
	case time.Time:
		return dataset.Date(x)
	case []byte:
		return dataset.Text(string(x))
	case string:
		return dataset.Text(x)
	default:
		return dataset.Text(fmt.Sprintf("%v", x))
	}
}

// BuildDSN constructs a MySQL DSN from configuration.
func BuildDSN(cfg *config.DatabaseConfig) string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
	)

	if cfg.Database != "" {
		dsn += cfg.Database
	}

	params := "?parseTime=true"
	switch cfg.TLS {
	case "disable":
		params += "&tls=false"
	case "required":
		params += "&tls=true"
	case "preferred", "":
		params += "&tls=preferred"
	}

	return dsn + params
}
