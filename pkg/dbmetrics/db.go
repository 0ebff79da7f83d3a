package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sessojunior/agendamento/pkg/metrics"
)

// DBExecutor is the query surface shared by *sql.DB and *dbmetrics.DB.
// Repositories depend on this interface so they can run with or without
// metrics collection.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// poolStatsInterval controls how often connection pool gauges are refreshed
const poolStatsInterval = 15 * time.Second

// DB wraps *sql.DB and records query count/duration metrics per operation
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap instruments the given database handle
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault instruments the database handle and starts a background
// collector publishing connection pool stats until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBPoolStats(stats.OpenConnections, stats.Idle, stats.InUse)
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

// QueryContext runs a query returning rows and records its metrics
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, err, time.Since(start))
	return rows, err
}

// QueryRowContext runs a single-row query and records its metrics.
// Errors surface only on Scan, so the query is counted as successful here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, nil, time.Since(start))
	return row
}

// ExecContext runs a statement and records its metrics
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, err, time.Since(start))
	return res, err
}

func (d *DB) observe(query string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.ObserveDBQuery(operationName(query), status, duration)
}

// operationName extracts the leading SQL verb ("SELECT", "INSERT", ...) to
// keep metric cardinality bounded
func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToUpper(fields[0])
}
