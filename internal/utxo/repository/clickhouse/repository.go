package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
	}

	// Batch is the slice of the ClickHouse batch API the repository uses.
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}

	// Conn is the slice of the ClickHouse connection API the repository uses.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Ping(ctx context.Context) error
		Close() error
	}
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	ch, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: chConn{ch: ch}, metrics: metrics}, nil
}

// Ping checks connectivity to the server.
func (r *Repository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// chConn adapts the driver connection to the narrow Conn interface.
type chConn struct {
	ch clickhouse.Conn
}

func (c chConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.ch.PrepareBatch(ctx, query)
}

func (c chConn) Query(ctx context.Context, query string, args ...any) (driver.Rows, error) {
	return c.ch.Query(ctx, query, args...)
}

func (c chConn) Ping(ctx context.Context) error {
	return c.ch.Ping(ctx)
}

func (c chConn) Close() error {
	return c.ch.Close()
}
