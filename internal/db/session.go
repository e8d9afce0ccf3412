package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Config holds the connection settings, read once at startup.
type Config struct {
	Host           string
	Port           int
	Name           string
	User           string
	Password       string
	ConnectTimeout time.Duration
}

func (c Config) dsn() string {
	var b strings.Builder
	fmt.Fprintf(&b, "host=%s port=%d dbname=%s user=%s", c.Host, c.Port, c.Name, c.User)
	if c.Password != "" {
		fmt.Fprintf(&b, " password=%s", c.Password)
	}
	if c.ConnectTimeout > 0 {
		fmt.Fprintf(&b, " connect_timeout=%d", int(c.ConnectTimeout.Seconds()))
	}
	return b.String()
}

// Tx is the slice of transaction behavior the executor needs. pgx.Tx
// satisfies it.
type Tx interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Session is one live database session. The process holds at most one.
type Session interface {
	Begin(ctx context.Context) (Tx, error)
	Close(ctx context.Context) error
	IsClosed() bool
}

// dialer opens a new session. Swapped out in tests.
type dialer func(ctx context.Context, cfg Config) (Session, error)

type pgxSession struct {
	conn *pgx.Conn
}

func (s *pgxSession) Begin(ctx context.Context) (Tx, error) {
	return s.conn.Begin(ctx)
}

func (s *pgxSession) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

func (s *pgxSession) IsClosed() bool {
	return s.conn.IsClosed()
}

func pgxDial(ctx context.Context, cfg Config) (Session, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	conn, err := pgx.Connect(ctx, cfg.dsn())
	if err != nil {
		return nil, err
	}
	return &pgxSession{conn: conn}, nil
}
