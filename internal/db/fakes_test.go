package db

import (
	"context"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRows struct {
	cols []string
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                        {}
func (r *fakeRows) Err() error                    { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *fakeRows) Scan(dest ...any) error        { return nil }
func (r *fakeRows) RawValues() [][]byte           { return nil }
func (r *fakeRows) Conn() *pgx.Conn               { return nil }
func (r *fakeRows) Values() ([]any, error)        { return r.rows[r.idx-1], nil }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

type fakeTx struct {
	rows      *fakeRows
	tag       pgconn.CommandTag
	queryErr  error
	execErr   error
	commitErr error

	execs     []string
	commits   int
	rollbacks int
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if t.queryErr != nil {
		return nil, t.queryErr
	}
	return t.rows, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	return t.tag, nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.commits++
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type fakeSession struct {
	tx       *fakeTx
	beginErr error
	begins   int
	closed   bool
}

func (s *fakeSession) Begin(ctx context.Context) (Tx, error) {
	s.begins++
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return s.tx, nil
}

func (s *fakeSession) Close(ctx context.Context) error {
	s.closed = true
	return nil
}

func (s *fakeSession) IsClosed() bool { return s.closed }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testManager(d dialer) *Manager {
	m := NewManager(Config{Host: "localhost", Port: 5432, Name: "supply_chain_db", User: "postgres"}, discardLogger())
	m.dial = d
	return m
}

// sessionSequence hands out the given sessions one per dial.
func sessionSequence(sessions ...Session) (dialer, *int) {
	calls := new(int)
	return func(ctx context.Context, cfg Config) (Session, error) {
		if *calls >= len(sessions) {
			return nil, io.EOF
		}
		s := sessions[*calls]
		*calls++
		return s, nil
	}, calls
}
