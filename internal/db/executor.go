package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// maxAttempts bounds the executor's recovery loop: 2 attempts total, each
// preceded by a reconnect when the session is gone.
const maxAttempts = 2

// Result of one executed statement. Table is non-nil exactly when the
// statement was a read; writes report RowsAffected instead.
type Result struct {
	Table        *Table
	RowsAffected int64
}

// Statement is one entry of an ExecBatch call. RequireRows aborts the whole
// batch when the statement changes no rows.
type Statement struct {
	SQL         string
	Args        []any
	RequireRows bool
}

// Executor runs parameterized statements through the connection manager.
// Values must always travel as bind parameters, never interpolated into the
// statement text. A mutex serializes callers: the single session and its
// transaction state are not safe for concurrent use.
type Executor struct {
	mu  sync.Mutex
	mgr *Manager
	log *slog.Logger
}

func NewExecutor(mgr *Manager, log *slog.Logger) *Executor {
	return &Executor{mgr: mgr, log: log}
}

// IsRead classifies a statement: reads are those whose trimmed leading
// keyword is SELECT, case-insensitively. Everything else is a write.
func IsRead(stmt string) bool {
	trimmed := strings.TrimSpace(stmt)
	return len(trimmed) >= 6 && strings.EqualFold(trimmed[:6], "SELECT")
}

// Execute runs one statement inside its own transaction, committing on
// success. On failure it rolls back, drops the session, and retries once
// with a fresh connection. A terminal failure is returned as a tagged
// *Error; an empty read result is not a failure.
func (e *Executor) Execute(ctx context.Context, stmt string, args ...any) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	read := IsRead(stmt)
	var last error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			metricRetries.Inc()
			e.log.Warn("retrying statement after failure", "attempt", attempt, "err", last)
		}
		sess, err := e.mgr.session(ctx)
		if err != nil {
			// A failed reconnect consumes the attempt.
			last = connectionErr(err)
			continue
		}
		res, err := e.runOnce(ctx, sess, stmt, args, read)
		if err == nil {
			return res, nil
		}
		last = err
		metricStatementErrors.Inc()
		e.mgr.forceClose(ctx)
	}
	return Result{}, last
}

// Query runs a read statement and materializes its rows.
func (e *Executor) Query(ctx context.Context, stmt string, args ...any) (*Table, error) {
	res, err := e.Execute(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	if res.Table == nil {
		return nil, statementErr(fmt.Errorf("not a read statement: %q", firstWord(stmt)))
	}
	return res.Table, nil
}

// Exec runs a write statement and returns the number of affected rows. Zero
// rows affected is a success, not an error.
func (e *Executor) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	res, err := e.Execute(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

// ExecBatch runs several write statements in one transaction: either all
// commit or none do. A RequireRows statement that changes nothing aborts the
// batch with ErrNoRowsAffected, which is never retried.
func (e *Executor) ExecBatch(ctx context.Context, stmts ...Statement) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var last error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			metricRetries.Inc()
		}
		sess, err := e.mgr.session(ctx)
		if err != nil {
			last = connectionErr(err)
			continue
		}
		err = e.runBatch(ctx, sess, stmts)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrNoRowsAffected) {
			return err
		}
		last = err
		metricStatementErrors.Inc()
		e.mgr.forceClose(ctx)
	}
	return last
}

func (e *Executor) runOnce(ctx context.Context, sess Session, stmt string, args []any, read bool) (Result, error) {
	tx, err := sess.Begin(ctx)
	if err != nil {
		return Result{}, connectionErr(err)
	}

	if read {
		rows, err := tx.Query(ctx, stmt, args...)
		if err != nil {
			_ = tx.Rollback(ctx)
			return Result{}, statementErr(err)
		}
		table, err := materializeTable(rows)
		if err != nil {
			_ = tx.Rollback(ctx)
			return Result{}, statementErr(err)
		}
		if err := tx.Commit(ctx); err != nil {
			return Result{}, connectionErr(err)
		}
		return Result{Table: table}, nil
	}

	tag, err := tx.Exec(ctx, stmt, args...)
	if err != nil {
		_ = tx.Rollback(ctx)
		return Result{}, statementErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return Result{}, connectionErr(err)
	}
	return Result{RowsAffected: tag.RowsAffected()}, nil
}

func (e *Executor) runBatch(ctx context.Context, sess Session, stmts []Statement) error {
	tx, err := sess.Begin(ctx)
	if err != nil {
		return connectionErr(err)
	}

	for _, s := range stmts {
		tag, err := tx.Exec(ctx, s.SQL, s.Args...)
		if err != nil {
			_ = tx.Rollback(ctx)
			return statementErr(err)
		}
		if s.RequireRows && tag.RowsAffected() == 0 {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("%w: %q", ErrNoRowsAffected, firstWord(s.SQL))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return connectionErr(err)
	}
	return nil
}

func firstWord(stmt string) string {
	fields := strings.Fields(stmt)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
