package db

import (
	"errors"
	"fmt"
)

// Kind classifies a database error so callers can tell an unreachable
// endpoint apart from a bad statement. An empty result set is not an error
// and never produces one of these.
type Kind int

const (
	// KindConnection covers unreachable endpoint, rejected auth, connect
	// timeout, and a session closed by the peer.
	KindConnection Kind = iota
	// KindStatement covers malformed SQL, constraint violations, and type
	// mismatches.
	KindStatement
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindStatement:
		return "statement"
	}
	return "unknown"
}

// Error tags an underlying database failure with its Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func connectionErr(err error) *Error { return &Error{Kind: KindConnection, Err: err} }
func statementErr(err error) *Error  { return &Error{Kind: KindStatement, Err: err} }

// KindOf extracts the Kind from err. The boolean is false when err does not
// carry one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// ErrNoRowsAffected aborts a batch statement that was required to change at
// least one row.
var ErrNoRowsAffected = errors.New("statement affected no rows")
