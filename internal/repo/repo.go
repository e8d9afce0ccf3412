// Package repo holds the data-access repositories behind the CRUD screens.
// Every postgres implementation routes its SQL through the query executor so
// all traffic shares the same reconnect-and-retry protocol; memory twins
// back the handler tests.
package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
)

// Execer is the slice of the query executor the repositories use.
type Execer interface {
	Query(ctx context.Context, stmt string, args ...any) (*db.Table, error)
	Exec(ctx context.Context, stmt string, args ...any) (int64, error)
	ExecBatch(ctx context.Context, stmts ...db.Statement) error
}

// lastInsertedID reads the id an INSERT just generated. currval is scoped to
// the session, and the process holds exactly one, so this pairs correctly
// with the preceding statement.
func lastInsertedID(ctx context.Context, exec Execer, table, column string) (int, error) {
	t, err := exec.Query(ctx,
		`SELECT currval(pg_get_serial_sequence($1, $2)) AS id`, table, column)
	if err != nil {
		return 0, err
	}
	id, ok := db.AsInt64(t.Value(0, "id"))
	if !ok {
		return 0, errors.New("could not read generated id")
	}
	return int(id), nil
}

var (
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrSKUNotFound       = errors.New("sku not found")
	ErrInventoryNotFound = errors.New("inventory position not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrSupplierNotFound  = errors.New("supplier not found")

	// ErrInsufficientStock rejects an OUT movement that would drive the
	// available quantity below zero.
	ErrInsufficientStock = errors.New("insufficient stock for movement")
)
