package repo

import "fmt"

// stockFilterConditions builds the WHERE tail for the stock view. Values
// always travel as bind parameters. The health filter is applied in Go after
// classification, not here.
func stockFilterConditions(f StockFilter) (string, []any) {
	var conditions string
	var args []any
	argIdx := 1

	if f.Warehouse != "" {
		conditions += fmt.Sprintf(" AND w.warehouse_name = $%d", argIdx)
		args = append(args, f.Warehouse)
		argIdx++
	}
	if f.Category != "" {
		conditions += fmt.Sprintf(" AND s.category = $%d", argIdx)
		args = append(args, f.Category)
		argIdx++
	}
	return conditions, args
}
