// Package stock derives health labels for inventory positions from their
// quantity and thresholds.
package stock

// Health is the three-tier label of an inventory position, plus Unknown for
// rows whose thresholds were never configured.
type Health string

const (
	// Critical: quantity has fallen to or below the safety stock.
	Critical Health = "CRITICAL"
	// Low: quantity is above safety stock but at or below the reorder point.
	Low Health = "LOW"
	// Normal: quantity is above the reorder point.
	Normal Health = "NORMAL"
	// Unknown: safety stock or reorder point is missing, so the row cannot
	// be placed in a tier. Unknown rows never alert.
	Unknown Health = "UNKNOWN"
)

// Classify maps one inventory position to exactly one tier. Boundary values
// belong to the more urgent tier: equality with the safety stock is
// Critical, equality with the reorder point is Low.
func Classify(quantityAvailable, safetyStock, reorderPoint int) Health {
	switch {
	case quantityAvailable <= safetyStock:
		return Critical
	case quantityAvailable <= reorderPoint:
		return Low
	default:
		return Normal
	}
}

// ClassifyNullable handles rows coming straight from the schema, where both
// thresholds are nullable. A missing threshold yields Unknown rather than a
// guessed tier.
func ClassifyNullable(quantityAvailable int, safetyStock, reorderPoint *int) Health {
	if safetyStock == nil || reorderPoint == nil {
		return Unknown
	}
	return Classify(quantityAvailable, *safetyStock, *reorderPoint)
}
