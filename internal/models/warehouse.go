package models

// Warehouse represents a storage site holding inventory positions.
type Warehouse struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	CapacityM3 float64 `json:"capacity_m3"`
}
