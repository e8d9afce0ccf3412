package kpi

import "time"

// Value is one scalar metric. Empty marks a query that succeeded but had no
// usable row (empty table or NULL aggregate). The aggregator never
// substitutes fabricated numbers: the presentation layer decides what an
// Empty metric looks like.
type Value[T any] struct {
	Val   T    `json:"value"`
	Empty bool `json:"empty"`
}

// TrendPoint is one day of the orders trend.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// Series is a time-ordered metric. Empty has the same meaning as on Value.
type Series struct {
	Points []TrendPoint `json:"points"`
	Empty  bool         `json:"empty"`
}

// CategoryQuantity is one slice of the stock distribution.
type CategoryQuantity struct {
	Category string `json:"category"`
	Quantity int64  `json:"quantity"`
}

// Distribution is quantity summed per SKU category.
type Distribution struct {
	Items []CategoryQuantity `json:"items"`
	Empty bool               `json:"empty"`
}
