package kpi

import "time"

// Synthetic presentation fallbacks. These are demo numbers for dashboards
// with no data yet; they are never derived from real orders or stock, and
// the aggregator itself never returns them. Callers substitute them for an
// Empty result if they choose to.

var sampleTrendCounts = []int64{10, 15, 8, 12, 20, 18, 14}

// SampleOrdersTrend returns the documented 7-point demo series, one point
// per day ending yesterday, in chronological order.
func SampleOrdersTrend(now time.Time) Series {
	pts := make([]TrendPoint, len(sampleTrendCounts))
	for i, c := range sampleTrendCounts {
		pts[i] = TrendPoint{
			Date:  now.AddDate(0, 0, i-len(sampleTrendCounts)),
			Count: c,
		}
	}
	return Series{Points: pts}
}

// SampleStockDistribution returns the demo category split.
func SampleStockDistribution() Distribution {
	return Distribution{Items: []CategoryQuantity{
		{Category: "Electronics", Quantity: 150},
		{Category: "Textile", Quantity: 200},
		{Category: "Food", Quantity: 300},
		{Category: "Automotive", Quantity: 100},
	}}
}
