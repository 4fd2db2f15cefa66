// Package timeseries provides trace data structures and utilities.
//
// This package includes the Series type for representing uniformly sampled
// traces (packet counts, byte counts per interval, and similar positive
// processes), along with CSV loading and saving.
//
// # Creating a Series
//
// Create a series from a slice:
//
//	counts := []float64{120, 98, 310, 45, 87, 160, 92, 230}
//	series := timeseries.New(counts)
//
// # Loading from CSV
//
// Load trace data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("trace.csv", "bytes")
//
//	// Customize loading
//	opts := &timeseries.CSVOptions{ValueColumn: "y", HasHeader: true}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Multiscale View
//
// Sum over non-overlapping blocks to inspect the trace at coarser scales:
//
//	coarse := series.Aggregate(16) // 16-sample block sums
//
// # Validation Helpers
//
// The modeling core requires non-negative, finite traces with power-of-two
// length; the predicates used for those checks are exposed here:
//
//	series.NonNegative()
//	series.Finite()
//	series.IsPowerOfTwoLen()
//	trimmed := series.TruncateToPowerOfTwo()
package timeseries
