// Package stats provides moment and autocorrelation diagnostics for traces.
//
// These are the statistics the multifractal wavelet model pipeline consumes:
// raw moments for per-scale energy matching during estimation, and the
// autocorrelation function for comparing the correlation structure of an
// observed trace against a synthesized one.
//
// # Moments
//
//	mean := stats.Mean(values)
//	variance := stats.Variance(values)
//	energy := stats.MeanSquare(coeffs) // second raw moment
//
// # Autocorrelation
//
//	// ACF up to a maximum lag
//	acf := stats.ACF(series, 50)
//
//	// ACF with 95% confidence bounds
//	result := stats.ACFWithConfidence(series, 50)
//	significant := stats.SignificantLags(result.Values, result.ConfBounds)
//
// A long-range-dependent trace shows ACF values that stay above the
// confidence bounds far beyond the first few lags.
package stats
