// Package gomwm provides multifractal wavelet modeling of positive time series.
//
// GoMWM is a Go package for analyzing and synthesizing positive-valued,
// long-range-dependent (LRD) time series using the multifractal wavelet
// model (MWM): a scale-recursive model whose Haar wavelet coefficients are
// tied to the scaling coefficients by bounded, beta-distributed random
// multipliers. The construction guarantees non-negative output while
// reproducing the slow variance decay across scales that characterizes
// processes such as network traffic.
//
// # Features
//
//   - Model estimation from an observed trace (per-scale beta shapes)
//   - Synthesis of new traces of any power-of-two length
//   - Orthonormal Haar decomposition over flat, per-level coefficient arrays
//   - Deterministic synthesis from a caller-supplied random source
//   - Autocorrelation and moment diagnostics for model validation
//
// # Quick Start
//
// Fit a model and generate a synthetic trace:
//
//	series := timeseries.New(counts)
//	model := mwm.New(nil)
//	if err := model.Fit(series); err != nil {
//	    log.Fatal(err)
//	}
//	trace, _ := model.Synthesize(4096, rand.NewPCG(1, 2))
//
// Synthesize directly from explicit parameters:
//
//	params := &mwm.Params{Mean: 10, Shape: []float64{2, 2, 4, 8}}
//	trace, _ := mwm.Synthesize(params, 16, rand.NewPCG(1, 2))
//
// # Packages
//
// The library is organized into the following packages:
//
//   - mwm: model estimation and synthesis
//   - wavelet: scale trees and the Haar dyadic transform
//   - stats: autocorrelation and moment diagnostics
//   - timeseries: trace data structures and CSV utilities
//
// # References
//
//   - Riedi, R. H., Crouse, M. S., Ribeiro, V. J., & Baraniuk, R. G. (1999).
//     A Multifractal Wavelet Model with Application to Network Traffic
//   - Abry, P., & Veitch, D. (1998). Wavelet Analysis of Long-Range-Dependent
//     Traffic
package gomwm
