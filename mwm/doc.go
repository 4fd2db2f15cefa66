// Package mwm implements the multifractal wavelet model (MWM) for
// positive-valued, long-range-dependent traces.
//
// The model ties the Haar wavelet coefficients of a trace to its scaling
// coefficients through bounded random multipliers, W = A * U, where A is
// symmetric beta-distributed on [-1, 1] with a per-scale shape parameter.
// Bounding the multiplier is what keeps every reconstructed value
// non-negative; the per-scale shapes control how the variance decays across
// scales, which is where long-range dependence and multifractal burstiness
// live.
//
// # Estimation
//
// Fit measures the detail-coefficient energy at every dyadic scale and
// recovers the shapes by closed-form moment matching:
//
//	model := mwm.New(nil)
//	if err := model.Fit(series); err != nil {
//	    return err
//	}
//	fmt.Println(model.Shape, model.Mean, model.FitResidual)
//
// A constant stretch of the input gives a scale with zero detail energy;
// that is a boundary estimate (a deterministic split), not an error.
//
// # Synthesis
//
// Synthesize builds a value-domain scale tree top-down, splitting each node
// with a freshly drawn multiplier:
//
//	trace, err := model.Synthesize(4096, rand.NewPCG(1, 2))
//
// Explicit parameters work without fitting:
//
//	params := &mwm.Params{Mean: 10, Shape: []float64{2, 2, 4, 8}}
//	trace, err := mwm.Synthesize(params, 16, rand.NewPCG(1, 2))
//
// Synthesis is deterministic given the source, conserves the expected total
// up to rounding, and never produces a negative value.
package mwm
