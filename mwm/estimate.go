package mwm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gomwm/stats"
	"github.com/sartorproj/gomwm/timeseries"
	"github.com/sartorproj/gomwm/wavelet"
)

// Fit estimates the model parameters from an observed trace. The trace must
// be non-empty, of power-of-two length, and contain only finite,
// non-negative values; all preconditions are checked before any work is done.
//
// Estimation runs the Haar cascade, measures the empirical energy (mean
// square) of the detail coefficients at every scale, and inverts the
// multiplier identity E[W_j^2] = E[U_j^2] / (2 p_j + 1) by moment matching.
// The scaling-coefficient energy is propagated across scales with the Haar
// identity E[U_{j+1}^2] = (E[U_j^2] + E[W_j^2]) / 2, so each shape has a
// closed form and no iterative solver is involved.
//
// A scale whose detail energy is zero (a locally constant trace) is a
// legitimate boundary estimate, not an error: its shape becomes +Inf (or
// MaxShape when finite), making the corresponding synthesis split
// deterministic. Estimates below MinShape are clamped upward.
func (m *Model) Fit(series *timeseries.Series) error {
	if err := m.cfg.validate(); err != nil {
		return err
	}
	if series == nil {
		return fmt.Errorf("%w: got nil series", ErrInvalidLength)
	}
	if !series.IsPowerOfTwoLen() {
		return fmt.Errorf("%w: got length %d", ErrInvalidLength, series.Len())
	}
	for i, v := range series.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: value %v at index %d", ErrInvalidSequence, v, i)
		}
	}

	n := series.Len()
	nscale, err := m.scaleCount(n)
	if err != nil {
		return err
	}

	smooth, tree, err := wavelet.Decompose(series.Values, nscale)
	if err != nil {
		return err
	}

	energy := make([]float64, nscale)
	for j := 0; j < nscale; j++ {
		energy[j] = stats.MeanSquare(tree.Level(j))
	}

	shape := make([]float64, nscale)
	uEnergy := stats.MeanSquare(smooth)
	for j := 0; j < nscale; j++ {
		shape[j] = m.matchShape(uEnergy, energy[j])
		uEnergy = (uEnergy + energy[j]) / 2
	}

	m.Shape = shape
	m.Mean = series.Mean()
	m.N = n
	m.J = nscale
	m.SD = 0
	if len(smooth) > 1 {
		m.SD = stat.StdDev(smooth, nil)
	}
	m.LevelEnergy = energy
	m.FitResidual = fitResidual(stats.MeanSquare(smooth), shape, energy)
	m.fitted = true

	return nil
}

// scaleCount determines how many cascade levels to estimate so that at least
// MinCoarse scaling coefficients remain at the top.
func (m *Model) scaleCount(n int) (int, error) {
	if m.cfg.MinCoarse > n/2 && n > 1 {
		return 0, fmt.Errorf("%w: MinCoarse %d leaves no scales for length %d",
			ErrInvalidParameters, m.cfg.MinCoarse, n)
	}

	nscale := 0
	for width := n; width/2 >= m.cfg.MinCoarse && width > 1; width /= 2 {
		nscale++
	}
	return nscale, nil
}

// matchShape inverts the multiplier variance at one scale, clamping to the
// configured domain.
func (m *Model) matchShape(uEnergy, wEnergy float64) float64 {
	if wEnergy == 0 {
		// Degenerate scale: no spread at all, deterministic split.
		return m.cfg.MaxShape
	}

	p := 0.5 * (uEnergy/wEnergy - 1)
	switch {
	case p < m.cfg.MinShape:
		return m.cfg.MinShape
	case p > m.cfg.MaxShape:
		return m.cfg.MaxShape
	default:
		return p
	}
}

// fitResidual measures how far the clamped shapes are from reproducing the
// observed level energies, as a root-mean-square relative error.
func fitResidual(uEnergy float64, shape, energy []float64) float64 {
	sum, count := 0.0, 0
	for j := range shape {
		var implied float64
		if !math.IsInf(shape[j], 1) {
			implied = uEnergy / (2*shape[j] + 1)
		}
		if energy[j] > 0 {
			rel := (implied - energy[j]) / energy[j]
			sum += rel * rel
			count++
		}
		uEnergy = (uEnergy + implied) / 2
	}
	if count == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(count))
}
