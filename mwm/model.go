// Package mwm implements the multifractal wavelet model for positive traces.
package mwm

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by estimation and synthesis. Wrapped errors carry
// the offending index or level; match with errors.Is.
var (
	// ErrInvalidLength indicates a trace or target length that is zero or
	// not a power of two.
	ErrInvalidLength = errors.New("mwm: length must be a positive power of two")
	// ErrInvalidSequence indicates a trace with negative or non-finite entries.
	ErrInvalidSequence = errors.New("mwm: trace entries must be finite and non-negative")
	// ErrInvalidParameters indicates an out-of-domain mean, shape, or config.
	ErrInvalidParameters = errors.New("mwm: invalid model parameters")
	// ErrNotFitted indicates use of a model before a successful Fit.
	ErrNotFitted = errors.New("mwm: model must be fitted first")
)

// Params holds the scale parameters of a multifractal wavelet model: one
// beta shape per dyadic scale, coarsest first, plus the per-sample process
// mean. Shape[j] controls the spread of the multiplier applied at level j
// during synthesis: small shapes spread mass toward +-1 (bursty,
// multifractal behavior), large shapes concentrate it near 0, and +Inf makes
// the split deterministic.
type Params struct {
	Shape []float64
	Mean  float64
}

// Depth returns the number of dyadic scales the parameters describe.
func (p *Params) Depth() int {
	return len(p.Shape)
}

// Validate checks that the mean is non-negative and finite and every shape
// is positive (+Inf allowed). It reports the first offending level.
func (p *Params) Validate() error {
	if p.Mean < 0 || math.IsNaN(p.Mean) || math.IsInf(p.Mean, 0) {
		return fmt.Errorf("%w: mean %v must be finite and >= 0", ErrInvalidParameters, p.Mean)
	}
	for j, s := range p.Shape {
		if math.IsNaN(s) || s <= 0 {
			return fmt.Errorf("%w: shape %v at level %d must be > 0", ErrInvalidParameters, s, j)
		}
	}
	return nil
}

// Copy creates a deep copy of the parameters.
func (p *Params) Copy() *Params {
	shape := make([]float64, len(p.Shape))
	copy(shape, p.Shape)
	return &Params{Shape: shape, Mean: p.Mean}
}

// Config holds estimation settings.
type Config struct {
	// MinCoarse is the minimum number of coarse scaling coefficients kept at
	// the top of the decomposition. Values above 1 trade estimated scales
	// for better-conditioned coarse statistics (default: 1).
	MinCoarse int
	// MinShape is the lower clamp applied to estimated shapes (default: 1e-3).
	MinShape float64
	// MaxShape is the upper clamp applied to estimated shapes. The default
	// +Inf leaves zero-variance scales as exactly deterministic splits.
	MaxShape float64
}

// DefaultConfig returns the default estimation configuration.
func DefaultConfig() *Config {
	return &Config{
		MinCoarse: 1,
		MinShape:  1e-3,
		MaxShape:  math.Inf(1),
	}
}

func (c *Config) validate() error {
	if c.MinCoarse < 1 {
		return fmt.Errorf("%w: MinCoarse %d must be >= 1", ErrInvalidParameters, c.MinCoarse)
	}
	if c.MinShape <= 0 || math.IsNaN(c.MinShape) {
		return fmt.Errorf("%w: MinShape %v must be > 0", ErrInvalidParameters, c.MinShape)
	}
	if c.MaxShape < c.MinShape || math.IsNaN(c.MaxShape) {
		return fmt.Errorf("%w: MaxShape %v must be >= MinShape", ErrInvalidParameters, c.MaxShape)
	}
	return nil
}

// Model represents a multifractal wavelet model. A Model is created with New,
// populated by Fit, and read-only afterwards.
type Model struct {
	Params

	N  int     // length of the fitted trace
	J  int     // number of estimated scales (== len(Shape))
	SD float64 // standard deviation of the coarse scaling coefficients

	// LevelEnergy is the empirical mean square of the detail coefficients
	// per scale, coarsest first.
	LevelEnergy []float64
	// FitResidual is the root-mean-square relative mismatch between observed
	// level energies and those implied by the (clamped) fitted shapes. Near
	// zero unless clamping occurred.
	FitResidual float64

	cfg    Config
	fitted bool
}

// New creates a new model with the given configuration. A nil config uses
// DefaultConfig.
func New(cfg *Config) *Model {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Model{cfg: *cfg}
}

// Fitted reports whether the model has been successfully fitted.
func (m *Model) Fitted() bool {
	return m.fitted
}

// Summary holds a snapshot of a fitted model.
type Summary struct {
	N           int
	J           int
	Mean        float64
	SD          float64
	Shape       []float64
	LevelEnergy []float64
	FitResidual float64
}

// Summary returns a summary of the fitted model, or nil if the model has not
// been fitted.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	shape := make([]float64, len(m.Shape))
	copy(shape, m.Shape)
	energy := make([]float64, len(m.LevelEnergy))
	copy(energy, m.LevelEnergy)

	return &Summary{
		N:           m.N,
		J:           m.J,
		Mean:        m.Mean,
		SD:          m.SD,
		Shape:       shape,
		LevelEnergy: energy,
		FitResidual: m.FitResidual,
	}
}
