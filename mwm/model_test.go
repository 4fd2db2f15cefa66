package mwm_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gomwm/mwm"
	"github.com/sartorproj/gomwm/timeseries"
)

func TestDefaultConfig(t *testing.T) {
	cfg := mwm.DefaultConfig()

	require.Equal(t, 1, cfg.MinCoarse)
	require.Greater(t, cfg.MinShape, 0.0)
	require.True(t, math.IsInf(cfg.MaxShape, 1))
}

func TestParamsValidate(t *testing.T) {
	valid := &mwm.Params{Mean: 1, Shape: []float64{2, 4, math.Inf(1)}}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		params mwm.Params
	}{
		{"negative mean", mwm.Params{Mean: -1, Shape: []float64{2}}},
		{"NaN mean", mwm.Params{Mean: math.NaN(), Shape: []float64{2}}},
		{"infinite mean", mwm.Params{Mean: math.Inf(1), Shape: []float64{2}}},
		{"zero shape", mwm.Params{Mean: 1, Shape: []float64{0}}},
		{"negative shape", mwm.Params{Mean: 1, Shape: []float64{2, -3}}},
		{"NaN shape", mwm.Params{Mean: 1, Shape: []float64{math.NaN()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.params.Validate(), mwm.ErrInvalidParameters)
		})
	}
}

func TestParamsCopy(t *testing.T) {
	p := &mwm.Params{Mean: 2, Shape: []float64{1, 2, 3}}
	c := p.Copy()

	c.Shape[0] = 99
	require.Equal(t, 1.0, p.Shape[0], "copy must not share shape storage")
	require.Equal(t, p.Mean, c.Mean)
}

func TestFitValidation(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   error
	}{
		{"empty", []float64{}, mwm.ErrInvalidLength},
		{"not power of two", []float64{1, 2, 3}, mwm.ErrInvalidLength},
		{"negative entry", []float64{1, -2, 3, 4}, mwm.ErrInvalidSequence},
		{"NaN entry", []float64{1, math.NaN(), 3, 4}, mwm.ErrInvalidSequence},
		{"infinite entry", []float64{1, math.Inf(1), 3, 4}, mwm.ErrInvalidSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := mwm.New(nil)
			err := model.Fit(timeseries.New(tt.values))
			require.ErrorIs(t, err, tt.want)
			require.False(t, model.Fitted(), "a failed fit must leave the model unfitted")
		})
	}
}

func TestFitConfigValidation(t *testing.T) {
	series := timeseries.New([]float64{1, 2, 3, 4})

	err := mwm.New(&mwm.Config{MinCoarse: 0, MinShape: 1e-3, MaxShape: math.Inf(1)}).Fit(series)
	require.ErrorIs(t, err, mwm.ErrInvalidParameters)

	err = mwm.New(&mwm.Config{MinCoarse: 1, MinShape: 0, MaxShape: math.Inf(1)}).Fit(series)
	require.ErrorIs(t, err, mwm.ErrInvalidParameters)

	err = mwm.New(&mwm.Config{MinCoarse: 1, MinShape: 2, MaxShape: 1}).Fit(series)
	require.ErrorIs(t, err, mwm.ErrInvalidParameters)

	// Keeping more coarse coefficients than half the trace leaves no scales.
	err = mwm.New(&mwm.Config{MinCoarse: 8, MinShape: 1e-3, MaxShape: math.Inf(1)}).Fit(series)
	require.ErrorIs(t, err, mwm.ErrInvalidParameters)
}

func TestFitConstantTrace(t *testing.T) {
	model := mwm.New(nil)
	err := model.Fit(timeseries.New([]float64{4, 4, 4, 4}))
	require.NoError(t, err)
	require.True(t, model.Fitted())

	// The mean of a constant trace is recovered exactly, independent of
	// anything stochastic.
	require.Equal(t, 4.0, model.Mean)
	require.Equal(t, 4, model.N)
	require.Equal(t, 2, model.J)

	// Every scale is degenerate: zero detail energy, deterministic split.
	for j, s := range model.Shape {
		require.True(t, math.IsInf(s, 1), "level %d shape should be +Inf, got %v", j, s)
		require.Equal(t, 0.0, model.LevelEnergy[j])
	}
	require.Equal(t, 0.0, model.FitResidual)

	// Re-synthesis must reproduce the constant trace for any seed.
	for _, seed := range []uint64{1, 42, 1234} {
		out, err := model.Synthesize(4, rand.NewPCG(seed, seed))
		require.NoError(t, err)
		require.Equal(t, []float64{4, 4, 4, 4}, out)
	}
}

func TestFitSingleValue(t *testing.T) {
	model := mwm.New(nil)
	err := model.Fit(timeseries.New([]float64{7}))
	require.NoError(t, err)

	require.Equal(t, 7.0, model.Mean)
	require.Equal(t, 0, model.J)
	require.Empty(t, model.Shape)

	out, err := model.Synthesize(1, rand.NewPCG(1, 1))
	require.NoError(t, err)
	require.Equal(t, []float64{7}, out)
}

func TestFitMinCoarse(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	values := make([]float64, 64)
	for i := range values {
		values[i] = rng.Float64() + 0.5
	}

	model := mwm.New(&mwm.Config{MinCoarse: 4, MinShape: 1e-3, MaxShape: math.Inf(1)})
	err := model.Fit(timeseries.New(values))
	require.NoError(t, err)

	// 64 leaves with 4 coarse coefficients kept leaves 4 estimated scales.
	require.Equal(t, 4, model.J)
	require.Len(t, model.Shape, 4)
	require.Greater(t, model.SD, 0.0, "several coarse coefficients give a nonzero spread")
}

func TestFitRecoversShapes(t *testing.T) {
	truth := &mwm.Params{Mean: 10, Shape: constantShape(12, 3)}
	trace, err := mwm.Synthesize(truth, 4096, rand.NewPCG(1, 2))
	require.NoError(t, err)

	model := mwm.New(nil)
	require.NoError(t, model.Fit(timeseries.New(trace)))

	// The synthetic sample mean is conserved by construction, so the fitted
	// mean matches the true one tightly.
	require.InEpsilon(t, truth.Mean, model.Mean, 1e-9)

	// Coarse scales have a handful of coefficients and are statistically
	// hopeless for a single realization; check the finest scales, where
	// thousands of coefficients pin the estimate down.
	for j := model.J - 3; j < model.J; j++ {
		require.InEpsilon(t, 3.0, model.Shape[j], 0.3,
			"shape at level %d: got %v", j, model.Shape[j])
	}
}

func TestEstimationSelfConsistency(t *testing.T) {
	truth := &mwm.Params{Mean: 25, Shape: constantShape(11, 5)}
	trace, err := mwm.Synthesize(truth, 2048, rand.NewPCG(3, 4))
	require.NoError(t, err)

	first := mwm.New(nil)
	require.NoError(t, first.Fit(timeseries.New(trace)))

	resynth, err := first.Synthesize(2048, rand.NewPCG(5, 6))
	require.NoError(t, err)

	second := mwm.New(nil)
	require.NoError(t, second.Fit(timeseries.New(resynth)))

	require.InEpsilon(t, first.Mean, second.Mean, 1e-9)
	for j := first.J - 3; j < first.J; j++ {
		require.InEpsilon(t, first.Shape[j], second.Shape[j], 0.35,
			"shape at level %d drifted: %v vs %v", j, first.Shape[j], second.Shape[j])
	}
}

func TestSummary(t *testing.T) {
	model := mwm.New(nil)
	require.Nil(t, model.Summary(), "unfitted model has no summary")

	require.NoError(t, model.Fit(timeseries.New([]float64{1, 2, 3, 4, 5, 6, 7, 8})))

	s := model.Summary()
	require.NotNil(t, s)
	require.Equal(t, 8, s.N)
	require.Equal(t, 3, s.J)
	require.Equal(t, model.Mean, s.Mean)
	require.Len(t, s.Shape, 3)
	require.Len(t, s.LevelEnergy, 3)

	// The summary is a snapshot, not a view.
	s.Shape[0] = -1
	require.NotEqual(t, -1.0, model.Shape[0])
}

func constantShape(depth int, value float64) []float64 {
	shape := make([]float64, depth)
	for i := range shape {
		shape[i] = value
	}
	return shape
}
