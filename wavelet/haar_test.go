package wavelet_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gomwm/wavelet"
)

func TestScaleTreeShape(t *testing.T) {
	tree := wavelet.NewScaleTree(3, 1)

	require.Equal(t, 3, tree.Depth())
	require.Equal(t, 1, tree.Base())
	require.Equal(t, 1, tree.Width(0))
	require.Equal(t, 2, tree.Width(1))
	require.Equal(t, 4, tree.Width(2))
	require.Equal(t, 7, tree.Size())
	require.Len(t, tree.Leaves(), 4)

	forest := wavelet.NewScaleTree(2, 4)
	require.Equal(t, 4, forest.Width(0))
	require.Equal(t, 8, forest.Width(1))

	empty := wavelet.NewScaleTree(0, 1)
	require.Equal(t, 0, empty.Depth())
	require.Nil(t, empty.Leaves())
}

func TestForwardKnownValues(t *testing.T) {
	root, tree, err := wavelet.Forward([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	// Root = mean * sqrt(N) = 2.5 * 2
	require.InDelta(t, 5.0, root, 1e-12)

	require.Equal(t, 2, tree.Depth())
	require.InDelta(t, -2.0, tree.Level(0)[0], 1e-12)
	require.InDelta(t, -1/math.Sqrt2, tree.Level(1)[0], 1e-12)
	require.InDelta(t, -1/math.Sqrt2, tree.Level(1)[1], 1e-12)
}

func TestForwardConstant(t *testing.T) {
	root, tree, err := wavelet.Forward([]float64{4, 4, 4, 4})
	require.NoError(t, err)

	require.InDelta(t, 8.0, root, 1e-12)
	for j := 0; j < tree.Depth(); j++ {
		for _, d := range tree.Level(j) {
			require.InDelta(t, 0.0, d, 1e-12)
		}
	}
}

func TestForwardSingleValue(t *testing.T) {
	root, tree, err := wavelet.Forward([]float64{7.5})
	require.NoError(t, err)
	require.Equal(t, 7.5, root)
	require.Equal(t, 0, tree.Depth())

	back, err := wavelet.Inverse(root, tree)
	require.NoError(t, err)
	require.Equal(t, []float64{7.5}, back)
}

func TestForwardInvalidLength(t *testing.T) {
	for _, n := range []int{0, 3, 5, 12, 100} {
		_, _, err := wavelet.Forward(make([]float64, n))
		require.ErrorIs(t, err, wavelet.ErrInvalidLength, "length %d must be rejected", n)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for n := 1; n <= 1024; n *= 2 {
		values := make([]float64, n)
		for i := range values {
			values[i] = 100 * rng.Float64()
		}

		root, tree, err := wavelet.Forward(values)
		require.NoError(t, err)

		back, err := wavelet.Inverse(root, tree)
		require.NoError(t, err)
		require.Len(t, back, n)

		for i := range values {
			tol := 1e-9 * math.Max(1, math.Abs(values[i]))
			require.InDelta(t, values[i], back[i], tol, "n=%d index %d", n, i)
		}
	}
}

func TestDecomposePartialLevels(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}

	smooth, tree, err := wavelet.Decompose(values, 2)
	require.NoError(t, err)
	require.Len(t, smooth, 2)
	require.Equal(t, 2, tree.Depth())
	require.Equal(t, 2, tree.Base())

	// The transform is orthonormal, so total energy is conserved.
	energy := 0.0
	for _, v := range values {
		energy += v * v
	}
	got := 0.0
	for _, s := range smooth {
		got += s * s
	}
	for j := 0; j < tree.Depth(); j++ {
		for _, d := range tree.Level(j) {
			got += d * d
		}
	}
	require.InDelta(t, energy, got, 1e-9)

	back, err := wavelet.Reconstruct(smooth, tree)
	require.NoError(t, err)
	for i := range values {
		require.InDelta(t, values[i], back[i], 1e-9)
	}
}

func TestDecomposeZeroLevels(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	smooth, tree, err := wavelet.Decompose(values, 0)
	require.NoError(t, err)
	require.Equal(t, values, smooth)
	require.Equal(t, 0, tree.Depth())
}

func TestDecomposeInvalidLevels(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	_, _, err := wavelet.Decompose(values, 4)
	require.ErrorIs(t, err, wavelet.ErrInvalidLength)

	_, _, err = wavelet.Decompose(values, -1)
	require.ErrorIs(t, err, wavelet.ErrInvalidLength)
}

func TestReconstructMismatchedBase(t *testing.T) {
	tree := wavelet.NewScaleTree(2, 2)

	_, err := wavelet.Reconstruct([]float64{1, 2, 3, 4}, tree)
	require.ErrorIs(t, err, wavelet.ErrInvalidLength)

	_, err = wavelet.Reconstruct(nil, tree)
	require.ErrorIs(t, err, wavelet.ErrInvalidLength)
}
