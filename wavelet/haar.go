package wavelet

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidLength indicates an input whose length is zero or not a power of
// two, or a level count the input cannot support.
var ErrInvalidLength = errors.New("wavelet: length must be a positive power of two")

// Forward computes the full orthonormal Haar decomposition of values. It
// returns the single root smooth coefficient (the sequence mean times
// sqrt(N)) and a rooted ScaleTree of detail coefficients, coarsest level
// first. A length-one input yields an empty tree and the value itself.
func Forward(values []float64) (float64, *ScaleTree, error) {
	smooth, tree, err := Decompose(values, log2(len(values)))
	if err != nil {
		return 0, nil, err
	}
	return smooth[0], tree, nil
}

// Inverse reconstructs the sequence from a root smooth coefficient and a
// rooted detail tree. It is the exact dual of Forward up to floating-point
// rounding.
func Inverse(root float64, tree *ScaleTree) ([]float64, error) {
	return Reconstruct([]float64{root}, tree)
}

// Decompose runs the Haar cascade for the given number of levels, stopping
// short of the root when levels < log2(N). It returns the N >> levels coarse
// smooth coefficients and the detail tree whose coarsest level has the same
// width. At each step a pair (a, b) produces smooth (a+b)/sqrt2 and detail
// (a-b)/sqrt2.
func Decompose(values []float64, levels int) ([]float64, *ScaleTree, error) {
	n := len(values)
	if n == 0 || n&(n-1) != 0 {
		return nil, nil, fmt.Errorf("%w: got length %d", ErrInvalidLength, n)
	}
	if levels < 0 || 1<<levels > n {
		return nil, nil, fmt.Errorf("%w: %d levels exceed log2(%d)", ErrInvalidLength, levels, n)
	}

	tree := NewScaleTree(levels, n>>levels)
	smooth := make([]float64, n)
	copy(smooth, values)

	length := n
	for j := levels - 1; j >= 0; j-- {
		half := length / 2
		detail := tree.Level(j)
		for k := 0; k < half; k++ {
			a, b := smooth[2*k], smooth[2*k+1]
			detail[k] = (a - b) / math.Sqrt2
			smooth[k] = (a + b) / math.Sqrt2
		}
		length = half
	}

	return smooth[:length:length], tree, nil
}

// Reconstruct inverts Decompose: starting from the coarse smooth
// coefficients, each level recovers the two finer smooth values from the
// parent and its stored detail via a = (s+d)/sqrt2, b = (s-d)/sqrt2.
func Reconstruct(smooth []float64, tree *ScaleTree) ([]float64, error) {
	base := len(smooth)
	if base == 0 || base&(base-1) != 0 {
		return nil, fmt.Errorf("%w: got %d smooth coefficients", ErrInvalidLength, base)
	}
	if tree == nil {
		tree = NewScaleTree(0, base)
	}
	if tree.Depth() > 0 && tree.Base() != base {
		return nil, fmt.Errorf("%w: tree base %d does not match %d smooth coefficients",
			ErrInvalidLength, tree.Base(), base)
	}

	n := base << tree.Depth()
	values := make([]float64, n)
	copy(values, smooth)

	length := base
	for j := 0; j < tree.Depth(); j++ {
		detail := tree.Level(j)
		for k := length - 1; k >= 0; k-- {
			s, d := values[k], detail[k]
			values[2*k] = (s + d) / math.Sqrt2
			values[2*k+1] = (s - d) / math.Sqrt2
		}
		length *= 2
	}

	return values, nil
}

// log2 returns ceil(log2(n)) for n >= 1; callers validate that n is a power
// of two first.
func log2(n int) int {
	j := 0
	for 1<<j < n {
		j++
	}
	return j
}
