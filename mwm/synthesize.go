package mwm

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sartorproj/gomwm/wavelet"
)

// Synthesize generates a trace of length n whose multiscale statistics follow
// the given parameters. All randomness comes from src, so the same
// parameters, length, and seeded source produce bit-identical output.
//
// The build is top-down in the value domain: the root of a ScaleTree is
// seeded with Mean * n (the expected total), and each node V splits into
// children V*(1+m)/2 and V*(1-m)/2 with m drawn at that level's shape. Every
// split conserves the parent's value, so the output sums to Mean * n and the
// sample mean equals Mean for every seed, up to floating-point rounding; and
// because m is bounded to [-1, 1], a non-negative parent can only produce
// non-negative children.
// Leaves are returned directly; no inverse transform is involved.
//
// When log2(n) differs from the fitted depth, coarse levels reuse the
// coarsest fitted shape (longer targets) or only the finest levels are kept
// (shorter targets), preserving the fine-scale statistics either way.
//
// All parameters are validated before any sampling, so a failed call
// consumes nothing from src.
func Synthesize(params *Params, n int, src rand.Source) ([]float64, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got target length %d", ErrInvalidLength, n)
	}
	if params == nil {
		return nil, fmt.Errorf("%w: nil parameters", ErrInvalidParameters)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	depth := log2(n)
	shape := shapeAtDepth(params.Shape, depth)
	sampler := NewMultiplierSampler(src)

	tree := wavelet.NewScaleTree(depth+1, 1)
	tree.Level(0)[0] = params.Mean * float64(n)

	for j := 0; j < depth; j++ {
		parents := tree.Level(j)
		children := tree.Level(j + 1)
		for k, v := range parents {
			m := sampler.Sample(shape[j])
			children[2*k] = v * (1 + m) / 2
			children[2*k+1] = v * (1 - m) / 2
		}
	}

	out := make([]float64, n)
	copy(out, tree.Leaves())
	return out, nil
}

// Synthesize generates a trace of length n from the fitted model. See the
// package-level Synthesize for the construction.
func (m *Model) Synthesize(n int, src rand.Source) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return Synthesize(&m.Params, n, src)
}

// shapeAtDepth adapts a shape vector to the requested number of levels.
// Extra coarse levels repeat the coarsest known shape; missing fine levels
// cannot occur because shorter targets keep the finest entries. An empty
// vector means every level is deterministic.
func shapeAtDepth(shape []float64, depth int) []float64 {
	if len(shape) == depth {
		return shape
	}
	if len(shape) > depth {
		return shape[len(shape)-depth:]
	}

	out := make([]float64, depth)
	pad := math.Inf(1)
	if len(shape) > 0 {
		pad = shape[0]
	}
	for i := 0; i < depth-len(shape); i++ {
		out[i] = pad
	}
	copy(out[depth-len(shape):], shape)
	return out
}

// log2 returns log2(n) for a power-of-two n.
func log2(n int) int {
	j := 0
	for 1<<j < n {
		j++
	}
	return j
}
