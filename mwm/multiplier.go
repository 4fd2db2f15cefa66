package mwm

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// deterministicShape is the shape beyond which a Beta(p, p) draw is closer to
// 0.5 than the sampler can resolve; such splits are treated as exact.
const deterministicShape = 1e15

// MultiplierSampler draws the bounded random multipliers that tie wavelet
// coefficients to scaling coefficients. Each sample is m = 2A - 1 with
// A ~ Beta(shape, shape), so m is symmetric on [-1, 1] with E[m] = 0 and
// Var(m) = 1/(2*shape + 1).
//
// All randomness comes from the source supplied at construction; the sampler
// holds no other state, so reproducibility is a matter of reseeding the
// caller's source.
type MultiplierSampler struct {
	src rand.Source
}

// NewMultiplierSampler creates a sampler drawing from the given source.
func NewMultiplierSampler(src rand.Source) *MultiplierSampler {
	return &MultiplierSampler{src: src}
}

// Sample draws one multiplier in [-1, 1] for the given shape. Shapes at or
// above deterministicShape (including +Inf) return exactly 0, which makes
// the corresponding split perfectly even. The shape must be positive; Sample
// is only called after parameter validation.
func (s *MultiplierSampler) Sample(shape float64) float64 {
	if shape >= deterministicShape {
		return 0
	}
	beta := distuv.Beta{Alpha: shape, Beta: shape, Src: s.src}
	return 2*beta.Rand() - 1
}
