// Package wavelet provides scale trees and the Haar dyadic transform.
package wavelet

// ScaleTree is a complete dyadic tree of scalar coefficients stored as one
// flat slice per level. Level j holds base << j values; the children of node
// (j, k) are (j+1, 2k) and (j+1, 2k+1). With base = 1 the tree is rooted.
// Index arithmetic replaces any pointer graph, so a tree is two allocations
// per level and nothing else.
type ScaleTree struct {
	levels [][]float64
	base   int
}

// NewScaleTree creates a zeroed tree with the given number of levels and the
// given width at the coarsest level. A depth of zero yields an empty tree.
func NewScaleTree(depth, base int) *ScaleTree {
	if depth < 0 || base < 1 {
		return &ScaleTree{base: base}
	}
	levels := make([][]float64, depth)
	for j := range levels {
		levels[j] = make([]float64, base<<j)
	}
	return &ScaleTree{levels: levels, base: base}
}

// Depth returns the number of levels in the tree.
func (t *ScaleTree) Depth() int {
	return len(t.levels)
}

// Base returns the width of the coarsest level.
func (t *ScaleTree) Base() int {
	return t.base
}

// Level returns the coefficients at level j (0 = coarsest). The returned
// slice aliases the tree's storage.
func (t *ScaleTree) Level(j int) []float64 {
	return t.levels[j]
}

// Width returns the number of nodes at level j.
func (t *ScaleTree) Width(j int) int {
	return len(t.levels[j])
}

// Size returns the total number of nodes in the tree.
func (t *ScaleTree) Size() int {
	size := 0
	for _, level := range t.levels {
		size += len(level)
	}
	return size
}

// Leaves returns the finest level, or nil for an empty tree.
func (t *ScaleTree) Leaves() []float64 {
	if len(t.levels) == 0 {
		return nil
	}
	return t.levels[len(t.levels)-1]
}
