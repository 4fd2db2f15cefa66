// Package wavelet provides the fixed Haar dyadic transform and the flat
// scale-tree structure the multifractal wavelet model is built on.
//
// This is deliberately not a general wavelet library: the model needs exactly
// one orthonormal wavelet (Haar) over power-of-two-length inputs, and that is
// all this package implements.
//
// # Scale Trees
//
// A ScaleTree stores one flat slice of coefficients per dyadic level, with
// the children of node (j, k) at (j+1, 2k) and (j+1, 2k+1):
//
//	tree := wavelet.NewScaleTree(3, 1) // levels of width 1, 2, 4
//	tree.Level(0)[0] = 1.0
//
// # Transform
//
// Forward maps a sequence to a root smooth coefficient plus a detail tree;
// Inverse is its exact dual:
//
//	root, tree, err := wavelet.Forward(values)
//	back, err := wavelet.Inverse(root, tree)  // back == values up to rounding
//
// Decompose and Reconstruct run the same cascade a fixed number of levels,
// leaving several coarse smooth coefficients at the top; model estimation
// uses this form when it retains more than one coarse coefficient.
package wavelet
