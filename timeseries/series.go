// Package timeseries provides core trace data structures and operations.
package timeseries

import (
	"math"
)

// Series represents a uniformly sampled trace of real values.
type Series struct {
	Values []float64
	Name   string
}

// New creates a new series from values.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Sum returns the sum of all values in the series.
func (s *Series) Sum() float64 {
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// NonNegative reports whether every value in the series is >= 0.
func (s *Series) NonNegative() bool {
	for _, v := range s.Values {
		if v < 0 {
			return false
		}
	}
	return true
}

// Finite reports whether every value in the series is finite (no NaN or Inf).
func (s *Series) Finite() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsPowerOfTwoLen reports whether the series length is a positive power of two.
func (s *Series) IsPowerOfTwoLen() bool {
	n := len(s.Values)
	return n > 0 && n&(n-1) == 0
}

// Aggregate sums the series over non-overlapping blocks of the given size,
// producing the trace as seen at a coarser time scale. The trailing partial
// block, if any, is discarded.
func (s *Series) Aggregate(block int) *Series {
	if block <= 0 || len(s.Values) < block {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	result := make([]float64, len(s.Values)/block)
	for i := range result {
		sum := 0.0
		for j := 0; j < block; j++ {
			sum += s.Values[i*block+j]
		}
		result[i] = sum
	}

	return &Series{Values: result, Name: s.Name + "_agg"}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{Values: values, Name: s.Name}
}

// TruncateToPowerOfTwo returns the longest prefix of the series whose length
// is a power of two, or an empty series if the input is empty.
func (s *Series) TruncateToPowerOfTwo() *Series {
	n := len(s.Values)
	if n == 0 {
		return &Series{Values: []float64{}, Name: s.Name}
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return s.Slice(0, p)
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Series{Values: values, Name: s.Name}
}

// Scale returns a new series with every value multiplied by factor.
func (s *Series) Scale(factor float64) *Series {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = v * factor
	}
	return &Series{Values: result, Name: s.Name + "_scaled"}
}
