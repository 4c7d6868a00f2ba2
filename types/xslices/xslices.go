// Package xslices provides functionality missing from the standard slices package.
package xslices

import (
	"golang.org/x/exp/constraints"
)

// Copy creates a new (shallow) copy of T. A shortcut to a call to `make` and then `copy`.
func Copy[T any](slice []T) []T {
	if len(slice) == 0 {
		return nil
	}
	slice2 := make([]T, len(slice))
	copy(slice2, slice)
	return slice2
}

// Map executes the given function sequentially for every element on in, and returns a mapped slice.
func Map[In, Out any](in []In, fn func(e In) Out) (out []Out) {
	out = make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return
}

// Iota returns a slice of incremental int values, starting with start and of the given length.
// E.g.: Iota(3.0, 2) -> []float64{3.0, 4.0}
func Iota[T constraints.Integer | constraints.Float](start T, length int) (slice []T) {
	slice = make([]T, length)
	for ii := range slice {
		slice[ii] = start + T(ii)
	}
	return
}

// FillSlice creates a slice of the given size and fills it with the given value.
func FillSlice[T any](size int, value T) (slice []T) {
	slice = make([]T, size)
	for ii := range slice {
		slice[ii] = value
	}
	return
}
