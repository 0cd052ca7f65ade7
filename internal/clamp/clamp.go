// Package clamp provides saturating arithmetic and range clamping for
// coverage values and canvas coordinates.
//
// All bounds are inclusive: Clamp(v, lo, hi) returns a value in [lo, hi].
package clamp

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp limits v to the inclusive range [lo, hi].
// If lo > hi the result is lo.
func Clamp[T Number](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Byte clamps v to [0, 255] and converts it to a byte.
func Byte[T Number](v T) byte {
	if v <= 0 {
		return 0
	}
	if float64(v) >= 255 {
		return 255
	}
	return byte(v)
}

// AddSat adds two coverage values, saturating at 255.
func AddSat(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// SubSat subtracts b from a, saturating at 0.
func SubSat(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}

// Span clips the half-open interval [start, start+length) to [0, limit)
// and returns the clipped start and end. When nothing remains, end <= start.
func Span(start, length, limit int) (lo, hi int) {
	return Clamp(start, 0, limit), Clamp(start+length, 0, limit)
}
