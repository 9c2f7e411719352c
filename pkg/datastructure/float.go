package datastructure

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	EPS = 1e-6
)

// equal operator
func Eq[T constraints.Float](a, b T) bool {
	return math.Abs(float64(a-b)) <= EPS
}

// less than operator
func Lt[T constraints.Float](a, b T) bool {
	return a+EPS < b
}
