package geo

import (
	"github.com/golang/geo/r2"
)

// Point is a position on the floor plane. elevation is not modeled.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

func NewPoint(x, z float64) Point {
	return Point{X: x, Z: z}
}

func (p Point) GetX() float64 {
	return p.X
}

func (p Point) GetZ() float64 {
	return p.Z
}

// Vector. the point as an r2 vector, z maps to the Y axis.
func (p Point) Vector() r2.Point {
	return r2.Point{X: p.X, Y: p.Z}
}

// EuclideanDistance. planar distance between p and q.
func EuclideanDistance(p, q Point) float64 {
	return q.Vector().Sub(p.Vector()).Norm()
}
