package geo

import (
	"math"

	"github.com/lintang-b-s/wayfinder/pkg/util"
)

const (
	earthRadiusM = 6371000.0
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

// ProjectEquirectangular. project c onto the floor plane centered at origin, in meters. x grows east, z grows north.
// good enough for building-sized extents.
func ProjectEquirectangular(origin, c Coordinate) Point {
	latOne := util.DegreeToRadians(origin.Lat)
	longOne := util.DegreeToRadians(origin.Lon)
	latTwo := util.DegreeToRadians(c.Lat)
	longTwo := util.DegreeToRadians(c.Lon)

	x := (longTwo - longOne) * math.Cos((latOne+latTwo)/2)
	z := latTwo - latOne
	return NewPoint(x*earthRadiusM, z*earthRadiusM)
}
