package geo

import "github.com/twpayne/go-polyline"

// PolylineFromPoints. encoded polyline of the (x,z) sequence, five decimal places.
func PolylineFromPoints(points []Point) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.X, p.Z}
	}
	return string(polyline.EncodeCoords(coords))
}

// PointsFromPolyline. inverse of PolylineFromPoints.
func PointsFromPolyline(encoded string) ([]Point, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = NewPoint(c[0], c[1])
	}
	return points, nil
}
