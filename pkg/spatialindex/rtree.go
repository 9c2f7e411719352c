package spatialindex

import (
	"sort"

	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[datastructure.Index]
}

// NodePoint. a navigation node found by a spatial query.
type NodePoint struct {
	id       datastructure.Index
	position geo.Point
	dist     float64
}

func (np NodePoint) GetID() datastructure.Index {
	return np.id
}

func (np NodePoint) GetPosition() geo.Point {
	return np.position
}

// GetDist. distance from the query point.
func (np NodePoint) GetDist() float64 {
	return np.dist
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[datastructure.Index]
	return &Rtree{
		tr: &tr,
	}
}

// Build. index every node of graph as a point.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	graph.ForNodes(func(n *datastructure.Node) {
		p := [2]float64{n.GetX(), n.GetZ()}
		rt.tr.Insert(p, p, n.GetID())
	})
	log.Info("R-tree spatial index built.", zap.Int("nodes", rt.tr.Len()))
}

// SearchWithinRadius. all nodes within radius (plan units) of (x,z), nearest first.
func (rt *Rtree) SearchWithinRadius(x, z, radius float64) []NodePoint {
	q := geo.NewPoint(x, z)
	results := make([]NodePoint, 0, 10)
	rt.tr.Search([2]float64{x - radius, z - radius}, [2]float64{x + radius, z + radius},
		func(min, max [2]float64, id datastructure.Index) bool {
			p := geo.NewPoint(min[0], min[1])
			if d := geo.EuclideanDistance(q, p); d <= radius {
				results = append(results, NodePoint{id: id, position: p, dist: d})
			}
			return true
		})

	sortByDist(results)
	return results
}

// Nearest. the closest node within radius of (x,z).
func (rt *Rtree) Nearest(x, z, radius float64) (NodePoint, bool) {
	results := rt.SearchWithinRadius(x, z, radius)
	if len(results) == 0 {
		return NodePoint{}, false
	}
	return results[0], true
}

func sortByDist(points []NodePoint) {
	sort.Slice(points, func(i, j int) bool {
		if !datastructure.Eq(points[i].dist, points[j].dist) {
			return datastructure.Lt(points[i].dist, points[j].dist)
		}
		return points[i].id < points[j].id
	})
}
