package guidance

import (
	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/geo"
)

// RouteStep. one node of a route and the bearing its indicator faces: toward the next hop, or into the room for the
// destination.
type RouteStep struct {
	node     *datastructure.Node
	bearing  float64
	distance float64
}

func NewRouteStep(node *datastructure.Node, bearing, distance float64) RouteStep {
	return RouteStep{node: node, bearing: bearing, distance: distance}
}

func (s RouteStep) GetNode() *datastructure.Node {
	return s.node
}

func (s RouteStep) GetNodeID() datastructure.Index {
	return s.node.GetID()
}

// GetBearing. degrees in [0,360).
func (s RouteStep) GetBearing() float64 {
	return s.bearing
}

// GetDistance. distance from the root along the route.
func (s RouteStep) GetDistance() float64 {
	return s.distance
}

// Route. ordered steps from the root to the entry point of a room.
type Route struct {
	roomName string
	steps    []RouteStep
}

func NewRoute(roomName string, steps []RouteStep) *Route {
	return &Route{roomName: roomName, steps: steps}
}

func (r *Route) GetRoomName() string {
	return r.roomName
}

// GetSteps. a copy, routes are cached and shared between callers.
func (r *Route) GetSteps() []RouteStep {
	steps := make([]RouteStep, len(r.steps))
	copy(steps, r.steps)
	return steps
}

func (r *Route) Len() int {
	return len(r.steps)
}

// GetDistance. total route length.
func (r *Route) GetDistance() float64 {
	if len(r.steps) == 0 {
		return 0
	}
	return r.steps[len(r.steps)-1].distance
}

func (r *Route) GetNodeIDs() []datastructure.Index {
	ids := make([]datastructure.Index, len(r.steps))
	for i, s := range r.steps {
		ids[i] = s.GetNodeID()
	}
	return ids
}

func (r *Route) GetPoints() []geo.Point {
	points := make([]geo.Point, len(r.steps))
	for i, s := range r.steps {
		points[i] = s.node.GetPosition()
	}
	return points
}
