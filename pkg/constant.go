package pkg

import "math"

// enum of node kind
type NodeKind uint8

const (
	WAYPOINT NodeKind = iota
	ENTRY_POINT
)

func (k NodeKind) String() string {
	switch k {
	case WAYPOINT:
		return "waypoint"
	case ENTRY_POINT:
		return "entry_point"
	default:
		return "unknown"
	}
}

func GetNodeKind(kind string) (NodeKind, bool) {
	switch kind {
	case "waypoint":
		return WAYPOINT, true
	case "entry_point":
		return ENTRY_POINT, true
	default:
		return WAYPOINT, false
	}
}

var (
	// INF_WEIGHT is the distance label of a node not (yet) reached from the root.
	INF_WEIGHT = math.Inf(1)
)

const (
	FULL_TURN_DEGREE = 360.0
	EPSILON          = 1e-9

	// default root descriptor: the detected marker image sits at (18.5, 22) of the floor plan
	DEFAULT_ROOT_ID = 0
	DEFAULT_ROOT_X  = 18.5
	DEFAULT_ROOT_Z  = 22.0
)

var DEFAULT_ROOT_NEIGHBORS = []int{2, 21, 22, 23, 24, 25, 3}

const (
	ENTRY_POINTS_FILE = "entry_points.json"
	WAYPOINTS_FILE    = "nav_points.json"
	EDGES_FILE        = "edges.json"
)
