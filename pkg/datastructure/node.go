package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/wayfinder/pkg"
	"github.com/lintang-b-s/wayfinder/pkg/geo"
)

type Index int

const (
	INVALID_NODE_ID Index = -1
)

// Node is a navigation point of the floor plan. an ENTRY_POINT additionally carries the room it opens into and the
// fixed bearing that faces a visitor into that room.
type Node struct {
	id         Index
	position   geo.Point
	kind       pkg.NodeKind
	roomName   string
	entryAngle float64
	edges      []*Edge
}

func NewWaypoint(id Index, x, z float64) *Node {
	return &Node{
		id:       id,
		position: geo.NewPoint(x, z),
		kind:     pkg.WAYPOINT,
		edges:    make([]*Edge, 0),
	}
}

func NewEntryPoint(id Index, x, z float64, roomName string, entryAngle float64) *Node {
	return &Node{
		id:         id,
		position:   geo.NewPoint(x, z),
		kind:       pkg.ENTRY_POINT,
		roomName:   roomName,
		entryAngle: entryAngle,
		edges:      make([]*Edge, 0),
	}
}

func (n *Node) GetID() Index {
	return n.id
}

func (n *Node) GetPosition() geo.Point {
	return n.position
}

func (n *Node) GetX() float64 {
	return n.position.X
}

func (n *Node) GetZ() float64 {
	return n.position.Z
}

func (n *Node) GetKind() pkg.NodeKind {
	return n.kind
}

func (n *Node) IsEntryPoint() bool {
	return n.kind == pkg.ENTRY_POINT
}

// GetRoomName. empty for waypoints.
func (n *Node) GetRoomName() string {
	return n.roomName
}

func (n *Node) GetEntryAngle() float64 {
	return n.entryAngle
}

func (n *Node) GetEdges() []*Edge {
	return n.edges
}

func (n *Node) OutDegree() int {
	return len(n.edges)
}

func (n *Node) addEdge(e *Edge) {
	n.edges = append(n.edges, e)
}

func (n *Node) String() string {
	if n.IsEntryPoint() {
		return fmt.Sprintf("entry point %d (%f,%f) room=%s angleIn=%f", n.id, n.position.X, n.position.Z,
			n.roomName, n.entryAngle)
	}
	return fmt.Sprintf("waypoint %d (%f,%f)", n.id, n.position.X, n.position.Z)
}

// Edge is a directed adjacency. to is not owned by the edge, it points into the node set of the same graph.
type Edge struct {
	to       *Node
	distance float64
}

// NewEdge. distance is the planar euclidean distance between from and to at creation time.
func NewEdge(from, to *Node) *Edge {
	return &Edge{
		to:       to,
		distance: geo.EuclideanDistance(from.GetPosition(), to.GetPosition()),
	}
}

func (e *Edge) GetTo() *Node {
	return e.to
}

func (e *Edge) GetHead() Index {
	return e.to.id
}

func (e *Edge) GetDistance() float64 {
	return e.distance
}

func (e *Edge) String() string {
	return fmt.Sprintf("[to: %d, distance: %f]", e.to.id, e.distance)
}
