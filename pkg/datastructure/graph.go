package datastructure

import (
	"errors"
	"sort"

	"github.com/lintang-b-s/wayfinder/pkg/util"
)

var (
	ErrUnknownNode       = errors.New("unknown node")
	ErrDuplicateNodeID   = errors.New("duplicate node id")
	ErrDuplicateRoomName = errors.New("duplicate room name")
	ErrEmptyRoomName     = errors.New("entry point without room name")
)

// Graph is the navigation graph of one floor plan. logically undirected, every connection is stored as two directed
// edges. nodes and edges are only added while building, the graph is read-only afterwards.
type Graph struct {
	nodes    map[Index]*Node
	entries  map[string]Index // roomName -> id of its entry point
	rootID   Index
	numEdges int
}

func NewGraph(rootID Index) *Graph {
	return &Graph{
		nodes:   make(map[Index]*Node),
		entries: make(map[string]Index),
		rootID:  rootID,
	}
}

// AddNode. fails with ErrDuplicateNodeID if the id is taken, ErrEmptyRoomName for an entry point without a room name,
// or ErrDuplicateRoomName if an entry point with the same room name already exists.
func (g *Graph) AddNode(n *Node) error {
	if _, ok := g.nodes[n.id]; ok {
		return util.WrapErrorf(ErrDuplicateNodeID, util.ErrConflict, "node id %d already exists", n.id)
	}
	if n.IsEntryPoint() {
		if n.roomName == "" {
			return util.WrapErrorf(ErrEmptyRoomName, util.ErrBadParamInput, "entry point %d", n.id)
		}
		if other, ok := g.entries[n.roomName]; ok {
			return util.WrapErrorf(ErrDuplicateRoomName, util.ErrConflict,
				"room %q already has entry point %d, got %d", n.roomName, other, n.id)
		}
		g.entries[n.roomName] = n.id
	}
	g.nodes[n.id] = n
	return nil
}

// AddEdge. add the directed edge from->to. fails with ErrUnknownNode if either id is absent.
func (g *Graph) AddEdge(from, to Index) error {
	u, v, err := g.endpoints(from, to)
	if err != nil {
		return err
	}
	u.addEdge(NewEdge(u, v))
	g.numEdges++
	return nil
}

// AddUndirectedEdge. add both from->to and to->from, or nothing at all if either id is absent.
func (g *Graph) AddUndirectedEdge(from, to Index) error {
	u, v, err := g.endpoints(from, to)
	if err != nil {
		return err
	}
	u.addEdge(NewEdge(u, v))
	v.addEdge(NewEdge(v, u))
	g.numEdges += 2
	return nil
}

func (g *Graph) endpoints(from, to Index) (*Node, *Node, error) {
	u, ok := g.nodes[from]
	if !ok {
		return nil, nil, util.WrapErrorf(ErrUnknownNode, util.ErrNotFound, "edge %d -> %d: node %d not found", from, to, from)
	}
	v, ok := g.nodes[to]
	if !ok {
		return nil, nil, util.WrapErrorf(ErrUnknownNode, util.ErrNotFound, "edge %d -> %d: node %d not found", from, to, to)
	}
	return u, v, nil
}

func (g *Graph) GetNode(id Index) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) HasNode(id Index) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) GetRootID() Index {
	return g.rootID
}

func (g *Graph) GetRoot() (*Node, bool) {
	return g.GetNode(g.rootID)
}

// GetEntryPoint. entry point node whose room is roomName.
func (g *Graph) GetEntryPoint(roomName string) (*Node, bool) {
	id, ok := g.entries[roomName]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// GetRoomNames. sorted room names of all entry points.
func (g *Graph) GetRoomNames() []string {
	rooms := make([]string, 0, len(g.entries))
	for room := range g.entries {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

// GetNodeIDs. sorted ids of all nodes.
func (g *Graph) GetNodeIDs() []Index {
	ids := make([]Index, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ForNodes. iterate nodes in ascending id order.
func (g *Graph) ForNodes(handle func(n *Node)) {
	for _, id := range g.GetNodeIDs() {
		handle(g.nodes[id])
	}
}

func (g *Graph) ForOutEdgesOf(u Index, handle func(e *Edge)) {
	n, ok := g.nodes[u]
	if !ok {
		return
	}
	for _, e := range n.edges {
		handle(e)
	}
}

func (g *Graph) NumberOfNodes() int {
	return len(g.nodes)
}

// NumberOfEdges. number of directed edges.
func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}
