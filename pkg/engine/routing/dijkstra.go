package routing

import (
	"errors"

	"github.com/lintang-b-s/wayfinder/pkg"
	da "github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/util"
)

var (
	ErrRootNotFound = errors.New("root node not found")
)

type Dijkstra struct {
	graph *da.Graph

	info map[da.Index]*VertexInfo
	pq   *da.MinHeap[da.Index]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		info:  make(map[da.Index]*VertexInfo),
		pq:    da.NewBinaryHeap[da.Index](),
	}
}

// ComputeSPT. single-source shortest paths from rootID to every node of graph.
func ComputeSPT(graph *da.Graph, rootID da.Index) (*ShortestPathTree, error) {
	return NewDijkstra(graph).ShortestPathTree(rootID)
}

/*
ShortestPathTree. dijkstra over the whole graph. every node starts in the frontier with an infinite label (the root with
0), each settled node relaxes its out edges into nodes still in the frontier and re-keys them with DecreaseKey.

equal-cost ties are broken by heap order, which depends on node id order. nodes that are never reached keep the infinite
label and no predecessor.
*/
func (us *Dijkstra) ShortestPathTree(rootID da.Index) (*ShortestPathTree, error) {
	if !us.graph.HasNode(rootID) {
		return nil, util.WrapErrorf(ErrRootNotFound, util.ErrNotFound, "root %d", rootID)
	}

	us.Preallocate()

	for _, id := range us.graph.GetNodeIDs() {
		dist := pkg.INF_WEIGHT
		if id == rootID {
			dist = 0
		}
		hNode := da.NewPriorityQueueNode(dist, id)
		us.info[id] = NewVertexInfo(dist, da.INVALID_NODE_ID, hNode)
		us.pq.Insert(hNode)
	}

	for !us.pq.IsEmpty() {
		if !us.graphSearchUni() {
			break
		}
		us.numSettledNodes++
	}

	return newShortestPathTree(rootID, us.info), nil
}

// graphSearchUni. settle the frontier node with the smallest label. returns false once the smallest label is infinite,
// everything left in the frontier is unreachable.
func (us *Dijkstra) graphSearchUni() bool {
	hNode, _ := us.pq.ExtractMin()
	uId := hNode.GetItem()
	uInfo := us.info[uId]

	if !uInfo.reached() {
		return false
	}

	us.graph.ForOutEdgesOf(uId, func(e *da.Edge) {
		vId := e.GetHead()
		vInfo := us.info[vId]

		if !us.pq.Contains(vInfo.GetHeapNode()) {
			// already settled
			return
		}

		alt := uInfo.GetDist() + e.GetDistance()
		if da.Lt(alt, vInfo.GetDist()) {
			vInfo.update(alt, uId)
			err := us.pq.DecreaseKey(vInfo.GetHeapNode(), alt)
			util.AssertPanic(err == nil, "decrease key of a frontier node must not fail")
		}
	})

	return true
}

func (us *Dijkstra) GetNumSettledNodes() int {
	return us.numSettledNodes
}

func (us *Dijkstra) Preallocate() {
	n := us.graph.NumberOfNodes()
	us.info = make(map[da.Index]*VertexInfo, n)
	us.pq.Preallocate(n)
	us.numSettledNodes = 0
}
