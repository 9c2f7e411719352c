package routing

import (
	"errors"

	"github.com/lintang-b-s/wayfinder/pkg"
	da "github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/util"
)

var (
	ErrNodeNotInTree = errors.New("node is not part of the shortest path tree")
	ErrUnreachable   = errors.New("node is unreachable from the root")
)

type sptEntry struct {
	dist    float64
	parent  da.Index
	reached bool
}

// ShortestPathTree. distance and predecessor of every node of a graph for one fixed root. read-only once returned by
// ComputeSPT, safe to share between goroutines.
type ShortestPathTree struct {
	rootID  da.Index
	entries map[da.Index]sptEntry
}

func newShortestPathTree(rootID da.Index, info map[da.Index]*VertexInfo) *ShortestPathTree {
	entries := make(map[da.Index]sptEntry, len(info))
	for id, vi := range info {
		entries[id] = sptEntry{dist: vi.GetDist(), parent: vi.GetParent(), reached: vi.reached()}
	}
	return &ShortestPathTree{rootID: rootID, entries: entries}
}

func (t *ShortestPathTree) GetRootID() da.Index {
	return t.rootID
}

func (t *ShortestPathTree) Contains(id da.Index) bool {
	_, ok := t.entries[id]
	return ok
}

// GetDistance. shortest distance from the root, pkg.INF_WEIGHT if id is unreachable or unknown.
func (t *ShortestPathTree) GetDistance(id da.Index) float64 {
	e, ok := t.entries[id]
	if !ok || !e.reached {
		return pkg.INF_WEIGHT
	}
	return e.dist
}

// GetPredecessor. previous node on the shortest path from the root. false for the root and unreachable nodes.
func (t *ShortestPathTree) GetPredecessor(id da.Index) (da.Index, bool) {
	e, ok := t.entries[id]
	if !ok || e.parent == da.INVALID_NODE_ID {
		return da.INVALID_NODE_ID, false
	}
	return e.parent, true
}

func (t *ShortestPathTree) IsReachable(id da.Index) bool {
	e, ok := t.entries[id]
	return ok && e.reached
}

func (t *ShortestPathTree) NumberOfNodes() int {
	return len(t.entries)
}

func (t *ShortestPathTree) NumberOfReachedNodes() int {
	n := 0
	for _, e := range t.entries {
		if e.reached {
			n++
		}
	}
	return n
}

// PathTo. node ids from the root to target, following predecessor links back from target.
func (t *ShortestPathTree) PathTo(target da.Index) ([]da.Index, error) {
	if !t.Contains(target) {
		return nil, util.WrapErrorf(ErrNodeNotInTree, util.ErrNotFound, "node %d", target)
	}
	if !t.IsReachable(target) {
		return nil, util.WrapErrorf(ErrUnreachable, util.ErrConflict, "node %d from root %d", target, t.rootID)
	}

	path := make([]da.Index, 0)
	cur := target
	for {
		path = append(path, cur)
		parent, ok := t.GetPredecessor(cur)
		if !ok {
			break
		}
		cur = parent
		util.AssertPanic(len(path) <= len(t.entries), "cycle in shortest path tree")
	}
	util.AssertPanic(cur == t.rootID, "predecessor chain does not end at the root")

	return util.ReverseG(path), nil
}
