package guidance

import (
	"errors"

	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/geo"
	"github.com/lintang-b-s/wayfinder/pkg/util"
)

var (
	ErrUnknownDestination     = errors.New("unknown destination")
	ErrUnreachableDestination = errors.New("unreachable destination")
)

/*
ChooseRoute. route from the root of spt to the entry point of roomName.

every node but the last is annotated with the bearing toward the next node of the path (geo.BearingTo), the entry point
itself with its fixed entry angle. graph and spt are only read, concurrent calls are safe.

fails with ErrUnknownDestination if no entry point carries roomName and with ErrUnreachableDestination if the entry point
is not connected to the root.
*/
func ChooseRoute(graph Graph, spt ShortestPathTree, roomName string) (*Route, error) {
	target, ok := graph.GetEntryPoint(roomName)
	if !ok {
		return nil, util.WrapErrorf(ErrUnknownDestination, util.ErrNotFound, "room %q", roomName)
	}

	if !spt.IsReachable(target.GetID()) {
		return nil, util.WrapErrorf(ErrUnreachableDestination, util.ErrConflict,
			"room %q (node %d) is not connected to root %d", roomName, target.GetID(), spt.GetRootID())
	}

	pathIDs, err := spt.PathTo(target.GetID())
	if err != nil {
		return nil, err
	}

	path := make([]*datastructure.Node, len(pathIDs))
	for i, id := range pathIDs {
		n, ok := graph.GetNode(id)
		if !ok {
			return nil, util.WrapErrorf(datastructure.ErrUnknownNode, util.ErrInternalServerError,
				"node %d of the shortest path tree is missing from the graph", id)
		}
		path[i] = n
	}

	steps := make([]RouteStep, len(path))
	for i := 0; i < len(path)-1; i++ {
		prev, cur := path[i], path[i+1]
		steps[i] = NewRouteStep(prev, geo.BearingTo(prev.GetPosition(), cur.GetPosition()), spt.GetDistance(prev.GetID()))
	}
	last := len(path) - 1
	steps[last] = NewRouteStep(target, geo.NormalizeBearing(target.GetEntryAngle()), spt.GetDistance(target.GetID()))

	return NewRoute(roomName, steps), nil
}
