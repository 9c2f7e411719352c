package guidance

import (
	"testing"

	da "github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/engine/routing"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFloorPlan(t *testing.T) (*da.Graph, *routing.ShortestPathTree) {
	t.Helper()
	g := da.NewGraph(0)
	require.NoError(t, g.AddNode(da.NewWaypoint(0, 0, 0)))
	require.NoError(t, g.AddNode(da.NewWaypoint(1, 0, 4)))
	require.NoError(t, g.AddNode(da.NewEntryPoint(2, 3, 4, "Room1", 90)))
	require.NoError(t, g.AddNode(da.NewEntryPoint(3, -2, 4, "Room2", 360)))
	require.NoError(t, g.AddNode(da.NewEntryPoint(4, 0, 0.5, "Lobby", 180)))
	require.NoError(t, g.AddNode(da.NewEntryPoint(9, 20, 20, "Storage", 45)))
	require.NoError(t, g.AddUndirectedEdge(0, 1))
	require.NoError(t, g.AddUndirectedEdge(1, 2))
	require.NoError(t, g.AddUndirectedEdge(1, 3))
	require.NoError(t, g.AddUndirectedEdge(0, 4))

	spt, err := routing.ComputeSPT(g, 0)
	require.NoError(t, err)
	return g, spt
}

func TestChooseRoute(t *testing.T) {
	g, spt := buildFloorPlan(t)

	testCases := []struct {
		name         string
		room         string
		wantIDs      []da.Index
		wantBearings []float64
		wantDistance float64
	}{
		{
			name:         "turn right into room",
			room:         "Room1",
			wantIDs:      []da.Index{0, 1, 2},
			wantBearings: []float64{0, 90, 90},
			wantDistance: 7,
		},
		{
			name:         "turn left, entry angle 360 normalized",
			room:         "Room2",
			wantIDs:      []da.Index{0, 1, 3},
			wantBearings: []float64{0, 270, 0},
			wantDistance: 6,
		},
		{
			name:         "entry point next to the root",
			room:         "Lobby",
			wantIDs:      []da.Index{0, 4},
			wantBearings: []float64{0, 180},
			wantDistance: 0.5,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			route, err := ChooseRoute(g, spt, tt.room)
			require.NoError(t, err)

			assert.Equal(t, tt.room, route.GetRoomName())
			assert.Equal(t, tt.wantIDs, route.GetNodeIDs())
			require.Equal(t, len(tt.wantBearings), route.Len())
			for i, s := range route.GetSteps() {
				assert.InDelta(t, tt.wantBearings[i], s.GetBearing(), 1e-9, "step %d", i)
			}
			assert.InDelta(t, tt.wantDistance, route.GetDistance(), 1e-9)

			last := route.GetSteps()[route.Len()-1].GetNode()
			assert.True(t, last.IsEntryPoint())
			assert.Equal(t, tt.room, last.GetRoomName())
			assert.Equal(t, spt.GetRootID(), route.GetSteps()[0].GetNodeID())
		})
	}
}

func TestChooseRouteErrors(t *testing.T) {
	g, spt := buildFloorPlan(t)

	testCases := []struct {
		name     string
		room     string
		wantErr  error
		wantCode error
	}{
		{name: "unknown room", room: "Nowhere", wantErr: ErrUnknownDestination, wantCode: util.ErrNotFound},
		{name: "waypoint is not a destination", room: "", wantErr: ErrUnknownDestination, wantCode: util.ErrNotFound},
		{name: "disconnected room", room: "Storage", wantErr: ErrUnreachableDestination, wantCode: util.ErrConflict},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			route, err := ChooseRoute(g, spt, tt.room)
			assert.Nil(t, route)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, util.ErrorCode(err))
		})
	}
}

func TestChooseRouteDoesNotMutate(t *testing.T) {
	g, spt := buildFloorPlan(t)

	first, err := ChooseRoute(g, spt, "Room1")
	require.NoError(t, err)
	second, err := ChooseRoute(g, spt, "Room1")
	require.NoError(t, err)

	assert.Equal(t, first.GetNodeIDs(), second.GetNodeIDs())
	assert.Equal(t, 4, g.NumberOfEdges()/2)
	assert.InDelta(t, 7.0, spt.GetDistance(2), 1e-9)
}
