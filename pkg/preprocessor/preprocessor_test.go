package preprocesser

import (
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/floorplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRecords() *floorplan.Records {
	return &floorplan.Records{
		Entries: []floorplan.EntryPointRecord{
			{ID: 2, X: 3, Z: 4, RoomName: "Room1", AngleIn: 90},
			{ID: 5, X: 40, Z: 40, RoomName: "Archive", AngleIn: 180},
		},
		Waypoints: []floorplan.WaypointRecord{{ID: 1, X: 0, Z: 4}, {ID: 6, X: 40, Z: 35}},
		Edges: []floorplan.EdgeRecord{
			{From: 1, To: 2},
			{From: 5, To: 6},
			{From: 2, To: 77},
		},
	}
}

func TestPreProcessing(t *testing.T) {
	p := NewPreprocessor(floorplan.NewRootConfig(0, 0, 0, []int{1}), testRecords(), zap.NewNop())
	require.NoError(t, p.PreProcessing())

	assert.Equal(t, 5, p.GetGraph().NumberOfNodes())
	require.Len(t, p.GetDiagnostics(), 1)
	assert.Equal(t, datastructure.Index(77), p.GetDiagnostics()[0].To)
	assert.Equal(t, []string{"Archive"}, p.GetUnreachableRooms())
	assert.Equal(t, [][]datastructure.Index{{0, 1, 2}, {5, 6}}, p.GetComponents())
}

func TestCompile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "floorplan.graph")
	p := NewPreprocessor(floorplan.NewRootConfig(0, 0, 0, []int{1}), testRecords(), zap.NewNop())
	require.NoError(t, p.Compile(out))

	g, err := datastructure.ReadGraph(out)
	require.NoError(t, err)
	assert.Equal(t, p.GetGraph().NumberOfNodes(), g.NumberOfNodes())
	assert.Equal(t, p.GetGraph().NumberOfEdges(), g.NumberOfEdges())
	assert.Equal(t, []string{"Archive", "Room1"}, g.GetRoomNames())
}

func TestPreProcessingDuplicateID(t *testing.T) {
	records := testRecords()
	records.Waypoints = append(records.Waypoints, floorplan.WaypointRecord{ID: 2})

	p := NewPreprocessor(floorplan.NewRootConfig(0, 0, 0, []int{1}), records, zap.NewNop())
	assert.ErrorIs(t, p.PreProcessing(), datastructure.ErrDuplicateNodeID)
	assert.Error(t, p.Compile(filepath.Join(t.TempDir(), "out.graph")))
}
