package spatialindex

import (
	"testing"

	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchWithinRadius(t *testing.T) {
	g := datastructure.NewGraph(0)
	require.NoError(t, g.AddNode(datastructure.NewWaypoint(0, 0, 0)))
	require.NoError(t, g.AddNode(datastructure.NewWaypoint(1, 0, 4)))
	require.NoError(t, g.AddNode(datastructure.NewEntryPoint(2, 3, 4, "Room1", 90)))
	require.NoError(t, g.AddNode(datastructure.NewWaypoint(3, 1, 1)))
	require.NoError(t, g.AddNode(datastructure.NewWaypoint(4, -1, 1)))

	rt := NewRtree()
	rt.Build(g, zap.NewNop())

	testCases := []struct {
		name    string
		x, z    float64
		radius  float64
		wantIDs []datastructure.Index
	}{
		{name: "nearest first", x: 0, z: 3, radius: 3.5, wantIDs: []datastructure.Index{1, 3, 4, 0, 2}},
		{name: "node on the boundary is included", x: 3, z: 0, radius: 3, wantIDs: []datastructure.Index{3, 0}},
		{name: "equal distance ordered by id", x: 0, z: 1, radius: 1, wantIDs: []datastructure.Index{0, 3, 4}},
		{name: "nothing nearby", x: 50, z: 50, radius: 1, wantIDs: []datastructure.Index{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			results := rt.SearchWithinRadius(tt.x, tt.z, tt.radius)
			ids := make([]datastructure.Index, len(results))
			for i, r := range results {
				ids[i] = r.GetID()
				assert.LessOrEqual(t, r.GetDist(), tt.radius)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	np, ok := rt.Nearest(2.9, 4.2, 1)
	require.True(t, ok)
	assert.Equal(t, datastructure.Index(2), np.GetID())
	assert.Equal(t, 3.0, np.GetPosition().X)

	_, ok = rt.Nearest(100, 100, 1)
	assert.False(t, ok)
}
