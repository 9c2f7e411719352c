package osmparser

import (
	"context"
	"strings"
	"testing"

	"github.com/lintang-b-s/wayfinder/pkg/floorplan"
	"github.com/lintang-b-s/wayfinder/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const indoorOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="10" lat="0" lon="0"/>
  <node id="11" lat="0.0001" lon="0"/>
  <node id="12" lat="0.0001" lon="0.0001">
    <tag k="door" v="hinged"/>
    <tag k="name" v="Room1"/>
    <tag k="direction" v="90"/>
  </node>
  <node id="13" lat="0.0002" lon="0.0001">
    <tag k="indoor" v="door"/>
    <tag k="name" v="Room1"/>
  </node>
  <node id="14" lat="0.0003" lon="0"/>
  <node id="15" lat="0.0001" lon="-0.0001">
    <tag k="entrance" v="yes"/>
    <tag k="ref" v="Lab"/>
    <tag k="direction" v="N"/>
  </node>
  <way id="100">
    <nd ref="10"/>
    <nd ref="11"/>
    <nd ref="12"/>
    <tag k="highway" v="corridor"/>
  </way>
  <way id="101">
    <nd ref="11"/>
    <nd ref="14"/>
    <tag k="indoor" v="room"/>
  </way>
  <way id="102">
    <nd ref="11"/>
    <nd ref="15"/>
    <nd ref="99"/>
    <tag k="indoor" v="corridor"/>
  </way>
</osm>`

func TestIndoorParserParse(t *testing.T) {
	p := NewIndoorParser(geo.NewCoordinate(0, 0), zap.NewNop())

	records, err := p.Parse(context.Background(), strings.NewReader(indoorOSM))
	require.NoError(t, err)

	// osm 10,11,12,13,15 -> 1..5, node 14 only lies on a room outline
	require.Len(t, records.Entries, 2)
	assert.Equal(t, 3, records.Entries[0].ID)
	assert.Equal(t, "Room1", records.Entries[0].RoomName)
	assert.Equal(t, 90.0, records.Entries[0].AngleIn)
	assert.Equal(t, 5, records.Entries[1].ID)
	assert.Equal(t, "Lab", records.Entries[1].RoomName)
	assert.Equal(t, 0.0, records.Entries[1].AngleIn)

	ids := make([]int, 0)
	for _, w := range records.Waypoints {
		ids = append(ids, w.ID)
	}
	// second Room1 door is kept as a waypoint
	assert.Equal(t, []int{1, 2, 4}, ids)

	assert.Equal(t, []floorplan.EdgeRecord{{From: 1, To: 2}, {From: 2, To: 3}, {From: 2, To: 5}}, records.Edges)

	assert.InDelta(t, 0.0, records.Waypoints[0].X, 1e-9)
	assert.InDelta(t, 0.0, records.Waypoints[0].Z, 1e-9)
	assert.InDelta(t, 11.12, records.Waypoints[1].Z, 0.01)
	assert.InDelta(t, 11.12, records.Entries[0].X, 0.01)
}

func TestIndoorParserBuildsGraph(t *testing.T) {
	p := NewIndoorParser(geo.NewCoordinate(0, 0), zap.NewNop())
	records, err := p.Parse(context.Background(), strings.NewReader(indoorOSM))
	require.NoError(t, err)

	root := floorplan.NewRootConfig(0, 0, 0, []int{1})
	g, diagnostics, err := floorplan.NewBuilder(zap.NewNop()).BuildFromRecords(root, records)
	require.NoError(t, err)
	assert.Empty(t, diagnostics)
	assert.Equal(t, []string{"Lab", "Room1"}, g.GetRoomNames())
}

func TestIndoorParserInvalidXML(t *testing.T) {
	p := NewIndoorParser(geo.NewCoordinate(0, 0), zap.NewNop())
	_, err := p.Parse(context.Background(), strings.NewReader(`<osm><node id="1" lat="0" lon="0"></way></osm>`))
	assert.Error(t, err)
}
