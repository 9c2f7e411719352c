package osmparser

import (
	"context"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/lintang-b-s/wayfinder/pkg/floorplan"
	"github.com/lintang-b-s/wayfinder/pkg/geo"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

var (
	routableIndoor  = map[string]bool{"corridor": true, "area": true, "pathway": true}
	routableHighway = map[string]bool{"corridor": true, "footway": true, "pedestrian": true}
)

// IndoorParser. converts an OSM XML indoor map into floor plan records. coordinates are projected onto the floor plane
// around origin, node ids are renumbered densely from 1 because 0 belongs to the root.
type IndoorParser struct {
	origin geo.Coordinate
	log    *zap.Logger

	nodes   map[osm.NodeID]*osm.Node
	ways    []*osm.Way
	idMap   map[osm.NodeID]int
	rooms   map[string]osm.NodeID
	records *floorplan.Records
}

func NewIndoorParser(origin geo.Coordinate, log *zap.Logger) *IndoorParser {
	return &IndoorParser{
		origin: origin,
		log:    log,
	}
}

func (p *IndoorParser) ParseFile(ctx context.Context, filePath string) (*floorplan.Records, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Parse(ctx, f)
}

func (p *IndoorParser) Parse(ctx context.Context, r io.Reader) (*floorplan.Records, error) {
	p.nodes = make(map[osm.NodeID]*osm.Node)
	p.ways = make([]*osm.Way, 0)
	p.idMap = make(map[osm.NodeID]int)
	p.rooms = make(map[string]osm.NodeID)
	p.records = &floorplan.Records{
		Entries:   make([]floorplan.EntryPointRecord, 0),
		Waypoints: make([]floorplan.WaypointRecord, 0),
		Edges:     make([]floorplan.EdgeRecord, 0),
	}

	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			p.nodes[o.ID] = o
		case *osm.Way:
			if isRoutableWay(o) {
				p.ways = append(p.ways, o)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "scanning osm xml")
	}

	p.assignIDs()
	p.buildPoints()
	p.buildEdges()

	p.log.Info("indoor osm map parsed",
		zap.Int("entry_points", len(p.records.Entries)),
		zap.Int("waypoints", len(p.records.Waypoints)),
		zap.Int("edges", len(p.records.Edges)))

	return p.records, nil
}

// assignIDs. every node on a routable way plus every door node, in ascending osm id order.
func (p *IndoorParser) assignIDs() {
	used := make(map[osm.NodeID]struct{})
	for _, w := range p.ways {
		for _, wn := range w.Nodes {
			if _, ok := p.nodes[wn.ID]; ok {
				used[wn.ID] = struct{}{}
			}
		}
	}
	for id, n := range p.nodes {
		if isDoor(n) {
			used[id] = struct{}{}
		}
	}

	osmIDs := make([]osm.NodeID, 0, len(used))
	for id := range used {
		osmIDs = append(osmIDs, id)
	}
	sort.Slice(osmIDs, func(i, j int) bool { return osmIDs[i] < osmIDs[j] })
	for i, id := range osmIDs {
		p.idMap[id] = i + 1
	}
}

func (p *IndoorParser) buildPoints() {
	osmIDs := make([]osm.NodeID, 0, len(p.idMap))
	for id := range p.idMap {
		osmIDs = append(osmIDs, id)
	}
	sort.Slice(osmIDs, func(i, j int) bool { return osmIDs[i] < osmIDs[j] })

	for _, osmID := range osmIDs {
		n := p.nodes[osmID]
		pos := geo.ProjectEquirectangular(p.origin, geo.NewCoordinate(n.Lat, n.Lon))
		id := p.idMap[osmID]

		if room := roomName(n); isDoor(n) && room != "" {
			if other, dup := p.rooms[room]; dup {
				p.log.Warn("room already has an entry point, keeping the door as a waypoint",
					zap.String("room", room), zap.Int64("osm_id", int64(osmID)), zap.Int64("entry_osm_id", int64(other)))
			} else {
				p.rooms[room] = osmID
				p.records.Entries = append(p.records.Entries, floorplan.EntryPointRecord{
					ID:       id,
					X:        pos.X,
					Z:        pos.Z,
					RoomName: room,
					AngleIn:  entryAngle(n, p.log),
				})
				continue
			}
		}
		p.records.Waypoints = append(p.records.Waypoints, floorplan.WaypointRecord{ID: id, X: pos.X, Z: pos.Z})
	}
}

func (p *IndoorParser) buildEdges() {
	for _, w := range p.ways {
		for i := 1; i < len(w.Nodes); i++ {
			from, okFrom := p.idMap[w.Nodes[i-1].ID]
			to, okTo := p.idMap[w.Nodes[i].ID]
			if !okFrom || !okTo {
				p.log.Warn("way references a node missing from the extract",
					zap.Int64("way_id", int64(w.ID)), zap.Int64("from", int64(w.Nodes[i-1].ID)),
					zap.Int64("to", int64(w.Nodes[i].ID)))
				continue
			}
			if from == to {
				continue
			}
			p.records.Edges = append(p.records.Edges, floorplan.EdgeRecord{From: from, To: to})
		}
	}
}

func isRoutableWay(w *osm.Way) bool {
	return routableIndoor[w.Tags.Find("indoor")] || routableHighway[w.Tags.Find("highway")]
}

func isDoor(n *osm.Node) bool {
	return n.Tags.Find("door") != "" || n.Tags.Find("entrance") != "" || n.Tags.Find("indoor") == "door"
}

func roomName(n *osm.Node) string {
	if name := n.Tags.Find("name"); name != "" {
		return name
	}
	return n.Tags.Find("ref")
}

// entryAngle. the direction tag in degrees, 0 when absent or not numeric.
func entryAngle(n *osm.Node, log *zap.Logger) float64 {
	dir := n.Tags.Find("direction")
	if dir == "" {
		return 0
	}
	angle, err := strconv.ParseFloat(dir, 64)
	if err != nil {
		log.Warn("ignoring non numeric direction tag", zap.Int64("osm_id", int64(n.ID)), zap.String("direction", dir))
		return 0
	}
	return geo.NormalizeBearing(angle)
}
