package floorplan

import (
	"fmt"

	da "github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"go.uber.org/zap"
)

// Diagnostic. an edge skipped during Build because one of its endpoints does not exist.
type Diagnostic struct {
	From da.Index
	To   da.Index
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("skipped edge %d <-> %d: %v", d.From, d.To, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

type Builder struct {
	log *zap.Logger
}

func NewBuilder(log *zap.Logger) *Builder {
	return &Builder{log: log}
}

/*
Build. assemble the navigation graph:

 1. one node per entry point and waypoint record. a reused id fails the whole build with da.ErrDuplicateNodeID.
 2. the root node from its fixed descriptor.
 3. a symmetric edge between the root and each of its configured neighbors.
 4. a symmetric edge for each edge record.

an edge in 3 or 4 that references a missing node is skipped and reported as a Diagnostic, the build goes on.
*/
func (b *Builder) Build(root RootConfig, entries []EntryPointRecord, waypoints []WaypointRecord,
	edges []EdgeRecord) (*da.Graph, []Diagnostic, error) {
	g := da.NewGraph(da.Index(root.ID))

	for _, p := range entries {
		n := da.NewEntryPoint(da.Index(p.ID), p.X, p.Z, p.RoomName, p.AngleIn)
		if err := g.AddNode(n); err != nil {
			return nil, nil, util.WrapErrorf(err, util.ErrBadParamInput, "entry point %d (%s)", p.ID, p.RoomName)
		}
	}

	for _, p := range waypoints {
		if err := g.AddNode(da.NewWaypoint(da.Index(p.ID), p.X, p.Z)); err != nil {
			return nil, nil, util.WrapErrorf(err, util.ErrBadParamInput, "waypoint %d", p.ID)
		}
	}

	if err := g.AddNode(da.NewWaypoint(da.Index(root.ID), root.X, root.Z)); err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrBadParamInput, "root %d", root.ID)
	}

	diagnostics := make([]Diagnostic, 0)
	connect := func(from, to da.Index) {
		if err := g.AddUndirectedEdge(from, to); err != nil {
			b.log.Warn("skipping edge with unknown endpoint",
				zap.Int("from", int(from)), zap.Int("to", int(to)), zap.Error(err))
			diagnostics = append(diagnostics, Diagnostic{From: from, To: to, Err: err})
		}
	}

	for _, neighbor := range root.NeighborIDs {
		connect(da.Index(root.ID), da.Index(neighbor))
	}

	for _, e := range edges {
		connect(da.Index(e.From), da.Index(e.To))
	}

	b.log.Info("floor plan graph built",
		zap.Int("nodes", g.NumberOfNodes()),
		zap.Int("edges", g.NumberOfEdges()),
		zap.Int("entry_points", len(entries)),
		zap.Int("skipped_edges", len(diagnostics)))

	return g, diagnostics, nil
}

// BuildFromRecords. Build over a loaded Records set.
func (b *Builder) BuildFromRecords(root RootConfig, records *Records) (*da.Graph, []Diagnostic, error) {
	return b.Build(root, records.Entries, records.Waypoints, records.Edges)
}
