package preprocesser

import (
	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/engine/routing"
	"github.com/lintang-b-s/wayfinder/pkg/floorplan"
	"go.uber.org/zap"
)

// Preprocessor. builds the navigation graph from floor plan records, checks that every room is reachable from the root
// and writes the compiled graph for the engine.
type Preprocessor struct {
	root    floorplan.RootConfig
	records *floorplan.Records
	logger  *zap.Logger

	graph       *datastructure.Graph
	diagnostics []floorplan.Diagnostic
	unreachable []string
	components  [][]datastructure.Index
}

func NewPreprocessor(root floorplan.RootConfig, records *floorplan.Records, logger *zap.Logger) *Preprocessor {
	return &Preprocessor{
		root:    root,
		records: records,
		logger:  logger,
	}
}

// PreProcessing. build the graph and compute the shortest path tree once to report unreachable rooms. unreachable
// rooms and skipped edges are logged, not fatal.
func (p *Preprocessor) PreProcessing() error {
	p.logger.Info("Starting preprocessing of the floor plan...")

	graph, diagnostics, err := floorplan.NewBuilder(p.logger).BuildFromRecords(p.root, p.records)
	if err != nil {
		return err
	}
	p.graph = graph
	p.diagnostics = diagnostics

	spt, err := routing.ComputeSPT(graph, graph.GetRootID())
	if err != nil {
		return err
	}

	p.unreachable = make([]string, 0)
	for _, room := range graph.GetRoomNames() {
		entry, _ := graph.GetEntryPoint(room)
		if !spt.IsReachable(entry.GetID()) {
			p.logger.Warn("room is not reachable from the root", zap.String("room", room),
				zap.Int("node", int(entry.GetID())))
			p.unreachable = append(p.unreachable, room)
		}
	}

	p.components = graph.StronglyConnectedComponents()
	if len(p.components) > 1 {
		for _, component := range p.components {
			p.logger.Info("floor plan component", zap.Int("size", len(component)),
				zap.Int("first_node", int(component[0])))
		}
	}

	p.logger.Info("Preprocessing done",
		zap.Int("components", len(p.components)),
		zap.Int("skipped_edges", len(p.diagnostics)), zap.Int("unreachable_rooms", len(p.unreachable)))
	return nil
}

// Compile. PreProcessing, then write the graph to outFile.
func (p *Preprocessor) Compile(outFile string) error {
	if err := p.PreProcessing(); err != nil {
		return err
	}
	p.logger.Info("Writing graph", zap.String("file", outFile))
	return p.graph.WriteGraph(outFile)
}

func (p *Preprocessor) GetGraph() *datastructure.Graph {
	return p.graph
}

func (p *Preprocessor) GetDiagnostics() []floorplan.Diagnostic {
	return p.diagnostics
}

// GetComponents. connected parts of the floor plan graph.
func (p *Preprocessor) GetComponents() [][]datastructure.Index {
	return p.components
}

func (p *Preprocessor) GetUnreachableRooms() []string {
	return p.unreachable
}
