package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/wayfinder/pkg/concurrent"
	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/engine/routing"
	"github.com/lintang-b-s/wayfinder/pkg/guidance"
	"github.com/lintang-b-s/wayfinder/pkg/spatialindex"
	"go.uber.org/zap"
)

// Engine. one routing session: the floor plan graph, its shortest path tree from the root and a cache of announced
// routes. the graph never changes, so the tree is computed once in NewEngine.
type Engine struct {
	graph      *datastructure.Graph
	spt        *routing.ShortestPathTree
	rtree      *spatialindex.Rtree
	routeCache *lru.Cache[string, *guidance.Route]
	logger     *zap.Logger
}

func NewEngine(graph *datastructure.Graph, cacheSize int, logger *zap.Logger) (*Engine, error) {
	logger.Info("Computing shortest path tree...", zap.Int("root", int(graph.GetRootID())))
	spt, err := routing.ComputeSPT(graph, graph.GetRootID())
	if err != nil {
		return nil, err
	}
	logger.Info("Shortest path tree computed",
		zap.Int("nodes", spt.NumberOfNodes()), zap.Int("reached", spt.NumberOfReachedNodes()))

	for _, room := range graph.GetRoomNames() {
		entry, _ := graph.GetEntryPoint(room)
		if !spt.IsReachable(entry.GetID()) {
			logger.Warn("entry point is not connected to the root",
				zap.String("room", room), zap.Int("node", int(entry.GetID())))
		}
	}

	if cacheSize < 1 {
		cacheSize = 1
	}
	routeCache, err := lru.New[string, *guidance.Route](cacheSize)
	if err != nil {
		return nil, err
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, logger)

	return &Engine{
		graph:      graph,
		spt:        spt,
		rtree:      rtree,
		routeCache: routeCache,
		logger:     logger,
	}, nil
}

// NewEngineFromFile. engine over a graph written by the preprocessor.
func NewEngineFromFile(graphFilePath string, cacheSize int, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading graph from ", zap.String("graphFilePath", graphFilePath))
	graph, err := datastructure.ReadGraph(graphFilePath)
	if err != nil {
		return nil, err
	}
	return NewEngine(graph, cacheSize, logger)
}

func (e *Engine) GetGraph() *datastructure.Graph {
	return e.graph
}

func (e *Engine) GetSPT() *routing.ShortestPathTree {
	return e.spt
}

// Destinations. sorted room names a route can be requested for.
func (e *Engine) Destinations() []string {
	return e.graph.GetRoomNames()
}

// ChooseRoute. route to roomName. successful routes are cached, failures are not.
func (e *Engine) ChooseRoute(roomName string) (*guidance.Route, error) {
	if route, ok := e.routeCache.Get(roomName); ok {
		return route, nil
	}
	route, err := guidance.ChooseRoute(e.graph, e.spt, roomName)
	if err != nil {
		return nil, err
	}
	e.routeCache.Add(roomName, route)
	return route, nil
}

// NearestNode. closest navigation node within radius of (x,z).
func (e *Engine) NearestNode(x, z, radius float64) (*datastructure.Node, float64, bool) {
	np, ok := e.rtree.Nearest(x, z, radius)
	if !ok {
		return nil, 0, false
	}
	n, _ := e.graph.GetNode(np.GetID())
	return n, np.GetDist(), true
}

type AnnounceResult struct {
	RoomName string
	Route    *guidance.Route
	Err      error
}

// AnnounceAll. route to every destination, computed by numWorkers goroutines. failures are reported per room.
func (e *Engine) AnnounceAll(numWorkers int) map[string]AnnounceResult {
	rooms := e.Destinations()
	pool := concurrent.NewWorkerPool[string, AnnounceResult](numWorkers, len(rooms))
	pool.Start(func(room string) AnnounceResult {
		route, err := e.ChooseRoute(room)
		return AnnounceResult{RoomName: room, Route: route, Err: err}
	})

	for _, room := range rooms {
		pool.AddJob(room)
	}
	pool.Close()
	pool.Wait()

	results := make(map[string]AnnounceResult, len(rooms))
	for res := range pool.CollectResults() {
		if res.Err != nil {
			e.logger.Warn("no route to room", zap.String("room", res.RoomName), zap.Error(res.Err))
		}
		results[res.RoomName] = res
	}
	return results
}
