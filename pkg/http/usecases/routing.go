package usecases

import (
	"errors"

	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/geo"
	"github.com/lintang-b-s/wayfinder/pkg/guidance"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrNoNodeNearby = errors.New("no navigation node nearby")
)

type RoutingService struct {
	log        *zap.Logger
	engine     RoutingEngine
	snapRadius float64
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, snapRadius float64) *RoutingService {
	return &RoutingService{
		log:        log,
		engine:     engine,
		snapRadius: snapRadius,
	}
}

func (rs *RoutingService) Destinations() []string {
	return rs.engine.Destinations()
}

// Route. route to roomName and its path as an encoded polyline. destination errors are returned with their category
// code, guidance.ErrUnknownDestination as not found and guidance.ErrUnreachableDestination as conflict.
func (rs *RoutingService) Route(roomName string) (*guidance.Route, string, error) {
	route, err := rs.engine.ChooseRoute(roomName)
	if err != nil {
		if errors.Is(err, guidance.ErrUnreachableDestination) {
			rs.log.Error("destination is disconnected from the root", zap.String("room", roomName), zap.Error(err))
		}
		return nil, "", err
	}
	return route, geo.PolylineFromPoints(route.GetPoints()), nil
}

func (rs *RoutingService) NearestNode(x, z float64) (*datastructure.Node, float64, error) {
	n, dist, ok := rs.engine.NearestNode(x, z, rs.snapRadius)
	if !ok {
		return nil, 0, util.WrapErrorf(ErrNoNodeNearby, util.ErrNotFound, "no node within %.2f of (%.2f, %.2f)",
			rs.snapRadius, x, z)
	}
	return n, dist, nil
}
