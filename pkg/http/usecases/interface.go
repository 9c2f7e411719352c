package usecases

import (
	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/guidance"
)

type RoutingEngine interface {
	Destinations() []string
	ChooseRoute(roomName string) (*guidance.Route, error)
	NearestNode(x, z, radius float64) (*datastructure.Node, float64, bool)
}
