package guidance

import "github.com/lintang-b-s/wayfinder/pkg/datastructure"

type Graph interface {
	GetNode(id datastructure.Index) (*datastructure.Node, bool)
	GetEntryPoint(roomName string) (*datastructure.Node, bool)
}

type ShortestPathTree interface {
	GetRootID() datastructure.Index
	GetDistance(id datastructure.Index) float64
	IsReachable(id datastructure.Index) bool
	PathTo(target datastructure.Index) ([]datastructure.Index, error)
}
