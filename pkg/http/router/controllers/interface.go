package controllers

import (
	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/guidance"
)

type RoutingService interface {
	Destinations() []string
	Route(roomName string) (*guidance.Route, string, error)
	NearestNode(x, z float64) (*datastructure.Node, float64, error)
}
