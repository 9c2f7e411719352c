package controllers

import (
	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/guidance"
)

type routeRequest struct {
	RoomName string `json:"room_name" validate:"required,max=256"`
}

type nearestRequest struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

type routeStepResponse struct {
	NodeID   int     `json:"node_id"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
	Kind     string  `json:"kind"`
	RoomName string  `json:"room_name,omitempty"`
	Bearing  float64 `json:"bearing"`
	Distance float64 `json:"distance"`
}

type routeResponse struct {
	RoomName string              `json:"room_name"`
	Distance float64             `json:"distance"`
	Path     string              `json:"path"`
	Steps    []routeStepResponse `json:"steps"`
}

func NewRouteResponse(route *guidance.Route, path string) routeResponse {
	steps := make([]routeStepResponse, route.Len())
	for i, s := range route.GetSteps() {
		n := s.GetNode()
		steps[i] = routeStepResponse{
			NodeID:   int(n.GetID()),
			X:        n.GetX(),
			Z:        n.GetZ(),
			Kind:     n.GetKind().String(),
			RoomName: n.GetRoomName(),
			Bearing:  s.GetBearing(),
			Distance: s.GetDistance(),
		}
	}
	return routeResponse{
		RoomName: route.GetRoomName(),
		Distance: route.GetDistance(),
		Path:     path,
		Steps:    steps,
	}
}

type nodeResponse struct {
	NodeID   int     `json:"node_id"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
	Kind     string  `json:"kind"`
	RoomName string  `json:"room_name,omitempty"`
	Distance float64 `json:"distance"`
}

func NewNodeResponse(n *datastructure.Node, dist float64) nodeResponse {
	return nodeResponse{
		NodeID:   int(n.GetID()),
		X:        n.GetX(),
		Z:        n.GetZ(),
		Kind:     n.GetKind().String(),
		RoomName: n.GetRoomName(),
		Distance: dist,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
