package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/wayfinder/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/destinations", api.destinations)
	group.GET("/route", api.route)
	group.GET("/nearest", api.nearest)
	group.GET("/ws/route", api.routeWebsocket)
}

func (api *routingAPI) destinations(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.routingService.Destinations()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *routingAPI) route(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := routeRequest{
		RoomName: r.URL.Query().Get("room_name"),
	}

	if err := util.ValidateStruct(request); err != nil {
		api.BadRequestResponse(w, r, errors.New(util.ValidationMessage(err)))
		return
	}

	route, path, err := api.routingService.Route(request.RoomName)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(route, path)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func (api *routingAPI) nearest(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestRequest
		err     error
	)

	query := r.URL.Query()

	request.X, err = strconv.ParseFloat(query.Get("x"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("x is required and must be a valid float"))
		return
	}
	request.Z, err = strconv.ParseFloat(query.Get("z"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("z is required and must be a valid float"))
		return
	}

	n, dist, err := api.routingService.NearestNode(request.X, request.Z)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNodeResponse(n, dist)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
