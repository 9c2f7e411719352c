package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"go.uber.org/zap"
)

type routeWsResponse struct {
	Data  *routeResponse `json:"data,omitempty"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// routeWebsocket. every text frame {"room_name": ...} is answered with the same payload /route would return.
func (api *routingAPI) routeWebsocket(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	go func() {
		defer conn.Close()
		for {
			msg, op, err := wsutil.ReadClientData(conn)
			if err != nil {
				if !errors.Is(err, io.EOF) && !isClosed(err) {
					api.log.Info("websocket read", zap.Error(err))
				}
				return
			}
			if op != ws.OpText {
				continue
			}

			resp := api.routeMessage(msg)
			payload, err := json.Marshal(resp)
			if err != nil {
				api.log.Error("websocket encode", zap.Error(err))
				return
			}
			if err := wsutil.WriteServerMessage(conn, ws.OpText, payload); err != nil {
				api.log.Info("websocket write", zap.Error(err))
				return
			}
		}
	}()
}

func (api *routingAPI) routeMessage(msg []byte) routeWsResponse {
	var request routeRequest
	if err := json.Unmarshal(msg, &request); err != nil {
		return wsError("BAD_REQUEST", err.Error())
	}
	if err := util.ValidateStruct(request); err != nil {
		return wsError("BAD_REQUEST", util.ValidationMessage(err))
	}

	route, path, err := api.routingService.Route(request.RoomName)
	if err != nil {
		code := util.ErrorCode(err)
		switch {
		case errors.Is(code, util.ErrNotFound):
			return wsError("NOT_FOUND", err.Error())
		case errors.Is(code, util.ErrConflict):
			return wsError("CONFLICT", err.Error())
		default:
			api.log.Error("route over websocket", zap.Error(err))
			return wsError("INTERNAL_SERVER_ERROR", util.MessageInternalServerError)
		}
	}
	resp := NewRouteResponse(route, path)
	return routeWsResponse{Data: &resp}
}

func wsError(code, message string) routeWsResponse {
	resp := routeWsResponse{}
	resp.Error = &struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{Code: code, Message: message}
	return resp
}

func isClosed(err error) bool {
	var closed wsutil.ClosedError
	return errors.As(err, &closed) || errors.Is(err, net.ErrClosed)
}
