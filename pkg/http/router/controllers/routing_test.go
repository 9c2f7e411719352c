package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/wayfinder/pkg/datastructure"
	"github.com/lintang-b-s/wayfinder/pkg/guidance"
	helper "github.com/lintang-b-s/wayfinder/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/wayfinder/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRoutingService struct {
	routes map[string]*guidance.Route
	nodes  []*datastructure.Node
}

func newFakeRoutingService() *fakeRoutingService {
	root := datastructure.NewWaypoint(0, 0, 0)
	a := datastructure.NewWaypoint(1, 0, 4)
	b := datastructure.NewEntryPoint(2, 3, 4, "Room1", 90)
	route := guidance.NewRoute("Room1", []guidance.RouteStep{
		guidance.NewRouteStep(root, 0, 0),
		guidance.NewRouteStep(a, 90, 4),
		guidance.NewRouteStep(b, 90, 7),
	})
	return &fakeRoutingService{
		routes: map[string]*guidance.Route{"Room1": route},
		nodes:  []*datastructure.Node{root, a, b},
	}
}

func (s *fakeRoutingService) Destinations() []string {
	return []string{"Room1", "Storage"}
}

func (s *fakeRoutingService) Route(roomName string) (*guidance.Route, string, error) {
	if roomName == "Storage" {
		return nil, "", util.WrapErrorf(guidance.ErrUnreachableDestination, util.ErrConflict, "room %q", roomName)
	}
	if roomName == "Broken" {
		return nil, "", util.WrapErrorf(datastructure.ErrUnknownNode, util.ErrInternalServerError, "missing node")
	}
	route, ok := s.routes[roomName]
	if !ok {
		return nil, "", util.WrapErrorf(guidance.ErrUnknownDestination, util.ErrNotFound, "room %q", roomName)
	}
	return route, "encoded", nil
}

func (s *fakeRoutingService) NearestNode(x, z float64) (*datastructure.Node, float64, error) {
	if x > 100 {
		return nil, 0, util.WrapErrorf(guidance.ErrUnknownDestination, util.ErrNotFound, "no node")
	}
	return s.nodes[1], 0.5, nil
}

func newTestRouter() *httprouter.Router {
	router := httprouter.New()
	New(newFakeRoutingService(), zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestRouteHandler(t *testing.T) {
	router := newTestRouter()

	testCases := []struct {
		name       string
		url        string
		wantStatus int
		wantCode   string
	}{
		{name: "known room", url: "/api/route?room_name=Room1", wantStatus: http.StatusOK},
		{name: "missing room name", url: "/api/route", wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "unknown room", url: "/api/route?room_name=Basement", wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "unreachable room", url: "/api/route?room_name=Storage", wantStatus: http.StatusConflict, wantCode: "CONFLICT"},
		{name: "internal error", url: "/api/route?room_name=Broken", wantStatus: http.StatusInternalServerError,
			wantCode: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantCode != "" {
				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.NotEmpty(t, body.Error.Message)
				return
			}

			var body struct {
				Data routeResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Room1", body.Data.RoomName)
			assert.Equal(t, 7.0, body.Data.Distance)
			assert.Equal(t, "encoded", body.Data.Path)
			require.Len(t, body.Data.Steps, 3)
			assert.Equal(t, 2, body.Data.Steps[2].NodeID)
			assert.Equal(t, "entry_point", body.Data.Steps[2].Kind)
			assert.Equal(t, 90.0, body.Data.Steps[1].Bearing)
		})
	}
}

func TestDestinationsHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/destinations", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Room1", "Storage"}, body.Data)
}

func TestNearestHandler(t *testing.T) {
	router := newTestRouter()

	testCases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{name: "valid point", url: "/api/nearest?x=0.4&z=4.3", wantStatus: http.StatusOK},
		{name: "missing x", url: "/api/nearest?z=4", wantStatus: http.StatusBadRequest},
		{name: "invalid z", url: "/api/nearest?x=1&z=abc", wantStatus: http.StatusBadRequest},
		{name: "nothing nearby", url: "/api/nearest?x=500&z=1", wantStatus: http.StatusNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var body struct {
					Data nodeResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, 1, body.Data.NodeID)
				assert.Equal(t, "waypoint", body.Data.Kind)
				assert.Equal(t, 0.5, body.Data.Distance)
			}
		})
	}
}

func TestRouteWebsocket(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/route"
	conn, br, _, err := ws.Dial(context.Background(), url)
	require.NoError(t, err)
	defer conn.Close()
	if br != nil {
		ws.PutReader(br)
	}

	testCases := []struct {
		name     string
		message  string
		wantCode string
	}{
		{name: "known room", message: `{"room_name": "Room1"}`},
		{name: "unknown room", message: `{"room_name": "Basement"}`, wantCode: "NOT_FOUND"},
		{name: "unreachable room", message: `{"room_name": "Storage"}`, wantCode: "CONFLICT"},
		{name: "empty room name", message: `{}`, wantCode: "BAD_REQUEST"},
		{name: "not json", message: `room`, wantCode: "BAD_REQUEST"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, wsutil.WriteClientMessage(conn, ws.OpText, []byte(tt.message)))
			msg, op, err := wsutil.ReadServerData(conn)
			require.NoError(t, err)
			assert.Equal(t, ws.OpText, op)

			var resp routeWsResponse
			require.NoError(t, json.Unmarshal(msg, &resp))
			if tt.wantCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				assert.Nil(t, resp.Data)
				return
			}
			require.NotNil(t, resp.Data)
			assert.Nil(t, resp.Error)
			assert.Equal(t, []int{0, 1, 2}, []int{resp.Data.Steps[0].NodeID, resp.Data.Steps[1].NodeID,
				resp.Data.Steps[2].NodeID})
		})
	}
}
