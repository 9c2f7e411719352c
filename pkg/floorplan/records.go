package floorplan

// plain records of the declarative floor plan files. they carry no behavior, Builder turns them into graph nodes.

type EntryPointRecord struct {
	ID       int     `json:"id" validate:"gte=0"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
	RoomName string  `json:"roomName" validate:"required"`
	AngleIn  float64 `json:"angleIn" validate:"gte=0,lte=360"`
}

type WaypointRecord struct {
	ID int     `json:"id" validate:"gte=0"`
	X  float64 `json:"x"`
	Z  float64 `json:"z"`
}

// EdgeRecord. undirected, Builder inserts both directions.
type EdgeRecord struct {
	From int `json:"from" validate:"gte=0"`
	To   int `json:"to" validate:"gte=0"`
}

// RootConfig. the node anchored to the detected marker. it comes from configuration, not from the floor plan files, so
// moving the marker only means changing these values.
type RootConfig struct {
	ID          int
	X           float64
	Z           float64
	NeighborIDs []int
}

func NewRootConfig(id int, x, z float64, neighborIDs []int) RootConfig {
	return RootConfig{
		ID:          id,
		X:           x,
		Z:           z,
		NeighborIDs: neighborIDs,
	}
}

type Records struct {
	Entries   []EntryPointRecord
	Waypoints []WaypointRecord
	Edges     []EdgeRecord
}
