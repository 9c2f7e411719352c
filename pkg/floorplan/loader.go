package floorplan

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lintang-b-s/wayfinder/pkg"
	"github.com/lintang-b-s/wayfinder/pkg/util"
)

// LoadRecords. read entry_points.json, nav_points.json and edges.json from dir. every record is validated, a malformed
// file or record fails the load.
func LoadRecords(dir string) (*Records, error) {
	records := &Records{}

	if err := readRecords(filepath.Join(dir, pkg.ENTRY_POINTS_FILE), &records.Entries); err != nil {
		return nil, err
	}
	if err := readRecords(filepath.Join(dir, pkg.WAYPOINTS_FILE), &records.Waypoints); err != nil {
		return nil, err
	}
	if err := readRecords(filepath.Join(dir, pkg.EDGES_FILE), &records.Edges); err != nil {
		return nil, err
	}
	return records, nil
}

func readRecords[T any](path string, out *[]T) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(out); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "decoding %s", path)
	}

	for i := range *out {
		if err := util.ValidateStruct((*out)[i]); err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "%s: record %d", path, i)
		}
	}
	return nil
}

// WriteRecords. write records to dir in the layout LoadRecords reads.
func WriteRecords(dir string, records *Records) error {
	if err := writeRecords(filepath.Join(dir, pkg.ENTRY_POINTS_FILE), records.Entries); err != nil {
		return err
	}
	if err := writeRecords(filepath.Join(dir, pkg.WAYPOINTS_FILE), records.Waypoints); err != nil {
		return err
	}
	return writeRecords(filepath.Join(dir, pkg.EDGES_FILE), records.Edges)
}

func writeRecords[T any](path string, records []T) error {
	if records == nil {
		records = make([]T, 0)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
