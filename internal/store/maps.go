package store

import (
	"encoding/json"
	"fmt"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/timeutil"
)

// segmentsJSON is the JSON-serialisable form of a VectorMap's segments,
// mirroring the teacher's *_json sqlite column convention (e.g.
// RegionsJSON, ParamsJSON in internal/lidar/l3grid/types.go).
type segmentsJSON struct {
	X0, Y0, X1, Y1 float64
}

// SaveMap persists vmap's segments under name, so it can be reloaded
// without re-parsing the flat-file map format (spec §6).
func (s *Store) SaveMap(name string, vmap *geom.VectorMap, clk timeutil.Clock) error {
	rows := make([]segmentsJSON, len(vmap.Segments))
	for i, seg := range vmap.Segments {
		rows[i] = segmentsJSON{X0: seg.A.X, Y0: seg.A.Y, X1: seg.B.X, Y1: seg.B.Y}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("save map %q: %w", name, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO nav_maps (name, segments_json, loaded_unix_nanos) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET segments_json = excluded.segments_json, loaded_unix_nanos = excluded.loaded_unix_nanos`,
		name, string(data), clk.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save map %q: %w", name, err)
	}
	return nil
}

// LoadMap reads back a previously saved VectorMap by name.
func (s *Store) LoadMap(name string) (*geom.VectorMap, error) {
	var data string
	err := s.db.QueryRow(`SELECT segments_json FROM nav_maps WHERE name = ?`, name).Scan(&data)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", name, err)
	}

	var rows []segmentsJSON
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("load map %q: %w", name, err)
	}

	segs := make([]geom.Segment, len(rows))
	for i, r := range rows {
		segs[i] = geom.Segment{A: geom.Point{X: r.X0, Y: r.Y0}, B: geom.Point{X: r.X1, Y: r.Y1}}
	}
	return &geom.VectorMap{Segments: segs}, nil
}
