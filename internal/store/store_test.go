package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/timeutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nav.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadMapRoundTrips(t *testing.T) {
	s := openTestStore(t)
	clk := timeutil.NewMockClock(time.Unix(0, 0))

	vmap := &geom.VectorMap{Segments: []geom.Segment{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}},
		{A: geom.Point{X: 1, Y: 0}, B: geom.Point{X: 1, Y: 1}},
	}}

	require.NoError(t, s.SaveMap("demo", vmap, clk))

	loaded, err := s.LoadMap("demo")
	require.NoError(t, err)
	assert.Equal(t, vmap.Segments, loaded.Segments)
}

func TestSaveMapOverwritesExisting(t *testing.T) {
	s := openTestStore(t)
	clk := timeutil.NewMockClock(time.Unix(0, 0))

	require.NoError(t, s.SaveMap("demo", &geom.VectorMap{Segments: []geom.Segment{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}},
	}}, clk))
	require.NoError(t, s.SaveMap("demo", &geom.VectorMap{Segments: []geom.Segment{
		{A: geom.Point{X: 2, Y: 2}, B: geom.Point{X: 3, Y: 3}},
	}}, clk))

	loaded, err := s.LoadMap("demo")
	require.NoError(t, err)
	require.Len(t, loaded.Segments, 1)
	assert.Equal(t, 2.0, loaded.Segments[0].A.X)
}

func TestRecordTickAppendsRows(t *testing.T) {
	s := openTestStore(t)
	clk := timeutil.NewMockClock(time.Unix(0, 0))

	runID, err := s.StartRun("demo", clk)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		tick := TickRecord{
			Index:         i,
			EstimatedPose: geom.NewPose2D(float64(i), 0, 0),
			PredictedPose: geom.NewPose2D(float64(i)+0.1, 0, 0),
			Target:        geom.Point{X: float64(i) + 1, Y: 0},
			CommandVx:     1.0,
		}
		require.NoError(t, s.RecordTick(runID, tick, clk))
	}

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM nav_ticks WHERE run_id = ?`, runID.String()).Scan(&count))
	assert.Equal(t, 3, count)
}
