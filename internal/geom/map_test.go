package geom

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func unitSquare() *VectorMap {
	return &VectorMap{Segments: []Segment{
		{A: Point{0, 0}, B: Point{1, 0}},
		{A: Point{1, 0}, B: Point{1, 1}},
		{A: Point{1, 1}, B: Point{0, 1}},
		{A: Point{0, 1}, B: Point{0, 0}},
	}}
}

func TestIntersect_RayAgainstUnitSquare(t *testing.T) {
	m := unitSquare()
	// particle at (0.5, 0.5), laser origin 0.2m forward along heading 0
	// i.e. (0.7, 0.5); ray straight ahead hits the right wall at (1.0, 0.5).
	origin := Point{0.7, 0.5}
	ray := Segment{A: origin, B: Point{origin.X + 10, origin.Y}}

	hit, ok := m.Intersect(ray)
	require.True(t, ok)
	require.InDelta(t, 1.0, hit.Point.X, 1e-9)
	require.InDelta(t, 0.5, hit.Point.Y, 1e-9)
	require.InDelta(t, 0.3, hit.Range, 1e-9)
}

func TestIntersect_NoHitParallel(t *testing.T) {
	m := &VectorMap{Segments: []Segment{{A: Point{0, 0}, B: Point{1, 0}}}}
	ray := Segment{A: Point{0, 1}, B: Point{1, 1}}
	_, ok := m.Intersect(ray)
	require.False(t, ok)
}

func TestIntersect_TieBreakNearestToStart(t *testing.T) {
	m := &VectorMap{Segments: []Segment{
		{A: Point{2, -1}, B: Point{2, 1}},
		{A: Point{5, -1}, B: Point{5, 1}},
	}}
	ray := Segment{A: Point{0, 0}, B: Point{10, 0}}
	hit, ok := m.Intersect(ray)
	require.True(t, ok)
	require.InDelta(t, 2.0, hit.Point.X, 1e-9)
}

func TestMinDistanceFromLineToMap(t *testing.T) {
	m := &VectorMap{Segments: []Segment{{A: Point{0.5, -1}, B: Point{0.5, 1}}}}
	query := Segment{A: Point{0, 0}, B: Point{0, 5}}
	d := m.MinDistanceFromLineToMap(query)
	require.InDelta(t, 0.5, d, 1e-9)
}

func TestWrapAngle(t *testing.T) {
	require.InDelta(t, math.Pi, WrapAngle(math.Pi), 1e-12)
	require.InDelta(t, -math.Pi+0.1, WrapAngle(math.Pi+0.1), 1e-9)
	require.InDelta(t, 0, WrapAngle(2*math.Pi), 1e-9)
}

func TestLoadMap_MissingFile(t *testing.T) {
	_, err := LoadMap(t.TempDir(), "does-not-exist")
	require.Error(t, err)
}

func TestLoadMap_ParsesCommentsAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	content := "# a comment\n\n0 0 1 0\n1 0 1 1\n"
	writeFile(t, dir, "demo.txt", content)

	m, err := LoadMap(dir, "demo")
	require.NoError(t, err)
	require.Len(t, m.Segments, 2)
	require.Equal(t, Point{0, 0}, m.Segments[0].A)
	require.Equal(t, Point{1, 0}, m.Segments[0].B)
}

func TestLoadMap_MalformedLineFailsFast(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "0 0 1\n")
	_, err := LoadMap(dir, "bad")
	require.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := dir + "/" + name
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
