package geom

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Segment is a 2D line segment with endpoints in map frame.
type Segment struct {
	A, B Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return Dist(s.A, s.B)
}

// VectorMap is an ordered, immutable-after-load sequence of line segments.
// It is shared read-only by the localizer and the planner for the lifetime
// of the process once loaded; no topology index is maintained.
type VectorMap struct {
	Segments []Segment
}

// LoadMap resolves "<dir>/<name>.txt" and parses it into a VectorMap. Each
// non-empty, non-comment line encodes one segment as four whitespace
// separated decimals "x0 y0 x1 y1" in meters, map frame. Lines beginning
// with '#' are comments. Malformed input is a boundary error: it fails the
// load rather than silently skipping.
func LoadMap(dir, name string) (*VectorMap, error) {
	if dir == "" {
		dir = "maps"
	}
	path := filepath.Join(dir, name+".txt")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", path, err)
	}
	defer f.Close()

	var segs []Segment
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("load map %q: line %d: expected 4 fields, got %d", path, lineNo, len(fields))
		}
		vals := make([]float64, 4)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("load map %q: line %d: %w", path, lineNo, err)
			}
			vals[i] = v
		}
		segs = append(segs, Segment{A: Point{vals[0], vals[1]}, B: Point{vals[2], vals[3]}})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load map %q: %w", path, err)
	}
	return &VectorMap{Segments: segs}, nil
}

// Intersection is the result of a ray/segment query against the map.
type Intersection struct {
	Point Point
	Range float64 // distance from the query segment's start point
}

// Intersect returns the nearest intersection of query with any segment in
// the map, or ok=false if there is no hit. Uses the standard parametric
// line-line determinant test; parallel or degenerate segments report no
// hit. Ties across multiple map hits are broken by smallest distance from
// query.A.
func (m *VectorMap) Intersect(query Segment) (Intersection, bool) {
	best := Intersection{}
	found := false
	for _, seg := range m.Segments {
		pt, ok := segmentIntersect(query, seg)
		if !ok {
			continue
		}
		d := Dist(query.A, pt)
		if !found || d < best.Range {
			best = Intersection{Point: pt, Range: d}
			found = true
		}
	}
	return best, found
}

// segmentIntersect computes the intersection of two segments using the
// parametric determinant test. Returns ok=false for parallel, collinear,
// or out-of-[0,1]-range (non-intersecting) segments.
func segmentIntersect(p, q Segment) (Point, bool) {
	x1, y1 := p.A.X, p.A.Y
	x2, y2 := p.B.X, p.B.Y
	x3, y3 := q.A.X, q.A.Y
	x4, y4 := q.B.X, q.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if math.Abs(denom) < 1e-12 {
		return Point{}, false
	}

	tNum := (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	uNum := (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)
	t := tNum / denom
	u := uNum / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return Point{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)}, true
}

// MinDistanceFromLineToMap returns the minimum perpendicular distance from
// any map segment's endpoint or interior point to the query segment.
func (m *VectorMap) MinDistanceFromLineToMap(query Segment) float64 {
	best := math.Inf(1)
	for _, seg := range m.Segments {
		if d := distanceSegmentToSegment(query, seg); d < best {
			best = d
		}
	}
	return best
}

// distanceSegmentToSegment returns the minimum distance between two
// segments (zero if they intersect).
func distanceSegmentToSegment(a, b Segment) float64 {
	if _, ok := segmentIntersect(a, b); ok {
		return 0
	}
	d1 := pointToSegmentDistance(a.A, b)
	d2 := pointToSegmentDistance(a.B, b)
	d3 := pointToSegmentDistance(b.A, a)
	d4 := pointToSegmentDistance(b.B, a)
	return math.Min(math.Min(d1, d2), math.Min(d3, d4))
}

// pointToSegmentDistance returns the minimum distance from pt to the
// closest point on segment s (endpoint or interior).
func pointToSegmentDistance(pt Point, s Segment) float64 {
	return PointToSegmentDistance(pt, s.A, s.B)
}

// PointToSegmentDistance returns the minimum distance from pt to the
// closest point on the segment [a, b] (endpoint or interior). Exported so
// callers outside geom (e.g. the navigation coordinator's carrot and
// obstacle-clearance checks) don't each reimplement it.
func PointToSegmentDistance(pt, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-18 {
		return Dist(pt, a)
	}
	t := ((pt.X-a.X)*dx + (pt.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return Dist(pt, closest)
}
