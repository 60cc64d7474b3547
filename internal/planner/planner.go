package planner

import (
	"math"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
	"github.com/ConnorCrwf/robot-nav-core/internal/monitoring"
	"github.com/ConnorCrwf/robot-nav-core/internal/pqueue"
)

// GlobalPlanner owns the lattice ("nav_map_" in spec §3) rooted at the most
// recent start location, and the shared vector map it validates edges
// against. The lattice is extended lazily as nodes are expanded. Every Plan
// call clears it and re-roots it at that call's start, even when the start
// is unchanged; nodes from an earlier query are not reused.
type GlobalPlanner struct {
	Config Config
	vmap   *geom.VectorMap

	origin    geom.Point
	haveStart bool
	nodes     map[string]*node

	boundMin, boundMax geom.Point
}

// New constructs a planner bound to the given shared map.
func New(cfg Config, vmap *geom.VectorMap) *GlobalPlanner {
	return &GlobalPlanner{Config: cfg, vmap: vmap, nodes: make(map[string]*node)}
}

// getOrCreate materializes a node on first reference, deriving its map-frame
// location from the lattice origin and resolution.
func (p *GlobalPlanner) getOrCreate(idx index) *node {
	k := idx.key()
	n, ok := p.nodes[k]
	if !ok {
		n = &node{idx: idx, loc: locationOf(idx, p.origin, p.Config.Resolution)}
		p.nodes[k] = n
	}
	return n
}

// resetLattice clears nav_map_ and re-roots it at start. Plan calls it at
// the beginning of every search.
func (p *GlobalPlanner) resetLattice(start geom.Point) {
	p.origin = start
	p.nodes = make(map[string]*node)
	p.haveStart = true
}

// Plan searches the lattice rooted at start for a shortest collision-free
// path to goal, A*-style with h = Euclidean distance to goal. Returns the
// ordered sequence of map-frame waypoints, or an empty (nil) sequence if the
// frontier empties without reaching the goal (spec §4.5 failure semantics).
func (p *GlobalPlanner) Plan(start, goal geom.Point) []geom.Point {
	p.resetLattice(start)
	p.boundMin, p.boundMax = searchBounds(start, goal, p.vmap)

	startIdx := index{0, 0}
	startNode := p.getOrCreate(startIdx)
	startNode.g = 0
	startNode.hasG = true

	frontier := pqueue.New()
	frontier.PushOrUpdate(startIdx.key(), heuristic(startNode.loc, goal))

	resolution := p.Config.Resolution
	if resolution <= 0 {
		resolution = 0.25
	}

	for !frontier.IsEmpty() {
		currentKey, _ := frontier.Pop()
		current := p.nodes[currentKey]
		if current == nil {
			continue
		}

		if geom.Dist(current.loc, goal) <= resolution {
			return p.reconstruct(current)
		}

		for _, nb := range current.neighbors(p.origin, resolution) {
			nbLoc := locationOf(nb.idx, p.origin, resolution)
			if !p.inBounds(nbLoc) {
				continue
			}
			if !p.edgeValid(current.loc, nb) {
				continue
			}

			tentativeG := current.g + nb.edgeLength
			neighborNode := p.getOrCreate(nb.idx)
			if neighborNode.hasG && tentativeG >= neighborNode.g {
				continue
			}

			neighborNode.g = tentativeG
			neighborNode.hasG = true
			neighborNode.parent = currentKey
			neighborNode.haveKey = true
			f := tentativeG + heuristic(neighborNode.loc, goal)
			frontier.PushOrUpdate(nb.key, f)
		}
	}

	monitoring.LogSearchFailure("planner", "no path found from %v to %v", start, goal)
	return nil
}

// searchBounds derives the lattice's search region: the bounding box of the
// start, the goal, and every map segment endpoint. A grid planner operating
// over an otherwise-unbounded lattice could always detour arbitrarily far
// around any finite obstacle, which would never terminate the "no path"
// search failure case (spec §4.5, scenario 4). Real costmap-based planners
// bound search to the region the costmap covers; here that region is the
// map's own extent, which is the only bound the spec's data model supplies.
func searchBounds(start, goal geom.Point, vmap *geom.VectorMap) (geom.Point, geom.Point) {
	minX, maxX := math.Min(start.X, goal.X), math.Max(start.X, goal.X)
	minY, maxY := math.Min(start.Y, goal.Y), math.Max(start.Y, goal.Y)
	if vmap != nil {
		for _, seg := range vmap.Segments {
			for _, pt := range [2]geom.Point{seg.A, seg.B} {
				minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
				minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
			}
		}
	}
	return geom.Point{X: minX, Y: minY}, geom.Point{X: maxX, Y: maxY}
}

// inBounds reports whether pt falls within the current search region.
func (p *GlobalPlanner) inBounds(pt geom.Point) bool {
	const eps = 1e-9
	return pt.X >= p.boundMin.X-eps && pt.X <= p.boundMax.X+eps &&
		pt.Y >= p.boundMin.Y-eps && pt.Y <= p.boundMax.Y+eps
}

// heuristic is h(n): straight-line distance from n to the goal.
func heuristic(loc, goal geom.Point) float64 {
	return geom.Dist(loc, goal)
}

// reconstruct walks parent pointers from goalNode back to the start,
// returning the reversed, forward-ordered sequence of map-frame points
// (spec §4.5: "reconstruct the path by walking parent pointers ... and
// reverse").
func (p *GlobalPlanner) reconstruct(goalNode *node) []geom.Point {
	var reversed []geom.Point
	n := goalNode
	for {
		reversed = append(reversed, n.loc)
		if !n.haveKey {
			break
		}
		parent, ok := p.nodes[n.parent]
		if !ok {
			break
		}
		n = parent
	}

	path := make([]geom.Point, len(reversed))
	for i, pt := range reversed {
		path[len(reversed)-1-i] = pt
	}
	return path
}

// edgeValid reports whether the straight edge from `from` to the neighbor's
// location is collision-free and clears a corridor of width
// 2*ClearanceOffset: the center-line segment and two parallel "cushion"
// segments offset +-ClearanceOffset along the edge's unit normal must all
// miss the map (spec §4.5, §9 "Cushion-line offset construction"). A
// degenerate (zero-length) edge is rejected rather than silently accepted.
func (p *GlobalPlanner) edgeValid(from geom.Point, nb neighborDescriptor) bool {
	to := locationOf(nb.idx, p.origin, p.Config.Resolution)

	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return false
	}

	center := geom.Segment{A: from, B: to}
	if p.vmap != nil {
		if _, hit := p.vmap.Intersect(center); hit {
			return false
		}
	}

	offset := p.Config.ClearanceOffset
	if offset <= 0 {
		return true
	}

	nx, ny := -dy/length, dx/length // unit normal

	cushionA := geom.Segment{
		A: geom.Point{X: from.X + nx*offset, Y: from.Y + ny*offset},
		B: geom.Point{X: to.X + nx*offset, Y: to.Y + ny*offset},
	}
	cushionB := geom.Segment{
		A: geom.Point{X: from.X - nx*offset, Y: from.Y - ny*offset},
		B: geom.Point{X: to.X - nx*offset, Y: to.Y - ny*offset},
	}

	if p.vmap == nil {
		return true
	}
	if _, hit := p.vmap.Intersect(cushionA); hit {
		return false
	}
	if _, hit := p.vmap.Intersect(cushionB); hit {
		return false
	}
	return true
}
