package planner

import (
	"fmt"
	"math"

	"github.com/ConnorCrwf/robot-nav-core/internal/geom"
)

// index is an integer lattice coordinate (i, j).
type index struct {
	I, J int
}

// key returns the node's string identifier "i_j", matching spec §3's
// GridNode.key derivation.
func (idx index) key() string {
	return fmt.Sprintf("%d_%d", idx.I, idx.J)
}

// neighborOffsets are the eight king-move offsets at unit lattice spacing.
// The direction tag is the descriptor's diagonal flag (true for the four
// diagonal offsets); edge length is derived from it.
var neighborOffsets = []index{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// neighborDescriptor is an (index, key, edge-length, direction-tag) tuple
// per spec §3's GridNode.neighbors.
type neighborDescriptor struct {
	idx        index
	key        string
	edgeLength float64
	diagonal   bool
}

// node is one lattice cell: map-frame location derived from its index and
// the lattice resolution, accumulated path cost, parent key, and a lazily
// populated neighbor list (spec §3 GridNode).
type node struct {
	idx      index
	loc      geom.Point
	g        float64
	hasG     bool
	parent   string
	haveKey  bool
	neighbor []neighborDescriptor
}

// locationOf converts a lattice index to a map-frame point given the
// lattice's origin and resolution.
func locationOf(idx index, origin geom.Point, resolution float64) geom.Point {
	return geom.Point{
		X: origin.X + float64(idx.I)*resolution,
		Y: origin.Y + float64(idx.J)*resolution,
	}
}

// neighbors lazily computes and caches this node's neighbor descriptors.
func (n *node) neighbors(origin geom.Point, resolution float64) []neighborDescriptor {
	if n.neighbor != nil {
		return n.neighbor
	}
	out := make([]neighborDescriptor, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		nIdx := index{I: n.idx.I + off.I, J: n.idx.J + off.J}
		diagonal := off.I != 0 && off.J != 0
		length := resolution
		if diagonal {
			length = resolution * math.Sqrt2
		}
		out = append(out, neighborDescriptor{
			idx:        nIdx,
			key:        nIdx.key(),
			edgeLength: length,
			diagonal:   diagonal,
		})
	}
	n.neighbor = out
	return out
}
