package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// ErrInvalidDirection is returned for any value outside the four directions.
var ErrInvalidDirection = errors.New("t2048: invalid direction")

// Directions lists every valid direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name like "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// delta is a per-frame pixel offset.
type delta struct {
	dx, dy int
}

// motion is the data a direction is built from: which axis it travels
// along and whether it heads toward index 0 (sign -1) or the far edge (+1).
type motion struct {
	horizontal bool
	sign       int
}

var motions = map[Direction]motion{
	DirLeft:  {horizontal: true, sign: -1},
	DirRight: {horizontal: true, sign: +1},
	DirUp:    {horizontal: false, sign: -1},
	DirDown:  {horizontal: false, sign: +1},
}

// policy is the full per-direction configuration of the settle loop.
type policy struct {
	dir Direction

	// sortKey orders tiles so the ones nearest the destination edge go first.
	sortKey    func(t *Tile) int
	descending bool

	delta    delta
	rounding rounding

	// atBoundary is true when the tile already sits in the edge cell.
	atBoundary func(t *Tile) bool
	// neighbor returns the tile one cell closer to the edge, or nil.
	neighbor func(g *Grid, t *Tile) *Tile
	// mergeOvershoot is true while t is still more than one frame away from next.
	mergeOvershoot func(t, next *Tile) bool
	// moveOvershoot is true while t is still more than a cell plus one frame behind next.
	moveOvershoot func(t, next *Tile) bool
	// snap re-derives t's cell index along the axis from its pixel position.
	// A tile never snaps into the cell of the neighbour it was checked against.
	snap func(t, next *Tile)
}

// axis gives uniform access to one coordinate of a tile.
type axis struct {
	pos      func(t *Tile) int
	index    func(t *Tile) int
	setIndex func(t *Tile, i int)
	size     int // Pixel size of a cell along the axis
	last     int // Highest cell index along the axis
}

func horizontalAxis(geom Geometry) axis {
	return axis{
		pos:      func(t *Tile) int { return t.X },
		index:    func(t *Tile) int { return t.Col },
		setIndex: func(t *Tile, i int) { t.Col = i },
		size:     geom.CellWidth,
		last:     Cols - 1,
	}
}

func verticalAxis(geom Geometry) axis {
	return axis{
		pos:      func(t *Tile) int { return t.Y },
		index:    func(t *Tile) int { return t.Row },
		setIndex: func(t *Tile, i int) { t.Row = i },
		size:     geom.CellHeight,
		last:     Rows - 1,
	}
}

// policyFor builds the settle-loop policy for dir.
func policyFor(dir Direction, geom Geometry) (policy, error) {
	m, ok := motions[dir]
	if !ok {
		return policy{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	ax := verticalAxis(geom)
	d := delta{dy: m.sign * geom.Velocity}
	neighbor := func(g *Grid, t *Tile) *Tile { return g.At(t.Row+m.sign, t.Col) }
	if m.horizontal {
		ax = horizontalAxis(geom)
		d = delta{dx: m.sign * geom.Velocity}
		neighbor = func(g *Grid, t *Tile) *Tile { return g.At(t.Row, t.Col+m.sign) }
	}

	v := geom.Velocity
	// ahead measures how far t trails next along the direction of travel.
	ahead := func(t, next *Tile) int {
		return m.sign * (ax.pos(next) - ax.pos(t))
	}

	edge := 0
	round := roundCeil
	if m.sign > 0 {
		edge = ax.last
		round = roundFloor
	}

	return policy{
		dir:        dir,
		sortKey:    ax.index,
		descending: m.sign > 0,
		delta:      d,
		rounding:   round,
		atBoundary: func(t *Tile) bool { return ax.index(t) == edge },
		neighbor:   neighbor,
		mergeOvershoot: func(t, next *Tile) bool {
			return ahead(t, next) > v
		},
		moveOvershoot: func(t, next *Tile) bool {
			return ahead(t, next) > ax.size+v
		},
		snap: func(t, next *Tile) {
			i := round.cell(ax.pos(t), ax.size)
			if next != nil {
				limit := ax.index(next) - m.sign
				if m.sign < 0 {
					i = max(i, limit)
				} else {
					i = min(i, limit)
				}
			}
			ax.setIndex(t, i)
		},
	}, nil
}
