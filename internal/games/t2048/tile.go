package t2048

import (
	"math/bits"

	"github.com/vovakirdan/slide2048/internal/config"
)

// Geometry describes the pixel space tiles animate through.
type Geometry struct {
	CellWidth  int // Pixel width of one cell
	CellHeight int // Pixel height of one cell
	Velocity   int // Pixels travelled per frame
}

// GeometryFromConfig extracts the animation geometry from a configuration.
func GeometryFromConfig(cfg config.Config) Geometry {
	return Geometry{
		CellWidth:  cfg.Geometry.CellWidth,
		CellHeight: cfg.Geometry.CellHeight,
		Velocity:   cfg.Animation.MoveVelocity,
	}
}

// Tile is one numbered square.
// Row and Col locate it on the grid. X and Y are its pixel position; they
// equal Col*CellWidth and Row*CellHeight at rest and lead Row/Col while a
// move is animating.
type Tile struct {
	Value int
	Row   int
	Col   int
	X     int
	Y     int
}

func newTile(value, row, col int, geom Geometry) *Tile {
	t := &Tile{Value: value, Row: row, Col: col}
	t.settle(geom)
	return t
}

// move shifts the tile's pixel position by one frame delta.
func (t *Tile) move(d delta) {
	t.X += d.dx
	t.Y += d.dy
}

// settle puts the pixel position back on the tile's cell.
func (t *Tile) settle(geom Geometry) {
	t.X = t.Col * geom.CellWidth
	t.Y = t.Row * geom.CellHeight
}

// AtRest reports whether the pixel position matches the cell exactly.
func (t *Tile) AtRest(geom Geometry) bool {
	return t.X == t.Col*geom.CellWidth && t.Y == t.Row*geom.CellHeight
}

// Rank returns log2(Value)-1: 0 for a 2, 1 for a 4 and so on.
func (t *Tile) Rank() int {
	return bits.Len(uint(t.Value)) - 2
}

// isValidValue reports whether v is a power of two no smaller than 2.
func isValidValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// rounding selects how a pixel position maps to a cell index.
type rounding int

const (
	roundFloor rounding = iota
	roundCeil
)

// cell converts a pixel coordinate to a cell index.
func (r rounding) cell(pos, size int) int {
	q := pos / size
	rem := pos % size
	switch {
	case r == roundCeil && rem > 0:
		q++
	case r == roundFloor && rem < 0:
		q--
	}
	return q
}
