package t2048

import (
	"fmt"
	"math/rand"
)

// Grid dimensions. The board is always 4x4.
const (
	Rows  = 4
	Cols  = 4
	Cells = Rows * Cols
)

// spawnValues are the values a new tile may take, chosen uniformly.
var spawnValues = [...]int{2, 4}

// Grid is the authoritative set of live tiles, keyed by row*Cols+col.
// At most one tile occupies a cell.
type Grid struct {
	geom  Geometry
	rng   *rand.Rand
	cells [Cells]*Tile
	count int
}

// NewGrid creates an empty grid.
func NewGrid(geom Geometry, rng *rand.Rand) *Grid {
	return &Grid{geom: geom, rng: rng}
}

// NewStartGrid creates the opening grid: two tiles of value 2 at random cells.
func NewStartGrid(geom Geometry, rng *rand.Rand) *Grid {
	g := NewGrid(geom, rng)
	g.SpawnTile(2)
	g.SpawnTile(2)
	return g
}

func cellKey(row, col int) int {
	return row*Cols + col
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Geometry returns the pixel geometry tiles on this grid use.
func (g *Grid) Geometry() Geometry {
	return g.geom
}

// At returns the tile at (row, col), or nil if the cell is empty or outside the grid.
func (g *Grid) At(row, col int) *Tile {
	if !inBounds(row, col) {
		return nil
	}
	return g.cells[cellKey(row, col)]
}

// Len returns the number of live tiles.
func (g *Grid) Len() int {
	return g.count
}

// IsFull reports whether every cell is occupied.
func (g *Grid) IsFull() bool {
	return g.count == Cells
}

// RandomEmptyCell samples cells uniformly until it finds an empty one.
// The grid must not be full.
func (g *Grid) RandomEmptyCell() (row, col int) {
	if g.IsFull() {
		panic("t2048: RandomEmptyCell on a full grid")
	}
	for {
		row = g.rng.Intn(Rows)
		col = g.rng.Intn(Cols)
		if g.cells[cellKey(row, col)] == nil {
			return row, col
		}
	}
}

// SpawnTile inserts a tile with the given value at a random empty cell.
// The grid must not be full.
func (g *Grid) SpawnTile(value int) *Tile {
	row, col := g.RandomEmptyCell()
	t := newTile(value, row, col, g.geom)
	g.cells[cellKey(row, col)] = t
	g.count++
	return t
}

// SpawnRandomTile spawns a 2 or a 4, chosen uniformly, at a random empty cell.
// The grid must not be full.
func (g *Grid) SpawnRandomTile() *Tile {
	return g.SpawnTile(spawnValues[g.rng.Intn(len(spawnValues))])
}

// Place puts a tile at a specific cell. It is used to lay out known positions.
func (g *Grid) Place(value, row, col int) (*Tile, error) {
	if !isValidValue(value) {
		return nil, fmt.Errorf("t2048: tile value %d is not a power of two >= 2", value)
	}
	if !inBounds(row, col) {
		return nil, fmt.Errorf("t2048: cell (%d, %d) is outside the grid", row, col)
	}
	if g.cells[cellKey(row, col)] != nil {
		return nil, fmt.Errorf("t2048: cell (%d, %d) is occupied", row, col)
	}

	t := newTile(value, row, col, g.geom)
	g.cells[cellKey(row, col)] = t
	g.count++
	return t, nil
}

// Rekey replaces the whole key set from tiles, using each tile's current row/col.
// Two tiles claiming one cell, or a tile outside the grid, is an invariant violation.
func (g *Grid) Rekey(tiles []*Tile) {
	var cells [Cells]*Tile
	for _, t := range tiles {
		if !inBounds(t.Row, t.Col) {
			panic(fmt.Sprintf("t2048: rekey tile %d at (%d, %d) outside the grid", t.Value, t.Row, t.Col))
		}
		k := cellKey(t.Row, t.Col)
		if cells[k] != nil {
			panic(fmt.Sprintf("t2048: rekey collision at (%d, %d)", t.Row, t.Col))
		}
		cells[k] = t
	}
	g.cells = cells
	g.count = len(tiles)
}

// remove drops t from the key set if it is still keyed at its cell.
func (g *Grid) remove(t *Tile) {
	if !inBounds(t.Row, t.Col) {
		return
	}
	k := cellKey(t.Row, t.Col)
	if g.cells[k] == t {
		g.cells[k] = nil
		g.count--
	}
}

// Tiles returns the live tiles in row-major cell order.
func (g *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, 0, g.count)
	for _, t := range g.cells {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Board returns the cell values, 0 for empty cells.
func (g *Grid) Board() Board {
	var b Board
	for _, t := range g.cells {
		if t != nil {
			b[t.Row][t.Col] = t.Value
		}
	}
	return b
}

// Sum returns the total of all tile values.
func (g *Grid) Sum() int {
	sum := 0
	for _, t := range g.cells {
		if t != nil {
			sum += t.Value
		}
	}
	return sum
}

// AtRest reports whether every tile sits exactly on its cell.
func (g *Grid) AtRest() bool {
	for _, t := range g.cells {
		if t != nil && !t.AtRest(g.geom) {
			return false
		}
	}
	return true
}
