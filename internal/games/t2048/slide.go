package t2048

import (
	"fmt"
	"strings"
)

// Board is a plain value view of the grid, 0 for empty cells.
type Board [Rows][Cols]int

// String renders the board as right-aligned columns with '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
				continue
			}
			sb.WriteString(fmt.Sprintf("%5d", v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// slideRow slides and merges a single row toward index 0.
// Returns the updated row and the number of merges.
func slideRow(row [Cols]int) (result [Cols]int, merges int) {
	writePos := 0
	lastMerged := false

	for i := range Cols {
		if row[i] == 0 {
			continue
		}

		if writePos > 0 && !lastMerged && result[writePos-1] == row[i] {
			// Merge with previous tile
			result[writePos-1] *= 2
			merges++
			lastMerged = true
		} else {
			// Move tile
			result[writePos] = row[i]
			writePos++
			lastMerged = false
		}
	}

	return result, merges
}

// reverseRow reverses a row.
func reverseRow(row [Cols]int) [Cols]int {
	var result [Cols]int
	for i := range Cols {
		result[i] = row[Cols-1-i]
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	var result Board
	for y := range Rows {
		for x := range Cols {
			result[y][x] = board[x][y]
		}
	}
	return result
}

func slideLeft(board Board) (Board, int) {
	var out Board
	total := 0
	for y := range Rows {
		row, merges := slideRow(board[y])
		out[y] = row
		total += merges
	}
	return out, total
}

func slideRight(board Board) (Board, int) {
	var out Board
	total := 0
	for y := range Rows {
		// Reverse, slide left, reverse back
		row, merges := slideRow(reverseRow(board[y]))
		out[y] = reverseRow(row)
		total += merges
	}
	return out, total
}

// Preview computes where a move would leave the tiles, before the spawn,
// without animating anything. Returns the resulting board and the number of
// merges.
func Preview(board Board, dir Direction) (Board, int, error) {
	var (
		out    Board
		merges int
	)
	switch dir {
	case DirLeft:
		out, merges = slideLeft(board)
	case DirRight:
		out, merges = slideRight(board)
	case DirUp:
		// Transpose, slide left, transpose back
		out, merges = slideLeft(transpose(board))
		out = transpose(out)
	case DirDown:
		out, merges = slideRight(transpose(board))
		out = transpose(out)
	default:
		return board, 0, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return out, merges, nil
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for y := range Rows {
		for x := range Cols {
			if board[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for y := range Rows {
		for x := range Cols {
			val := board[y][x]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if x < Cols-1 && board[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < Rows-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if some move would change the board.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range Rows {
		for x := range Cols {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// TileCount returns the number of occupied cells.
func TileCount(board Board) int {
	n := 0
	for y := range Rows {
		for x := range Cols {
			if board[y][x] != 0 {
				n++
			}
		}
	}
	return n
}
