package battle

import "strings"

// CellStatus is what a single grid cell records. The zero value is an
// empty cell.
type CellStatus uint8

const (
	CellEmpty CellStatus = iota
	CellOccupied
	CellMiss
	CellHit
)

func (cs CellStatus) String() string {
	switch cs {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	}
	return "unknown"
}

// Rune is the single-character board glyph for this status.
func (cs CellStatus) Rune() rune {
	switch cs {
	case CellOccupied:
		return '#'
	case CellMiss:
		return 'O'
	case CellHit:
		return 'X'
	}
	return ' '
}

// Grid is a passive 10x10 record of cell statuses. It never validates
// transitions: marking an occupied cell back to empty is allowed, the
// grid is a record, not a referee. The zero value is an all-empty board.
type Grid struct {
	cells [GridSize][GridSize]CellStatus
}

// At returns the recorded status of one cell.
func (g Grid) At(c Coordinate) CellStatus {
	return g.cells[c.Y][c.X]
}

// Mark overwrites the status of one cell.
func (g *Grid) Mark(c Coordinate, status CellStatus) {
	g.cells[c.Y][c.X] = status
}

// StampFleet marks every cell occupied by any of the given ships. Used
// to seed a tactical or display grid, never the shot-record grid.
func (g *Grid) StampFleet(ships []Ship) {
	for _, ship := range ships {
		for _, c := range ship.OccupiedCells() {
			g.Mark(c, CellOccupied)
		}
	}
}

// IsEmpty reports whether no cell has been marked yet.
func (g Grid) IsEmpty() bool {
	return g == Grid{}
}

// String renders the board as a table with column letters on top and
// 1-based row numbers down the side:
//
//	   A B C D E F G H I J
//	01
//	..   ..board content..
//	10
func (g Grid) String() string {
	var b strings.Builder
	b.WriteString("   A B C D E F G H I J \n")
	for y, row := range g.cells {
		b.WriteByte('0' + byte((y+1)/10))
		b.WriteByte('0' + byte((y+1)%10))
		b.WriteByte(' ')
		for _, cell := range row {
			b.WriteRune(cell.Rune())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
