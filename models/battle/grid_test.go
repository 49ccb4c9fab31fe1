package battle

import (
	"fmt"
	"strings"
	"testing"
)

func TestGridZeroValue(t *testing.T) {
	var g Grid

	if !g.IsEmpty() {
		t.Error("zero grid should be empty")
	}
	for x := uint8(0); x < GridSize; x++ {
		for y := uint8(0); y < GridSize; y++ {
			if have := g.At(Coordinate{X: x, Y: y}); have != CellEmpty {
				t.Fatalf("cell (%d,%d): want=%v, have=%v", x, y, CellEmpty, have)
			}
		}
	}
}

func TestGridMark(t *testing.T) {
	var g Grid
	c := Coordinate{X: 4, Y: 7}

	g.Mark(c, CellOccupied)
	if want, have := CellOccupied, g.At(c); want != have {
		t.Errorf("unexpected status: want=%v, have=%v", want, have)
	}
	if g.IsEmpty() {
		t.Error("grid with a marked cell should not be empty")
	}

	// The grid is a record, not a referee: any overwrite goes.
	g.Mark(c, CellHit)
	if want, have := CellHit, g.At(c); want != have {
		t.Errorf("unexpected status: want=%v, have=%v", want, have)
	}
	g.Mark(c, CellEmpty)
	if want, have := CellEmpty, g.At(c); want != have {
		t.Errorf("unexpected status: want=%v, have=%v", want, have)
	}
}

func TestGridStampFleet(t *testing.T) {
	cruiser, err := NewShip(Cruiser, Coordinate{X: 2, Y: 3}, Horizontal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	destroyer, err := NewShip(Destroyer, Coordinate{X: 7, Y: 6}, Vertical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var g Grid
	g.StampFleet([]Ship{cruiser, destroyer})

	occupied := map[Coordinate]bool{}
	for _, ship := range []Ship{cruiser, destroyer} {
		for _, c := range ship.OccupiedCells() {
			occupied[c] = true
		}
	}

	for x := uint8(0); x < GridSize; x++ {
		for y := uint8(0); y < GridSize; y++ {
			c := Coordinate{X: x, Y: y}
			want := CellEmpty
			if occupied[c] {
				want = CellOccupied
			}
			if have := g.At(c); want != have {
				t.Errorf("cell %s: want=%v, have=%v", c, want, have)
			}
		}
	}
}

func TestGridStringEmpty(t *testing.T) {
	var g Grid

	want := "   A B C D E F G H I J \n"
	for row := 1; row <= 10; row++ {
		want += fmt.Sprintf("%02d %s\n", row, strings.Repeat("  ", GridSize))
	}

	if have := g.String(); want != have {
		t.Errorf("unexpected render:\nwant=%q\nhave=%q", want, have)
	}
}

func TestGridStringGlyphs(t *testing.T) {
	var g Grid
	g.Mark(Coordinate{X: 0, Y: 0}, CellOccupied)
	g.Mark(Coordinate{X: 3, Y: 0}, CellMiss)
	g.Mark(Coordinate{X: 9, Y: 9}, CellHit)

	lines := strings.Split(g.String(), "\n")

	// Column x renders at offset 3+2x within its row line.
	if have := lines[1][3+2*0]; have != '#' {
		t.Errorf("occupied glyph: want='#', have=%q", have)
	}
	if have := lines[1][3+2*3]; have != 'O' {
		t.Errorf("miss glyph: want='O', have=%q", have)
	}
	if have := lines[10][3+2*9]; have != 'X' {
		t.Errorf("hit glyph: want='X', have=%q", have)
	}
	if want, have := "10 ", lines[10][:3]; want != have {
		t.Errorf("row prefix: want=%q, have=%q", want, have)
	}
}

func TestCellStatusRune(t *testing.T) {
	tests := []struct {
		status CellStatus
		want   rune
	}{
		{status: CellEmpty, want: ' '},
		{status: CellOccupied, want: '#'},
		{status: CellMiss, want: 'O'},
		{status: CellHit, want: 'X'},
	}

	for _, test := range tests {
		if have := test.status.Rune(); have != test.want {
			t.Errorf("%v: want=%q, have=%q", test.status, test.want, have)
		}
	}
}
