package battle

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		x, y    uint8
		wantErr bool
	}{
		{name: "origin", x: 0, y: 0},
		{name: "far corner", x: 9, y: 9},
		{name: "x out of range", x: 10, y: 0, wantErr: true},
		{name: "y out of range", x: 0, y: 10, wantErr: true},
		{name: "both out of range", x: 200, y: 255, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := NewCoordinate(test.x, test.y)
			if test.wantErr {
				if !errors.Is(err, ErrCoordinateOutOfRange) {
					t.Fatalf("expected ErrCoordinateOutOfRange, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.X != test.x || c.Y != test.y {
				t.Errorf("unexpected coordinate: want=(%d,%d), have=(%d,%d)", test.x, test.y, c.X, c.Y)
			}
		})
	}
}

func TestNewCoordinateErrorNamesAxis(t *testing.T) {
	_, err := NewCoordinate(12, 3)
	if err == nil || !strings.Contains(err.Error(), "x=12") {
		t.Errorf("error should name the x axis: %v", err)
	}

	_, err = NewCoordinate(3, 12)
	if err == nil || !strings.Contains(err.Error(), "y=12") {
		t.Errorf("error should name the y axis: %v", err)
	}
}

func TestClampCoordinate(t *testing.T) {
	tests := []struct {
		x, y         int
		wantX, wantY uint8
	}{
		{x: 0, y: 0, wantX: 0, wantY: 0},
		{x: 9, y: 9, wantX: 9, wantY: 9},
		{x: -5, y: 3, wantX: 0, wantY: 3},
		{x: 12, y: 4, wantX: 9, wantY: 4},
		{x: 10, y: 10, wantX: 9, wantY: 9},
		{x: -1, y: -1, wantX: 0, wantY: 0},
		{x: 100, y: -100, wantX: 9, wantY: 0},
	}

	for _, test := range tests {
		c := ClampCoordinate(test.x, test.y)
		if c.X != test.wantX || c.Y != test.wantY {
			t.Errorf("clamp(%d,%d): want=(%d,%d), have=(%d,%d)",
				test.x, test.y, test.wantX, test.wantY, c.X, c.Y)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		label        string
		wantX, wantY uint8
	}{
		{label: "A1", wantX: 0, wantY: 0},
		{label: "J10", wantX: 9, wantY: 9},
		{label: "d6", wantX: 3, wantY: 5},
		{label: "F8", wantX: 5, wantY: 7},
		{label: "A01", wantX: 0, wantY: 0},
		{label: "e0001", wantX: 4, wantY: 0},
		{label: "j10", wantX: 9, wantY: 9},
	}

	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			c, err := ParseCoordinate(test.label)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.X != test.wantX || c.Y != test.wantY {
				t.Errorf("unexpected coordinate: want=(%d,%d), have=(%d,%d)",
					test.wantX, test.wantY, c.X, c.Y)
			}
		})
	}
}

func TestParseCoordinateRejects(t *testing.T) {
	labels := []string{
		"", "A", "7", "A0", "A00", "A11", "B0", "K1", "Z5",
		" A5", "A5 ", "  A5  ", "A 1", "1A", "AA", "A1x", "A+5", "A-1",
	}

	for _, label := range labels {
		if _, err := ParseCoordinate(label); !errors.Is(err, ErrInvalidLabel) {
			t.Errorf("ParseCoordinate(%q): expected ErrInvalidLabel, got: %v", label, err)
		}
	}
}

func TestParseCoordinateErrorCarriesInput(t *testing.T) {
	_, err := ParseCoordinate("K13")
	if err == nil || !strings.Contains(err.Error(), `"K13"`) {
		t.Errorf("error should carry the original label: %v", err)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		x, y uint8
		want string
	}{
		{x: 0, y: 0, want: "A1"},
		{x: 9, y: 9, want: "J10"},
		{x: 5, y: 7, want: "F8"},
		{x: 0, y: 9, want: "A10"},
	}

	for _, test := range tests {
		c := Coordinate{X: test.x, Y: test.y}
		if have := c.Label(); have != test.want {
			t.Errorf("unexpected label: want=%q, have=%q", test.want, have)
		}
	}
}

func TestLabelRoundTrip(t *testing.T) {
	for x := uint8(0); x < GridSize; x++ {
		for y := uint8(0); y < GridSize; y++ {
			c := Coordinate{X: x, Y: y}
			parsed, err := ParseCoordinate(c.Label())
			if err != nil {
				t.Fatalf("round trip of %s failed: %v", c, err)
			}
			if parsed != c {
				t.Errorf("round trip mismatch: want=%v, have=%v", c, parsed)
			}
		}
	}
}

func TestCoordinateSteps(t *testing.T) {
	c := Coordinate{X: 5, Y: 5}

	if have := c.Left(2); have != (Coordinate{X: 3, Y: 5}) {
		t.Errorf("Left(2): have=%v", have)
	}
	if have := c.Right(2); have != (Coordinate{X: 7, Y: 5}) {
		t.Errorf("Right(2): have=%v", have)
	}
	if have := c.Up(2); have != (Coordinate{X: 5, Y: 3}) {
		t.Errorf("Up(2): have=%v", have)
	}
	if have := c.Down(2); have != (Coordinate{X: 5, Y: 7}) {
		t.Errorf("Down(2): have=%v", have)
	}

	// Steps saturate at the board edge.
	if have := c.Left(9); have != (Coordinate{X: 0, Y: 5}) {
		t.Errorf("Left(9): have=%v", have)
	}
	if have := c.Right(9); have != (Coordinate{X: 9, Y: 5}) {
		t.Errorf("Right(9): have=%v", have)
	}
	if have := c.Up(9); have != (Coordinate{X: 5, Y: 0}) {
		t.Errorf("Up(9): have=%v", have)
	}
	if have := c.Down(9); have != (Coordinate{X: 5, Y: 9}) {
		t.Errorf("Down(9): have=%v", have)
	}
}

func TestRandomCoordinateCoversBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var sawMaxX, sawMaxY bool
	for i := 0; i < 1000; i++ {
		c := RandomCoordinate(rng)
		if c.X > 9 || c.Y > 9 {
			t.Fatalf("coordinate out of board: %v", c)
		}
		if c.X == 9 {
			sawMaxX = true
		}
		if c.Y == 9 {
			sawMaxY = true
		}
	}

	// Both edges must be reachable; the range is 0-9, not 0-8.
	if !sawMaxX || !sawMaxY {
		t.Errorf("random draws never reached the J column or row 10: x=%v y=%v", sawMaxX, sawMaxY)
	}
}
