package battle

import (
	"errors"
	"fmt"
	"math/rand"
)

const (
	// GridSize is the fixed board edge length. Boards are always square.
	GridSize = 10

	maxCoordinate = GridSize - 1
)

var (
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrInvalidLabel         = errors.New("invalid coordinate label")
)

// Coordinate is one board cell. Both axes are 0 to 9; X grows to the
// right (columns A-J), Y grows downward (rows 1-10).
type Coordinate struct {
	X uint8 `json:"x"`
	Y uint8 `json:"y"`
}

// NewCoordinate is the strict constructor. It fails when either axis
// exceeds the board, reporting which one did.
func NewCoordinate(x, y uint8) (Coordinate, error) {
	switch {
	case x > maxCoordinate && y > maxCoordinate:
		return Coordinate{}, fmt.Errorf("%w: x=%d y=%d", ErrCoordinateOutOfRange, x, y)
	case x > maxCoordinate:
		return Coordinate{}, fmt.Errorf("%w: x=%d", ErrCoordinateOutOfRange, x)
	case y > maxCoordinate:
		return Coordinate{}, fmt.Errorf("%w: y=%d", ErrCoordinateOutOfRange, y)
	}
	return Coordinate{X: x, Y: y}, nil
}

// ClampCoordinate is the permissive constructor. Any input is saturated
// into the board range.
func ClampCoordinate(x, y int) Coordinate {
	return Coordinate{X: clampAxis(x), Y: clampAxis(y)}
}

func clampAxis(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > maxCoordinate {
		return maxCoordinate
	}
	return uint8(v)
}

// RandomCoordinate draws a cell uniformly over the whole board.
func RandomCoordinate(rng *rand.Rand) Coordinate {
	return Coordinate{
		X: uint8(rng.Intn(GridSize)),
		Y: uint8(rng.Intn(GridSize)),
	}
}

// ParseCoordinate reads a board label: one letter A-J (case-insensitive)
// followed by a number 1 to 10. Leading zeros are fine ("A01" is "A1"),
// anything else is not: no whitespace, no signs, no trailing characters.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) < 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'j' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'J' {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}

	n := 0
	for i := 1; i < len(s); i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
		}
		n = n*10 + int(d-'0')
		if n > GridSize {
			return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
		}
	}
	if n == 0 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}

	return Coordinate{X: letter - 'A', Y: uint8(n - 1)}, nil
}

// Label renders the cell as its board label, "A1" to "J10".
func (c Coordinate) Label() string {
	return fmt.Sprintf("%c%d", 'A'+c.X, c.Y+1)
}

func (c Coordinate) String() string {
	return c.Label()
}

// Left moves n cells toward column A, saturating at the board edge.
func (c Coordinate) Left(n uint8) Coordinate {
	return ClampCoordinate(int(c.X)-int(n), int(c.Y))
}

// Right moves n cells toward column J, saturating at the board edge.
func (c Coordinate) Right(n uint8) Coordinate {
	return ClampCoordinate(int(c.X)+int(n), int(c.Y))
}

// Up moves n cells toward row 1, saturating at the board edge.
func (c Coordinate) Up(n uint8) Coordinate {
	return ClampCoordinate(int(c.X), int(c.Y)-int(n))
}

// Down moves n cells toward row 10, saturating at the board edge.
func (c Coordinate) Down(n uint8) Coordinate {
	return ClampCoordinate(int(c.X), int(c.Y)+int(n))
}
