package battle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Orientation is the axis a ship lies on.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation accepts the wire forms of an orientation: "h",
// "horizontal", "v" or "vertical", case-insensitive.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return Horizontal, true
	case "v", "vertical":
		return Vertical, true
	}
	return Horizontal, false
}

// ShipKind identifies one of the five fixed ship identities. The
// declaration order is the canonical fleet order.
type ShipKind uint8

const (
	AircraftCarrier ShipKind = iota
	Battleship
	Cruiser
	Submarine
	Destroyer
)

// ShipKinds lists every kind in canonical fleet order.
var ShipKinds = [...]ShipKind{AircraftCarrier, Battleship, Cruiser, Submarine, Destroyer}

// Size is the fixed cell length of this kind of ship.
func (k ShipKind) Size() uint8 {
	switch k {
	case AircraftCarrier:
		return 5
	case Battleship:
		return 4
	case Cruiser, Submarine:
		return 3
	case Destroyer:
		return 2
	}
	return 0
}

func (k ShipKind) String() string {
	switch k {
	case AircraftCarrier:
		return "Aircraft Carrier"
	case Battleship:
		return "Battleship"
	case Cruiser:
		return "Cruiser"
	case Submarine:
		return "Submarine"
	case Destroyer:
		return "Destroyer"
	}
	return "unknown"
}

// IsValid reports whether k names one of the five kinds.
func (k ShipKind) IsValid() bool {
	return k <= Destroyer
}

// ParseShipKind accepts the wire forms of a kind: the display name or
// its last word ("carrier" for "Aircraft Carrier"), case-insensitive.
func ParseShipKind(s string) (ShipKind, bool) {
	switch strings.ToLower(s) {
	case "carrier", "aircraft carrier":
		return AircraftCarrier, true
	case "battleship":
		return Battleship, true
	case "cruiser":
		return Cruiser, true
	case "submarine":
		return Submarine, true
	case "destroyer":
		return Destroyer, true
	}
	return 0, false
}

var ErrShipDoesNotFit = errors.New("ship does not fit on the board")

// maxPlacementAttempts caps the retry loops of randomized placement.
// Termination of those loops is a statistical certainty on an open
// board; the cap only guards against a broken random source.
const maxPlacementAttempts = 10_000

// Ship is one deployed vessel: an origin, an orientation and a damage
// bitmask with one bit per segment, bit set while the segment is
// intact. Ships never move or resize after creation; only RegisterHit
// mutates them.
type Ship struct {
	kind        ShipKind
	origin      Coordinate
	size        uint8
	orientation Orientation
	state       uint8
}

// NewShip deploys a ship of the given kind if its whole footprint fits
// on the board, ErrShipDoesNotFit otherwise.
func NewShip(kind ShipKind, origin Coordinate, orientation Orientation) (Ship, error) {
	size := kind.Size()

	end := origin.X
	if orientation == Vertical {
		end = origin.Y
	}
	if int(end)+int(size)-1 > maxCoordinate {
		return Ship{}, fmt.Errorf("%w: %s %s at %s", ErrShipDoesNotFit, kind, orientation, origin)
	}

	return Ship{
		kind:        kind,
		origin:      origin,
		size:        size,
		orientation: orientation,
		state:       1<<size - 1,
	}, nil
}

// RandomShip deploys a ship of the given kind at a random origin and
// orientation, retrying until the footprint fits.
func RandomShip(kind ShipKind, rng *rand.Rand) (Ship, error) {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		orientation := Horizontal
		if rng.Intn(2) == 1 {
			orientation = Vertical
		}
		ship, err := NewShip(kind, RandomCoordinate(rng), orientation)
		if err == nil {
			return ship, nil
		}
	}
	return Ship{}, fmt.Errorf("no fitting placement for %s after %d attempts", kind, maxPlacementAttempts)
}

func (s Ship) Kind() ShipKind           { return s.kind }
func (s Ship) Origin() Coordinate       { return s.origin }
func (s Ship) Size() uint8              { return s.size }
func (s Ship) Orientation() Orientation { return s.orientation }

// OccupiedCells enumerates the footprint: size consecutive cells from
// the origin along the orientation axis, in increasing order.
func (s Ship) OccupiedCells() []Coordinate {
	cells := make([]Coordinate, 0, s.size)
	for i := uint8(0); i < s.size; i++ {
		if s.orientation == Horizontal {
			cells = append(cells, Coordinate{X: s.origin.X + i, Y: s.origin.Y})
		} else {
			cells = append(cells, Coordinate{X: s.origin.X, Y: s.origin.Y + i})
		}
	}
	return cells
}

// segmentAt maps a cell to its segment index, the offset from the
// origin along the orientation axis.
func (s Ship) segmentAt(c Coordinate) (uint8, bool) {
	if s.orientation == Horizontal {
		if c.Y == s.origin.Y && c.X >= s.origin.X && c.X < s.origin.X+s.size {
			return c.X - s.origin.X, true
		}
		return 0, false
	}
	if c.X == s.origin.X && c.Y >= s.origin.Y && c.Y < s.origin.Y+s.size {
		return c.Y - s.origin.Y, true
	}
	return 0, false
}

// RegisterHit reports whether the cell lies on this ship and clears the
// matching segment bit. Re-hitting a destroyed segment still reports
// true and changes nothing.
func (s *Ship) RegisterHit(c Coordinate) bool {
	segment, ok := s.segmentAt(c)
	if !ok {
		return false
	}
	s.state &^= 1 << segment
	return true
}

// IsSunk reports whether every segment has been hit.
func (s Ship) IsSunk() bool {
	return s.state == 0
}

// Overlaps reports whether the other ship touches this ship's footprint
// expanded by one cell in every direction. Ships may not sit next to
// each other, not even diagonally.
func (s Ship) Overlaps(other Ship) bool {
	minX, minY := int(s.origin.X)-1, int(s.origin.Y)-1
	maxX, maxY := int(s.origin.X)+1, int(s.origin.Y)+1
	if s.orientation == Horizontal {
		maxX = int(s.origin.X) + int(s.size)
	} else {
		maxY = int(s.origin.Y) + int(s.size)
	}

	for _, c := range other.OccupiedCells() {
		if int(c.X) >= minX && int(c.X) <= maxX && int(c.Y) >= minY && int(c.Y) <= maxY {
			return true
		}
	}
	return false
}
