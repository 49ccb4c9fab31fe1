package battle

import (
	"errors"
	"fmt"
	"math/rand"
)

// FleetSize is the fixed number of ships in a fleet, one per kind.
const FleetSize = len(ShipKinds)

var ErrShipsOverlap = errors.New("ships overlap")

// Placement is one requested ship position, the input of the
// validating fleet constructor.
type Placement struct {
	Kind        ShipKind
	Origin      Coordinate
	Orientation Orientation
}

// ShipBuilder supplies a deployed ship for a kind. Builders retry
// internally until the ship fits the board; the fleet builder only
// re-invokes them on overlap with already accepted ships.
type ShipBuilder func(ShipKind) (Ship, error)

// Fleet is the fixed set of five ships, one per kind, in canonical
// order. Composition never changes after construction; the ships
// themselves mutate in place as they take damage.
type Fleet struct {
	ships [FleetSize]Ship
}

// BuildFleet assembles a fleet kind by kind in canonical order,
// re-invoking the builder for a kind until its ship overlaps none of
// the ships accepted before it.
func BuildFleet(build ShipBuilder) (*Fleet, error) {
	var fleet Fleet

	for i, kind := range ShipKinds {
		accepted := false
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			ship, err := build(kind)
			if err != nil {
				return nil, err
			}
			if fleet.overlapsAny(ship, i) {
				continue
			}
			fleet.ships[i] = ship
			accepted = true
			break
		}
		if !accepted {
			return nil, fmt.Errorf("no overlap-free placement for %s after %d attempts", kind, maxPlacementAttempts)
		}
	}

	return &fleet, nil
}

// RandomFleet builds a fleet with random placements from rng.
func RandomFleet(rng *rand.Rand) (*Fleet, error) {
	return BuildFleet(func(kind ShipKind) (Ship, error) {
		return RandomShip(kind, rng)
	})
}

// NewFleet validates five explicit placements into a fleet, all or
// nothing: every kind present exactly once, every ship on the board,
// no pair overlapping.
func NewFleet(placements []Placement) (*Fleet, error) {
	if len(placements) != FleetSize {
		return nil, fmt.Errorf("a fleet needs exactly %d ships, got %d", FleetSize, len(placements))
	}

	var (
		fleet Fleet
		seen  [FleetSize]bool
	)
	for _, p := range placements {
		if !p.Kind.IsValid() {
			return nil, fmt.Errorf("unknown ship kind %d", p.Kind)
		}
		if seen[p.Kind] {
			return nil, fmt.Errorf("duplicate placement for %s", p.Kind)
		}
		ship, err := NewShip(p.Kind, p.Origin, p.Orientation)
		if err != nil {
			return nil, err
		}
		fleet.ships[p.Kind] = ship
		seen[p.Kind] = true
	}

	for i := 0; i < FleetSize; i++ {
		for j := i + 1; j < FleetSize; j++ {
			if fleet.ships[i].Overlaps(fleet.ships[j]) {
				return nil, fmt.Errorf("%w: %s and %s", ErrShipsOverlap, fleet.ships[i].Kind(), fleet.ships[j].Kind())
			}
		}
	}

	return &fleet, nil
}

func (f *Fleet) overlapsAny(ship Ship, accepted int) bool {
	for j := 0; j < accepted; j++ {
		if f.ships[j].Overlaps(ship) {
			return true
		}
	}
	return false
}

// ResolveHit finds the first ship in canonical order occupying the
// cell, registers the hit on it and returns its kind.
func (f *Fleet) ResolveHit(c Coordinate) (ShipKind, bool) {
	for i := range f.ships {
		if f.ships[i].RegisterHit(c) {
			return f.ships[i].Kind(), true
		}
	}
	return 0, false
}

// IsSunk reports whether every ship of the fleet is sunk.
func (f *Fleet) IsSunk() bool {
	for i := range f.ships {
		if !f.ships[i].IsSunk() {
			return false
		}
	}
	return true
}

// Ship returns a snapshot of the fleet member of the given kind.
func (f *Fleet) Ship(kind ShipKind) Ship {
	return f.ships[kind]
}

// Ships returns a snapshot of all five ships in canonical order.
func (f *Fleet) Ships() []Ship {
	ships := make([]Ship, FleetSize)
	copy(ships, f.ships[:])
	return ships
}
