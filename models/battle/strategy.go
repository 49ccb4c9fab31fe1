package battle

import "math/rand"

// Strategy decides the next attack for a player. Implementations may
// keep per-match memory; a strategy never outlives its match.
type Strategy interface {
	// NextMove proposes the next attack coordinate. It reports false
	// when the player has no automated policy (a human).
	NextMove() (Coordinate, bool)

	// NotifyHit tells the strategy that its latest move hit a ship of
	// the given kind.
	NotifyHit(kind ShipKind)
}

// NoStrategy is the human placeholder: no moves, no memory.
type NoStrategy struct{}

func (NoStrategy) NextMove() (Coordinate, bool) { return Coordinate{}, false }
func (NoStrategy) NotifyHit(ShipKind)           {}

// RandomStrategy fires blind. It keeps no history and may well suggest
// a cell it already tried; the board simply records no new effect.
type RandomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (rs *RandomStrategy) NextMove() (Coordinate, bool) {
	return RandomCoordinate(rs.rng), true
}

func (rs *RandomStrategy) NotifyHit(ShipKind) {}

// maxRandomProbes bounds the random search for an untried cell before
// falling back to a board scan.
const maxRandomProbes = 1_000

// HuntTargetStrategy fires randomly until it lands a hit, then probes
// outward from that hit in all four axis directions, up to the hit
// ship's maximum remaining length. It never works out the ship's
// orientation; the probe pattern converges on it by itself.
type HuntTargetStrategy struct {
	rng        *rand.Rand
	moves      []Coordinate
	candidates []Coordinate
}

func NewHuntTargetStrategy(rng *rand.Rand) *HuntTargetStrategy {
	return &HuntTargetStrategy{rng: rng}
}

// NextMove pops the most recent untried candidate, or falls back to a
// random untried cell when the candidate stack runs dry. The chosen
// cell joins the move history.
func (hs *HuntTargetStrategy) NextMove() (Coordinate, bool) {
	next, ok := hs.popCandidate()
	if !ok {
		next = hs.randomUntried()
	}
	hs.moves = append(hs.moves, next)
	return next, true
}

// NotifyHit radiates candidates from the last move: for each distance
// up to the hit ship's size minus one, the cells right, left, below and
// above, skipping anything off the board or already tried. Candidates
// pop in reverse push order.
func (hs *HuntTargetStrategy) NotifyHit(kind ShipKind) {
	if len(hs.moves) == 0 {
		return
	}
	last := hs.moves[len(hs.moves)-1]

	for d := uint8(1); d < kind.Size(); d++ {
		if int(last.X)+int(d) <= maxCoordinate {
			hs.pushCandidate(Coordinate{X: last.X + d, Y: last.Y})
		}
		if last.X >= d {
			hs.pushCandidate(Coordinate{X: last.X - d, Y: last.Y})
		}
		if int(last.Y)+int(d) <= maxCoordinate {
			hs.pushCandidate(Coordinate{X: last.X, Y: last.Y + d})
		}
		if last.Y >= d {
			hs.pushCandidate(Coordinate{X: last.X, Y: last.Y - d})
		}
	}
}

// popCandidate discards tried candidates until an untried one surfaces.
func (hs *HuntTargetStrategy) popCandidate() (Coordinate, bool) {
	for n := len(hs.candidates); n > 0; n = len(hs.candidates) {
		c := hs.candidates[n-1]
		hs.candidates = hs.candidates[:n-1]
		if !hs.tried(c) {
			return c, true
		}
	}
	return Coordinate{}, false
}

// randomUntried draws random cells until one is new, then falls back to
// scanning the board. Once every cell has been tried any cell will do;
// a match never gets that far with a fleet still afloat.
func (hs *HuntTargetStrategy) randomUntried() Coordinate {
	for i := 0; i < maxRandomProbes; i++ {
		c := RandomCoordinate(hs.rng)
		if !hs.tried(c) {
			return c
		}
	}
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := Coordinate{X: uint8(x), Y: uint8(y)}
			if !hs.tried(c) {
				return c
			}
		}
	}
	return RandomCoordinate(hs.rng)
}

func (hs *HuntTargetStrategy) pushCandidate(c Coordinate) {
	if hs.tried(c) {
		return
	}
	hs.candidates = append(hs.candidates, c)
}

func (hs *HuntTargetStrategy) tried(c Coordinate) bool {
	for _, m := range hs.moves {
		if m == c {
			return true
		}
	}
	return false
}

var (
	_ Strategy = NoStrategy{}
	_ Strategy = (*RandomStrategy)(nil)
	_ Strategy = (*HuntTargetStrategy)(nil)
)
