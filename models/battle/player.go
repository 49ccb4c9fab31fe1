package battle

// Player is one side of a match: a name, the fleet it defends and a
// grid recording its own shots at the opponent. The shot grid never
// holds the player's own board layout.
type Player struct {
	name     string
	fleet    *Fleet
	shots    Grid
	strategy Strategy
	human    bool
}

// NewPlayer creates a human player. Attaching a strategy later turns
// it into a computer player.
func NewPlayer(name string, fleet *Fleet) *Player {
	return &Player{
		name:     name,
		fleet:    fleet,
		strategy: NoStrategy{},
		human:    true,
	}
}

// SetStrategy hands the player over to an automated policy.
func (p *Player) SetStrategy(s Strategy) {
	p.strategy = s
	p.human = false
}

// Attack resolves one shot against the opponent's fleet and records
// the outcome on this player's own shot grid. The opponent's grid is
// never touched. Returns the kind of ship hit, if any.
func (p *Player) Attack(opponent *Player, c Coordinate) (ShipKind, bool) {
	kind, hit := opponent.fleet.ResolveHit(c)
	if hit {
		p.shots.Mark(c, CellHit)
	} else {
		p.shots.Mark(c, CellMiss)
	}
	return kind, hit
}

// HasLost reports whether this player's own fleet is fully sunk.
func (p *Player) HasLost() bool {
	return p.fleet.IsSunk()
}

// NextMove asks the player's strategy for a move; false for humans.
func (p *Player) NextMove() (Coordinate, bool) {
	return p.strategy.NextMove()
}

// NotifyHit forwards a confirmed hit to the player's strategy.
func (p *Player) NotifyHit(kind ShipKind) {
	p.strategy.NotifyHit(kind)
}

func (p *Player) Name() string  { return p.name }
func (p *Player) IsHuman() bool { return p.human }
func (p *Player) Fleet() *Fleet { return p.fleet }

// Shots returns a snapshot of this player's shot-record grid.
func (p *Player) Shots() Grid {
	return p.shots
}
