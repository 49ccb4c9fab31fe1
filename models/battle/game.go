package battle

import (
	"errors"
	"math/rand"
	"time"
)

// ComputerName is the fixed name of the generated computer player.
const ComputerName = "Computer"

var ErrGameNotReady = errors.New("game is not ready or already over")

// Game drives one match between two players. It fixes the turn order
// once at setup with a coin flip and runs one full round per PlayTurn
// call, checking for defeat after every single attack.
type Game struct {
	rng              *rand.Rand
	players          []*Player
	lastComputerMove *Coordinate
}

// NewGame creates an empty game. A nil rng falls back to a time-seeded
// source; tests pass a seeded one for determinism.
func NewGame(rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Game{rng: rng}
}

// SetHumanPlayer installs the human side. Any previous players are
// dropped, a companion computer player with a freshly randomized fleet
// and the hunt-and-target strategy is created, and the turn order is
// fixed for the whole match by an unbiased coin flip.
func (g *Game) SetHumanPlayer(human *Player) error {
	fleet, err := RandomFleet(g.rng)
	if err != nil {
		return err
	}
	computer := NewPlayer(ComputerName, fleet)
	computer.SetStrategy(NewHuntTargetStrategy(g.rng))

	g.players = g.players[:0]
	if g.rng.Intn(2) == 0 {
		g.players = append(g.players, human, computer)
	} else {
		g.players = append(g.players, computer, human)
	}
	g.lastComputerMove = nil
	return nil
}

// IsReady reports whether the game can play a turn: two players, none
// defeated yet.
func (g *Game) IsReady() bool {
	return len(g.players) == 2 && !g.players[0].HasLost() && !g.players[1].HasLost()
}

// IsOver reports whether either player's fleet is fully sunk.
func (g *Game) IsOver() bool {
	return len(g.players) == 2 && (g.players[0].HasLost() || g.players[1].HasLost())
}

// Human returns the human player, nil before setup.
func (g *Game) Human() *Player {
	for _, p := range g.players {
		if p.IsHuman() {
			return p
		}
	}
	return nil
}

// Computer returns the computer player, nil before setup.
func (g *Game) Computer() *Player {
	for _, p := range g.players {
		if !p.IsHuman() {
			return p
		}
	}
	return nil
}

// LastComputerMove is the most recent strategy-chosen coordinate of
// the round played last, for display.
func (g *Game) LastComputerMove() (Coordinate, bool) {
	if g.lastComputerMove == nil {
		return Coordinate{}, false
	}
	return *g.lastComputerMove, true
}

// AttackReport is the outcome of one attack within a round.
type AttackReport struct {
	Attacker     string
	Move         Coordinate
	FromStrategy bool
	Hit          bool
	Ship         ShipKind
	Sunk         bool
	DefenderLost bool
}

// RoundReport is the outcome of one full round: the attacks in play
// order and the winner, nil while the match goes on.
type RoundReport struct {
	Attacks []AttackReport
	Winner  *Player
}

// PlayTurn runs one round in the fixed turn order. Strategy players
// draw their move from their strategy; the human plays the supplied
// coordinate. After each attack the defender is checked for defeat;
// a defeat ends the round on the spot and the remaining attack is
// skipped. A strategy move is remembered as the last computer move,
// and a strategy hit is reported back to the strategy before the turn
// completes.
func (g *Game) PlayTurn(humanMove Coordinate) (*RoundReport, error) {
	if !g.IsReady() {
		return nil, ErrGameNotReady
	}

	g.lastComputerMove = nil
	report := &RoundReport{Attacks: make([]AttackReport, 0, len(g.players))}

	for i, attacker := range g.players {
		defender := g.players[1-i]

		move, fromStrategy := attacker.NextMove()
		if !fromStrategy {
			move = humanMove
		}

		kind, hit := attacker.Attack(defender, move)
		if fromStrategy {
			m := move
			g.lastComputerMove = &m
			if hit {
				attacker.NotifyHit(kind)
			}
		}

		attack := AttackReport{
			Attacker:     attacker.Name(),
			Move:         move,
			FromStrategy: fromStrategy,
			Hit:          hit,
		}
		if hit {
			attack.Ship = kind
			attack.Sunk = defender.Fleet().Ship(kind).IsSunk()
		}
		if defender.HasLost() {
			attack.DefenderLost = true
			report.Attacks = append(report.Attacks, attack)
			report.Winner = attacker
			return report, nil
		}
		report.Attacks = append(report.Attacks, attack)
	}

	return report, nil
}
