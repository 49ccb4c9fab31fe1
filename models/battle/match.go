package battle

import (
	"math/rand"
	"time"

	cerr "github.com/iceseyes/naval/internal/error"
)

const (
	MatchPhaseDeploying uint8 = iota
	MatchPhaseBattling
	MatchPhaseOver
)

// Match wraps one engine game for one connected player: the deployment
// and battle phases, per-match counters and the timestamps the result
// row is built from.
type Match struct {
	id         string
	playerName string
	game       *Game
	rng        *rand.Rand
	phase      uint8

	createdAt  time.Time
	startedAt  time.Time
	finishedAt time.Time

	rounds        int
	playerShots   int
	computerShots int
}

func NewMatch(id, playerName string, rng *rand.Rand) *Match {
	return &Match{
		id:         id,
		playerName: playerName,
		game:       NewGame(rng),
		rng:        rng,
		phase:      MatchPhaseDeploying,
		createdAt:  time.Now(),
	}
}

func (m *Match) Id() string         { return m.id }
func (m *Match) PlayerName() string { return m.playerName }
func (m *Match) Phase() uint8       { return m.phase }
func (m *Match) Game() *Game        { return m.game }

func (m *Match) CreatedAt() time.Time  { return m.createdAt }
func (m *Match) StartedAt() time.Time  { return m.startedAt }
func (m *Match) FinishedAt() time.Time { return m.finishedAt }

func (m *Match) Rounds() int        { return m.rounds }
func (m *Match) PlayerShots() int   { return m.playerShots }
func (m *Match) ComputerShots() int { return m.computerShots }

// DeployFleet validates the player's placements and starts the battle.
// Reports whether the player moves first in the fixed turn order.
func (m *Match) DeployFleet(placements []Placement) (bool, error) {
	if m.phase != MatchPhaseDeploying {
		return false, cerr.ErrMatchNotDeploying(m.id)
	}
	fleet, err := NewFleet(placements)
	if err != nil {
		return false, err
	}
	return m.deploy(fleet)
}

// AutoDeployFleet deploys a randomized fleet for the player and starts
// the battle.
func (m *Match) AutoDeployFleet() (bool, error) {
	if m.phase != MatchPhaseDeploying {
		return false, cerr.ErrMatchNotDeploying(m.id)
	}
	fleet, err := RandomFleet(m.rng)
	if err != nil {
		return false, err
	}
	return m.deploy(fleet)
}

func (m *Match) deploy(fleet *Fleet) (bool, error) {
	player := NewPlayer(m.playerName, fleet)
	if err := m.game.SetHumanPlayer(player); err != nil {
		return false, err
	}
	m.phase = MatchPhaseBattling
	m.startedAt = time.Now()
	return m.game.players[0].IsHuman(), nil
}

// Attack plays one full round with the given human move and keeps the
// match counters in step. A round that produces a winner closes the
// match.
func (m *Match) Attack(c Coordinate) (*RoundReport, error) {
	if m.phase != MatchPhaseBattling {
		return nil, cerr.ErrMatchNotBattling(m.id)
	}

	report, err := m.game.PlayTurn(c)
	if err != nil {
		return nil, err
	}

	m.rounds++
	for _, attack := range report.Attacks {
		if attack.FromStrategy {
			m.computerShots++
		} else {
			m.playerShots++
		}
	}
	if report.Winner != nil {
		m.phase = MatchPhaseOver
		m.finishedAt = time.Now()
	}
	return report, nil
}

// WinnerName names the winner of a closed match.
func (m *Match) WinnerName() (string, error) {
	if m.phase != MatchPhaseOver {
		return "", cerr.ErrMatchNotOver(m.id)
	}
	if human := m.game.Human(); human != nil && !human.HasLost() {
		return m.playerName, nil
	}
	return ComputerName, nil
}

// Rematch resets the match to a fresh deployment phase. The id, the
// player name and the random source carry over; everything else starts
// from scratch.
func (m *Match) Rematch() {
	m.game = NewGame(m.rng)
	m.phase = MatchPhaseDeploying
	m.rounds, m.playerShots, m.computerShots = 0, 0, 0
	m.startedAt, m.finishedAt = time.Time{}, time.Time{}
}

// DefenceSnapshot renders the player's own board: the fleet stamped on
// a fresh grid with the computer's hits and misses laid over it.
func (m *Match) DefenceSnapshot() string {
	human, computer := m.game.Human(), m.game.Computer()
	if human == nil || computer == nil {
		return ""
	}

	var g Grid
	g.StampFleet(human.Fleet().Ships())
	shots := computer.Shots()
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := Coordinate{X: uint8(x), Y: uint8(y)}
			if status := shots.At(c); status == CellHit || status == CellMiss {
				g.Mark(c, status)
			}
		}
	}
	return g.String()
}

// TrackingSnapshot renders the player's shot record of the opponent's
// waters.
func (m *Match) TrackingSnapshot() string {
	human := m.game.Human()
	if human == nil {
		return ""
	}
	shots := human.Shots()
	return shots.String()
}
