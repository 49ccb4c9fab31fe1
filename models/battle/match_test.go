package battle

import (
	"math/rand"
	"strings"
	"testing"
)

func fixturePlacements() []Placement {
	return []Placement{
		{Kind: AircraftCarrier, Origin: Coordinate{X: 0, Y: 0}, Orientation: Horizontal},
		{Kind: Battleship, Origin: Coordinate{X: 0, Y: 2}, Orientation: Horizontal},
		{Kind: Cruiser, Origin: Coordinate{X: 0, Y: 4}, Orientation: Horizontal},
		{Kind: Submarine, Origin: Coordinate{X: 0, Y: 6}, Orientation: Horizontal},
		{Kind: Destroyer, Origin: Coordinate{X: 0, Y: 8}, Orientation: Horizontal},
	}
}

func TestNewMatch(t *testing.T) {
	match := NewMatch("abc123", "Alice", rand.New(rand.NewSource(1)))

	if want, have := "abc123", match.Id(); want != have {
		t.Errorf("id: want=%q, have=%q", want, have)
	}
	if want, have := "Alice", match.PlayerName(); want != have {
		t.Errorf("player name: want=%q, have=%q", want, have)
	}
	if want, have := MatchPhaseDeploying, match.Phase(); want != have {
		t.Errorf("phase: want=%d, have=%d", want, have)
	}
	if match.CreatedAt().IsZero() {
		t.Error("creation time should be set")
	}
	if !match.StartedAt().IsZero() || !match.FinishedAt().IsZero() {
		t.Error("start and finish times belong to later phases")
	}
	if match.Rounds() != 0 || match.PlayerShots() != 0 || match.ComputerShots() != 0 {
		t.Error("counters should start at zero")
	}
}

func TestMatchDeployFleet(t *testing.T) {
	match := NewMatch("abc123", "Alice", rand.New(rand.NewSource(1)))

	// Attacking before deployment is out of order.
	if _, err := match.Attack(Coordinate{X: 0, Y: 0}); err == nil || !strings.Contains(err.Error(), "battle phase") {
		t.Fatalf("expected a phase error, got: %v", err)
	}

	// A rejected fleet leaves the match open for another try.
	bad := fixturePlacements()
	bad[1].Origin = Coordinate{X: 0, Y: 1}
	if _, err := match.DeployFleet(bad); err == nil {
		t.Fatal("expected an error for touching ships")
	}
	if want, have := MatchPhaseDeploying, match.Phase(); want != have {
		t.Fatalf("phase after rejected fleet: want=%d, have=%d", want, have)
	}

	playerFirst, err := match.DeployFleet(fixturePlacements())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, have := MatchPhaseBattling, match.Phase(); want != have {
		t.Fatalf("phase after deployment: want=%d, have=%d", want, have)
	}
	if match.StartedAt().IsZero() {
		t.Error("start time should be set")
	}
	if want, have := playerFirst, match.Game().Human() == match.Game().players[0]; want != have {
		t.Errorf("turn order report: want=%v, have=%v", want, have)
	}

	// Deploying twice is out of order.
	if _, err := match.DeployFleet(fixturePlacements()); err == nil || !strings.Contains(err.Error(), "deployment phase") {
		t.Fatalf("expected a phase error, got: %v", err)
	}
}

func TestMatchAutoDeployFleet(t *testing.T) {
	match := NewMatch("abc123", "Alice", rand.New(rand.NewSource(2)))

	if _, err := match.AutoDeployFleet(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want, have := MatchPhaseBattling, match.Phase(); want != have {
		t.Fatalf("phase after deployment: want=%d, have=%d", want, have)
	}

	human := match.Game().Human()
	if human == nil {
		t.Fatal("the human player should exist")
	}
	ships := human.Fleet().Ships()
	for i, ship := range ships {
		for j := i + 1; j < len(ships); j++ {
			if ship.Overlaps(ships[j]) {
				t.Errorf("%s and %s overlap", ship.Kind(), ships[j].Kind())
			}
		}
	}
}

func TestMatchAttackCounters(t *testing.T) {
	match := NewMatch("abc123", "Alice", rand.New(rand.NewSource(3)))
	if _, err := match.DeployFleet(fixturePlacements()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := match.Attack(Coordinate{X: 9, Y: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want, have := 1, match.Rounds(); want != have {
		t.Errorf("rounds: want=%d, have=%d", want, have)
	}
	if want, have := len(report.Attacks), match.PlayerShots()+match.ComputerShots(); want != have {
		t.Errorf("shot counters should cover the round: want=%d, have=%d", want, have)
	}
	if want, have := 1, match.PlayerShots(); want != have {
		t.Errorf("player shots: want=%d, have=%d", want, have)
	}
	if want, have := 1, match.ComputerShots(); want != have {
		t.Errorf("computer shots: want=%d, have=%d", want, have)
	}
}

func TestMatchHumanWin(t *testing.T) {
	match := NewMatch("abc123", "Alice", rand.New(rand.NewSource(4)))
	if _, err := match.DeployFleet(fixturePlacements()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := match.WinnerName(); err == nil || !strings.Contains(err.Error(), "not over") {
		t.Fatalf("expected a phase error, got: %v", err)
	}

	// Leave the computer one segment from defeat, then take it out.
	// Whatever the turn order, the computer cannot win this round.
	computer := match.Game().Computer()
	last := computer.Fleet().Ship(Destroyer).OccupiedCells()[0]
	for _, ship := range computer.Fleet().Ships() {
		for _, c := range ship.OccupiedCells() {
			if c != last {
				computer.Fleet().ResolveHit(c)
			}
		}
	}

	report, err := match.Attack(last)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Winner == nil || !report.Winner.IsHuman() {
		t.Fatal("the human should have won")
	}
	if want, have := MatchPhaseOver, match.Phase(); want != have {
		t.Errorf("phase: want=%d, have=%d", want, have)
	}
	if match.FinishedAt().IsZero() {
		t.Error("finish time should be set")
	}

	name, err := match.WinnerName()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Alice"; name != want {
		t.Errorf("winner: want=%q, have=%q", want, name)
	}

	// The match is closed.
	if _, err := match.Attack(Coordinate{X: 0, Y: 0}); err == nil {
		t.Error("attacking a closed match should fail")
	}
}

func TestMatchComputerWin(t *testing.T) {
	match := NewMatch("abc123", "Alice", rand.New(rand.NewSource(5)))
	if _, err := match.DeployFleet(fixturePlacements()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Leave the player one segment from defeat. The player then wastes
	// every round on the same cell while the computer sweeps the board.
	human := match.Game().Human()
	for _, ship := range human.Fleet().Ships() {
		for _, c := range ship.OccupiedCells() {
			if c != (Coordinate{X: 1, Y: 8}) {
				human.Fleet().ResolveHit(c)
			}
		}
	}

	for i := 0; i < GridSize*GridSize && match.Phase() != MatchPhaseOver; i++ {
		if _, err := match.Attack(Coordinate{X: 9, Y: 9}); err != nil {
			t.Fatalf("round %d: unexpected error: %v", i, err)
		}
	}

	if want, have := MatchPhaseOver, match.Phase(); want != have {
		t.Fatalf("phase: want=%d, have=%d", want, have)
	}
	name, err := match.WinnerName()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != ComputerName {
		t.Errorf("winner: want=%q, have=%q", ComputerName, name)
	}
}

func TestMatchRematch(t *testing.T) {
	match := NewMatch("abc123", "Alice", rand.New(rand.NewSource(6)))
	if _, err := match.DeployFleet(fixturePlacements()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := match.Attack(Coordinate{X: 3, Y: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	oldGame := match.Game()

	match.Rematch()

	if want, have := MatchPhaseDeploying, match.Phase(); want != have {
		t.Errorf("phase: want=%d, have=%d", want, have)
	}
	if match.Rounds() != 0 || match.PlayerShots() != 0 || match.ComputerShots() != 0 {
		t.Error("counters should reset")
	}
	if !match.StartedAt().IsZero() || !match.FinishedAt().IsZero() {
		t.Error("start and finish times should reset")
	}
	if match.Game() == oldGame {
		t.Error("a rematch should start a fresh game")
	}
	if want, have := "abc123", match.Id(); want != have {
		t.Errorf("id should survive the rematch: want=%q, have=%q", want, have)
	}

	if _, err := match.DeployFleet(fixturePlacements()); err != nil {
		t.Fatalf("deploying after a rematch: %v", err)
	}
	if want, have := MatchPhaseBattling, match.Phase(); want != have {
		t.Errorf("phase: want=%d, have=%d", want, have)
	}
}

func TestMatchSnapshots(t *testing.T) {
	match := NewMatch("abc123", "Alice", rand.New(rand.NewSource(7)))

	if match.DefenceSnapshot() != "" || match.TrackingSnapshot() != "" {
		t.Fatal("no boards to render before deployment")
	}

	if _, err := match.DeployFleet(fixturePlacements()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defence := match.DefenceSnapshot()
	if want, have := 17, strings.Count(defence, "#"); want != have {
		t.Errorf("fresh defence board should show the whole fleet: want=%d, have=%d", want, have)
	}
	if strings.Count(defence, "X") != 0 || strings.Count(defence, "O") != 0 {
		t.Error("no shots on a fresh board")
	}

	if _, err := match.Attack(Coordinate{X: 9, Y: 9}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One computer shot: a hit turns a segment into an X, a miss adds
	// an O.
	defence = match.DefenceSnapshot()
	hits, misses := strings.Count(defence, "X"), strings.Count(defence, "O")
	if hits+misses != 1 {
		t.Errorf("defence board should show one computer shot: hits=%d, misses=%d", hits, misses)
	}
	if want, have := 17, strings.Count(defence, "#")+hits; want != have {
		t.Errorf("fleet segments should still add up: want=%d, have=%d", want, have)
	}

	// One player shot on the tracking board.
	tracking := match.TrackingSnapshot()
	if strings.Count(tracking, "X")+strings.Count(tracking, "O") != 1 {
		t.Errorf("tracking board should show one player shot:\n%s", tracking)
	}
	if strings.Count(tracking, "#") != 0 {
		t.Error("the tracking board never shows ships")
	}
}
