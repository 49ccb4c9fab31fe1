package battle

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	cerr "github.com/iceseyes/naval/internal/error"
)

const (
	maxMatchAge   = time.Minute * 30
	sweepInterval = time.Minute * 5
)

type MatchManager interface {
	CreateMatch(playerName string) *Match
	GetMatch(matchId string) (*Match, error)
	TerminateMatch(matchId string)
	ManageMatchTermination()
}

type NavalMatchManager struct {
	matches map[string]*Match
	mu      sync.RWMutex

	// newRng supplies the random source of each new match; replaced in
	// tests with seeded sources.
	newRng func() *rand.Rand
}

var _ MatchManager = (*NavalMatchManager)(nil)

func NewNavalMatchManager() *NavalMatchManager {
	return &NavalMatchManager{
		matches: make(map[string]*Match, 10),
		newRng: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

func (nmm *NavalMatchManager) CreateMatch(playerName string) *Match {
	matchId := uuid.NewString()[:6]
	match := NewMatch(matchId, playerName, nmm.newRng())

	nmm.mu.Lock()
	nmm.matches[matchId] = match
	nmm.mu.Unlock()

	return match
}

func (nmm *NavalMatchManager) GetMatch(matchId string) (*Match, error) {
	nmm.mu.RLock()
	match, prs := nmm.matches[matchId]
	nmm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotFound(matchId)
	}

	return match, nil
}

func (nmm *NavalMatchManager) TerminateMatch(matchId string) {
	nmm.mu.Lock()
	delete(nmm.matches, matchId)
	nmm.mu.Unlock()
}

// ManageMatchTermination sweeps out matches that have been around for
// longer than the maximum match time, whatever phase they are in. Runs
// as a long-lived goroutine.
func (nmm *NavalMatchManager) ManageMatchTermination() {
	for {
		time.Sleep(sweepInterval)

		nmm.mu.Lock()
		toDelete := make([]string, 0, 5)
		for matchId, match := range nmm.matches {
			if time.Since(match.CreatedAt()) > maxMatchAge {
				toDelete = append(toDelete, matchId)
			}
		}
		for _, matchId := range toDelete {
			delete(nmm.matches, matchId)
			log.Printf("match removed after timeout: %s", matchId)
		}
		nmm.mu.Unlock()
	}
}
