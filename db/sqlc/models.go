package sqlc

import (
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

type MatchResult struct {
	ID            uuid.UUID
	MatchID       string
	PlayerName    string
	Winner        string
	Rounds        int32
	PlayerShots   int32
	ComputerShots int32
	StartedAt     time.Time
	FinishedAt    time.Time
	ServerInet    pqtype.Inet
	CreatedAt     time.Time
}

type ServerAnalytic struct {
	ServerInet          pqtype.Inet
	MatchesCreatedCount int64
}
