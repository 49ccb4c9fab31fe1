package sqlc

import (
	"context"
	"time"

	"github.com/sqlc-dev/pqtype"
)

const getMatchResultsSummary = `-- name: GetMatchResultsSummary :one
SELECT COUNT(*) AS total_matches,
       COUNT(*) FILTER (WHERE winner = player_name) AS player_wins,
       COALESCE(AVG(rounds), 0)::float8 AS avg_rounds
FROM match_results
`

type GetMatchResultsSummaryRow struct {
	TotalMatches int64
	PlayerWins   int64
	AvgRounds    float64
}

func (q *Queries) GetMatchResultsSummary(ctx context.Context) (GetMatchResultsSummaryRow, error) {
	row := q.db.QueryRowContext(ctx, getMatchResultsSummary)
	var i GetMatchResultsSummaryRow
	err := row.Scan(&i.TotalMatches, &i.PlayerWins, &i.AvgRounds)
	return i, err
}

const insertMatchResult = `-- name: InsertMatchResult :exec
INSERT INTO match_results (
    match_id, player_name, winner, rounds, player_shots, computer_shots, started_at, finished_at, server_inet
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9
)
`

type InsertMatchResultParams struct {
	MatchID       string
	PlayerName    string
	Winner        string
	Rounds        int32
	PlayerShots   int32
	ComputerShots int32
	StartedAt     time.Time
	FinishedAt    time.Time
	ServerInet    pqtype.Inet
}

func (q *Queries) InsertMatchResult(ctx context.Context, arg InsertMatchResultParams) error {
	_, err := q.db.ExecContext(ctx, insertMatchResult,
		arg.MatchID,
		arg.PlayerName,
		arg.Winner,
		arg.Rounds,
		arg.PlayerShots,
		arg.ComputerShots,
		arg.StartedAt,
		arg.FinishedAt,
		arg.ServerInet,
	)
	return err
}

const listRecentMatchResults = `-- name: ListRecentMatchResults :many
SELECT id, match_id, player_name, winner, rounds, player_shots, computer_shots, started_at, finished_at, server_inet, created_at
FROM match_results
ORDER BY finished_at DESC
LIMIT $1
`

func (q *Queries) ListRecentMatchResults(ctx context.Context, limit int32) ([]MatchResult, error) {
	rows, err := q.db.QueryContext(ctx, listRecentMatchResults, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MatchResult
	for rows.Next() {
		var i MatchResult
		if err := rows.Scan(
			&i.ID,
			&i.MatchID,
			&i.PlayerName,
			&i.Winner,
			&i.Rounds,
			&i.PlayerShots,
			&i.ComputerShots,
			&i.StartedAt,
			&i.FinishedAt,
			&i.ServerInet,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
