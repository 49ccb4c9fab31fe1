package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

const getMatchesCreatedCount = `-- name: GetMatchesCreatedCount :one
SELECT matches_created_count
FROM server_analytics
WHERE server_inet = $1
`

func (q *Queries) GetMatchesCreatedCount(ctx context.Context, serverInet pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getMatchesCreatedCount, serverInet)
	var matches_created_count int64
	err := row.Scan(&matches_created_count)
	return matches_created_count, err
}

const incrementMatchesCreatedCount = `-- name: IncrementMatchesCreatedCount :exec
INSERT INTO server_analytics (server_inet, matches_created_count)
VALUES ($1, 1)
ON CONFLICT (server_inet)
DO UPDATE SET matches_created_count = server_analytics.matches_created_count + 1
`

func (q *Queries) IncrementMatchesCreatedCount(ctx context.Context, serverInet pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementMatchesCreatedCount, serverInet)
	return err
}
