package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type Querier interface {
	GetMatchResultsSummary(ctx context.Context) (GetMatchResultsSummaryRow, error)
	GetMatchesCreatedCount(ctx context.Context, serverInet pqtype.Inet) (int64, error)
	IncrementMatchesCreatedCount(ctx context.Context, serverInet pqtype.Inet) error
	InsertMatchResult(ctx context.Context, arg InsertMatchResultParams) error
	ListRecentMatchResults(ctx context.Context, limit int32) ([]MatchResult, error)
}

var _ Querier = (*Queries)(nil)
