package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementMatchesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementMatchesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetMatchesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetMatchesCreatedCount(ctx, serverIpNet)
}
