package sqlc

import "context"

type MatchResultManager struct {
	queries Querier
}

func NewMatchResultManager(queries Querier) *MatchResultManager {
	return &MatchResultManager{queries: queries}
}

func (m *MatchResultManager) InsertMatchResult(ctx context.Context, arg InsertMatchResultParams) error {
	return m.queries.InsertMatchResult(ctx, arg)
}

func (m *MatchResultManager) ListRecentMatchResults(ctx context.Context, limit int32) ([]MatchResult, error) {
	return m.queries.ListRecentMatchResults(ctx, limit)
}

func (m *MatchResultManager) GetMatchResultsSummary(ctx context.Context) (GetMatchResultsSummaryRow, error) {
	return m.queries.GetMatchResultsSummary(ctx)
}
