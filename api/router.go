package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/iceseyes/naval/db/sqlc"
	mc "github.com/iceseyes/naval/models/connection"
)

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100
)

// NewRouter mounts the websocket endpoint next to the read-only match
// history endpoints.
func NewRouter(rp RequestProcessor, q sqlc.Querier) *mux.Router {
	rh := ResultsHandler{q: q}

	r := mux.NewRouter()
	r.Handle("/battle", rp).Methods("GET")
	r.HandleFunc("/health", handleHealth).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/results", rh.handleListRecent).Methods("GET")
	apiRouter.HandleFunc("/results/summary", rh.handleSummary).Methods("GET")

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type ResultsHandler struct {
	q sqlc.Querier
}

func (rh ResultsHandler) handleListRecent(w http.ResponseWriter, r *http.Request) {
	limit := int32(defaultResultsLimit)
	if limitQuery := r.URL.Query().Get("limit"); limitQuery != "" {
		parsed, err := strconv.Atoi(limitQuery)
		if err != nil || parsed < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		if parsed > maxResultsLimit {
			parsed = maxResultsLimit
		}
		limit = int32(parsed)
	}

	ctx, cancel := context.WithTimeout(r.Context(), sqlc.QuerierCtxTimeout)
	defer cancel()

	rows, err := rh.q.ListRecentMatchResults(ctx, limit)
	if err != nil {
		log.Println(err)
		http.Error(w, "failed to fetch match results", http.StatusInternalServerError)
		return
	}

	results := make([]mc.RespMatchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, mc.RespMatchResult{
			MatchId:       row.MatchID,
			PlayerName:    row.PlayerName,
			Winner:        row.Winner,
			Rounds:        row.Rounds,
			PlayerShots:   row.PlayerShots,
			ComputerShots: row.ComputerShots,
			StartedAt:     row.StartedAt,
			FinishedAt:    row.FinishedAt,
		})
	}

	writeJson(w, results)
}

func (rh ResultsHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), sqlc.QuerierCtxTimeout)
	defer cancel()

	summary, err := rh.q.GetMatchResultsSummary(ctx)
	if err != nil {
		log.Println(err)
		http.Error(w, "failed to fetch results summary", http.StatusInternalServerError)
		return
	}

	writeJson(w, mc.RespResultsSummary{
		TotalMatches: summary.TotalMatches,
		PlayerWins:   summary.PlayerWins,
		AvgRounds:    summary.AvgRounds,
	})
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println(err)
	}
}
