package connection

import "time"

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespNewMatch struct {
	MatchId    string `json:"match_id"`
	PlayerName string `json:"player_name"`
}

type RespDeployFleet struct {
	MatchId      string `json:"match_id"`
	YouMoveFirst bool   `json:"you_move_first"`
	Defence      string `json:"defence"`
}

// RespShot is one resolved shot of a round, the player's or the
// computer's.
type RespShot struct {
	Cell    string `json:"cell"`
	Outcome string `json:"outcome"`
	Ship    string `json:"ship,omitempty"`
	Sunk    bool   `json:"sunk,omitempty"`
}

type RespAttack struct {
	MatchId      string    `json:"match_id"`
	PlayerShot   *RespShot `json:"player_shot,omitempty"`
	ComputerShot *RespShot `json:"computer_shot,omitempty"`
	Winner       string    `json:"winner,omitempty"`
	MatchOver    bool      `json:"match_over"`
	Tracking     string    `json:"tracking"`
	Defence      string    `json:"defence"`
}

type RespRematch struct {
	MatchId string `json:"match_id"`
}

// RespMatchResult is one row of the match history endpoint.
type RespMatchResult struct {
	MatchId       string    `json:"match_id"`
	PlayerName    string    `json:"player_name"`
	Winner        string    `json:"winner"`
	Rounds        int32     `json:"rounds"`
	PlayerShots   int32     `json:"player_shots"`
	ComputerShots int32     `json:"computer_shots"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

type RespResultsSummary struct {
	TotalMatches int64   `json:"total_matches"`
	PlayerWins   int64   `json:"player_wins"`
	AvgRounds    float64 `json:"avg_rounds"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
