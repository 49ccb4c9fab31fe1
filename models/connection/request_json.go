package connection

type ReqNewMatch struct {
	PlayerName string `json:"player_name"`
}

// ReqPlacement positions one ship by its board label, e.g.
// {"ship": "carrier", "origin": "B4", "orientation": "h"}.
type ReqPlacement struct {
	Ship        string `json:"ship"`
	Origin      string `json:"origin"`
	Orientation string `json:"orientation"`
}

type ReqDeployFleet struct {
	MatchId    string         `json:"match_id"`
	Placements []ReqPlacement `json:"placements"`
}

type ReqAutoDeployFleet struct {
	MatchId string `json:"match_id"`
}

type ReqAttack struct {
	MatchId    string `json:"match_id"`
	Coordinate string `json:"coordinate"`
}

type ReqRematch struct {
	MatchId string `json:"match_id"`
}

type ReqQuitMatch struct {
	MatchId string `json:"match_id"`
}
