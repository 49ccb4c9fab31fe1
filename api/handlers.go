package api

import (
	"encoding/json"

	cerr "github.com/iceseyes/naval/internal/error"
	mb "github.com/iceseyes/naval/models/battle"
	mc "github.com/iceseyes/naval/models/connection"
)

// defaultPlayerName fills in for clients that start a match without
// naming the player.
const defaultPlayerName = "Player"

type RequestHandler interface {
	HandleNewMatch(matchManager mb.MatchManager) (*mb.Match, mc.Message[mc.RespNewMatch])
	HandleDeployFleet(matchManager mb.MatchManager) mc.Message[mc.RespDeployFleet]
	HandleAutoDeployFleet(matchManager mb.MatchManager) mc.Message[mc.RespDeployFleet]
	HandleAttack(matchManager mb.MatchManager) mc.Message[mc.RespAttack]
	HandleRematch(matchManager mb.MatchManager) mc.Message[mc.RespRematch]
	HandleQuitMatch(matchManager mb.MatchManager) mc.Message[mc.NoPayload]
}

// Request wraps one incoming payload. The request is then handled in
// line with the RequestHandler interface, one method per signal code.
type Request struct {
	payload []byte
}

// This tells the compiler that Request struct must be of type of RequestHandler
var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) *Request {
	var r Request
	if len(payload) != 0 {
		r.payload = payload[0]
	}
	return &r
}

func (r *Request) HandleNewMatch(matchManager mb.MatchManager) (*mb.Match, mc.Message[mc.RespNewMatch]) {
	resp := mc.NewMessage[mc.RespNewMatch](mc.CodeNewMatch)

	var req mc.Message[mc.ReqNewMatch]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid new match payload")
		return nil, resp
	}

	playerName := req.Payload.PlayerName
	if playerName == "" {
		playerName = defaultPlayerName
	}

	match := matchManager.CreateMatch(playerName)
	resp.AddPayload(mc.RespNewMatch{MatchId: match.Id(), PlayerName: playerName})
	return match, resp
}

func (r *Request) HandleDeployFleet(matchManager mb.MatchManager) mc.Message[mc.RespDeployFleet] {
	resp := mc.NewMessage[mc.RespDeployFleet](mc.CodeDeployFleet)

	var req mc.Message[mc.ReqDeployFleet]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid deploy payload")
		return resp
	}

	match, err := matchManager.GetMatch(req.Payload.MatchId)
	if err != nil {
		resp.AddError(err.Error(), "match not found")
		return resp
	}

	placements, err := parsePlacements(req.Payload.Placements)
	if err != nil {
		resp.AddError(err.Error(), "invalid placement")
		return resp
	}

	playerFirst, err := match.DeployFleet(placements)
	if err != nil {
		resp.AddError(err.Error(), "deployment rejected")
		return resp
	}

	resp.AddPayload(mc.RespDeployFleet{
		MatchId:      match.Id(),
		YouMoveFirst: playerFirst,
		Defence:      match.DefenceSnapshot(),
	})
	return resp
}

func (r *Request) HandleAutoDeployFleet(matchManager mb.MatchManager) mc.Message[mc.RespDeployFleet] {
	resp := mc.NewMessage[mc.RespDeployFleet](mc.CodeAutoDeployFleet)

	var req mc.Message[mc.ReqAutoDeployFleet]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid deploy payload")
		return resp
	}

	match, err := matchManager.GetMatch(req.Payload.MatchId)
	if err != nil {
		resp.AddError(err.Error(), "match not found")
		return resp
	}

	playerFirst, err := match.AutoDeployFleet()
	if err != nil {
		resp.AddError(err.Error(), "deployment rejected")
		return resp
	}

	resp.AddPayload(mc.RespDeployFleet{
		MatchId:      match.Id(),
		YouMoveFirst: playerFirst,
		Defence:      match.DefenceSnapshot(),
	})
	return resp
}

func (r *Request) HandleAttack(matchManager mb.MatchManager) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	var req mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid attack payload")
		return resp
	}

	match, err := matchManager.GetMatch(req.Payload.MatchId)
	if err != nil {
		resp.AddError(err.Error(), "match not found")
		return resp
	}

	move, err := mb.ParseCoordinate(req.Payload.Coordinate)
	if err != nil {
		resp.AddError(err.Error(), "invalid coordinate")
		return resp
	}

	report, err := match.Attack(move)
	if err != nil {
		resp.AddError(err.Error(), "attack rejected")
		return resp
	}

	payload := mc.RespAttack{
		MatchId:   match.Id(),
		MatchOver: report.Winner != nil,
		Tracking:  match.TrackingSnapshot(),
		Defence:   match.DefenceSnapshot(),
	}
	for _, attack := range report.Attacks {
		shot := newRespShot(attack)
		if attack.FromStrategy {
			payload.ComputerShot = shot
		} else {
			payload.PlayerShot = shot
		}
	}
	if payload.MatchOver {
		if winner, err := match.WinnerName(); err == nil {
			payload.Winner = winner
		}
	}

	resp.AddPayload(payload)
	return resp
}

func newRespShot(attack mb.AttackReport) *mc.RespShot {
	shot := &mc.RespShot{
		Cell:    attack.Move.Label(),
		Outcome: "miss",
	}
	if attack.Hit {
		shot.Outcome = "hit"
		shot.Ship = attack.Ship.String()
		shot.Sunk = attack.Sunk
	}
	return shot
}

func (r *Request) HandleRematch(matchManager mb.MatchManager) mc.Message[mc.RespRematch] {
	resp := mc.NewMessage[mc.RespRematch](mc.CodeRematch)

	var req mc.Message[mc.ReqRematch]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid rematch payload")
		return resp
	}

	match, err := matchManager.GetMatch(req.Payload.MatchId)
	if err != nil {
		resp.AddError(err.Error(), "match not found")
		return resp
	}

	if match.Phase() != mb.MatchPhaseOver {
		resp.AddError(cerr.ErrMatchNotOver(match.Id()).Error(), "cannot rematch a running match")
		return resp
	}

	match.Rematch()
	resp.AddPayload(mc.RespRematch{MatchId: match.Id()})
	return resp
}

func (r *Request) HandleQuitMatch(matchManager mb.MatchManager) mc.Message[mc.NoPayload] {
	resp := mc.NewMessage[mc.NoPayload](mc.CodeQuitMatch)

	var req mc.Message[mc.ReqQuitMatch]
	if err := json.Unmarshal(r.payload, &req); err != nil {
		resp.AddError(err.Error(), "invalid quit payload")
		return resp
	}

	// Quitting an unknown match is a no-op, not an error.
	matchManager.TerminateMatch(req.Payload.MatchId)
	return resp
}

func parsePlacements(reqPlacements []mc.ReqPlacement) ([]mb.Placement, error) {
	placements := make([]mb.Placement, 0, len(reqPlacements))
	for _, rp := range reqPlacements {
		kind, ok := mb.ParseShipKind(rp.Ship)
		if !ok {
			return nil, cerr.ErrUnknownShip(rp.Ship)
		}
		origin, err := mb.ParseCoordinate(rp.Origin)
		if err != nil {
			return nil, err
		}
		orientation, ok := mb.ParseOrientation(rp.Orientation)
		if !ok {
			return nil, cerr.ErrUnknownOrientation(rp.Orientation)
		}
		placements = append(placements, mb.Placement{
			Kind:        kind,
			Origin:      origin,
			Orientation: orientation,
		})
	}
	return placements, nil
}
