package error

import "fmt"

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session exists but is nil, id: %s", sessionId)
}

func ErrSessionHasNoMatch(sessionId string) error {
	return fmt.Errorf("session has no match attached, session id: %s", sessionId)
}

func ErrMatchNotFound(matchId string) error {
	return fmt.Errorf("match with this id does not exist, id: %s", matchId)
}

func ErrMatchNotDeploying(matchId string) error {
	return fmt.Errorf("match is not in the deployment phase, id: %s", matchId)
}

func ErrMatchNotBattling(matchId string) error {
	return fmt.Errorf("match is not in the battle phase, id: %s", matchId)
}

func ErrMatchNotOver(matchId string) error {
	return fmt.Errorf("match is not over yet, id: %s", matchId)
}

func ErrUnknownShip(ship string) error {
	return fmt.Errorf("unknown ship kind: %q", ship)
}

func ErrUnknownOrientation(orientation string) error {
	return fmt.Errorf("unknown orientation: %q", orientation)
}
