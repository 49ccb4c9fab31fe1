package connection

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/iceseyes/naval/internal/error"
	mb "github.com/iceseyes/naval/models/battle"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically()

	FindSession(sessionId string) (*Session, error)
	TerminateSession(session *Session)
	ReconnectSession(session *Session, conn *websocket.Conn)
	HandleAbnormalClosureSession(session *Session) error
	GetSessionId(session *Session) string

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	FetchCodeFromMsg(payload []byte) (uint8, error)

	GetSessionMatch(session *Session) *mb.Match
	SetSessionMatch(session *Session, match *mb.Match)
}

type NavalSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

func NewNavalSessionManager() *NavalSessionManager {
	initMapSize := 10

	return &NavalSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

var _ SessionManager = (*NavalSessionManager)(nil)

func (nsm *NavalSessionManager) GetSessionMatch(session *Session) *mb.Match {
	return session.match
}

func (nsm *NavalSessionManager) SetSessionMatch(session *Session, match *mb.Match) {
	session.match = match
}

func (nsm *NavalSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	nsm.mu.Lock()
	nsm.sessions[sessionId] = session
	nsm.mu.Unlock()

	return session
}

func (nsm *NavalSessionManager) FindSession(sessionId string) (*Session, error) {
	nsm.mu.RLock()
	defer nsm.mu.RUnlock()

	session, prs := nsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (nsm *NavalSessionManager) TerminateSession(session *Session) {
	nsm.mu.Lock()
	delete(nsm.sessions, session.id)
	nsm.mu.Unlock()
}

func (nsm *NavalSessionManager) ReconnectSession(session *Session, conn *websocket.Conn) {
	session.reconnectionAfterAbnormalClosure(conn)
}

// To ensure that there are no dangling connections, the session
// manager marks sessions with a lifetime of more than 20 mins as
// stale and deletes them.
func (nsm *NavalSessionManager) CleanupPeriodically() {
	assumedClosedConns := 10

	for {
		time.Sleep(nsm.cleanupInterval)

		nsm.mu.Lock()
		toDelete := make([]string, 0, assumedClosedConns)

		for ID, session := range nsm.sessions {
			if time.Since(session.createdAt) > nsm.cleanupInterval {
				toDelete = append(toDelete, ID)
			}
		}

		log.Println("Clean up sessions:")
		for _, ID := range toDelete {
			delete(nsm.sessions, ID)
			log.Printf("removed: %s", ID)
		}
		nsm.mu.Unlock()
	}
}

// This function takes care of abnormal closures, e.g. a backgrounded
// client tab or a dropped network. The session sticks around for the
// grace period so the player can pick the match back up.
func (nsm *NavalSessionManager) HandleAbnormalClosureSession(s *Session) error {
	// Without a match there is nothing to come back to; the session
	// is invalid and should end.
	if s.match == nil {
		return NewConnErr(ConnLoopBreak).AddDesc("no match attached to session")
	}

	timer := time.NewTimer(gracePeriod)
	select {
	case <-timer.C:
		log.Printf("session terminated: %s\n", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-s.reconnectionSignalChan:
		log.Printf("player reconnected, session: %s\n", s.id)
		return nil
	}
}

func (nsm *NavalSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)

	if err != nil {
		connErr, ok := err.(ConnErr)
		if !ok {
			panic("this will never happen")
		}

		switch connErr.Code() {
		case ConnLoopBreak, ConnInvalidMsgType:
			return connErr

		case ConnLoopAbnormalClosureRetry:
			if err := nsm.HandleAbnormalClosureSession(session); err != nil {
				return connErr
			}
		}
	}

	return nil
}

func (nsm *NavalSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := nsm.HandleAbnormalClosureSession(session); err != nil {
				return -1, []byte{}, err
			}

		default:
			return -1, []byte{}, err
		}
	}
}

func (nsm *NavalSessionManager) GetSessionId(session *Session) string {
	return session.id
}

func (nsm *NavalSessionManager) FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}

	return signal.Code, nil
}
