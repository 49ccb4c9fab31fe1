package api

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/iceseyes/naval/db/sqlc"
	cerr "github.com/iceseyes/naval/internal/error"
	mb "github.com/iceseyes/naval/models/battle"
	mc "github.com/iceseyes/naval/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// probably more than enough but this is a good average size
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	matchManager   mb.MatchManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	matchManager mb.MatchManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		matchManager:   matchManager,
		q:              q,
	}

	rp = rp.mustGetServerIpNet()
	return rp
}

func (rp RequestProcessor) mustGetServerIpNet() RequestProcessor {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ipnet != nil && ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				rp.ipnet = *ipnet
				return rp
			}
		}
	}

	// Containers and CI runners may expose no routable interface at
	// all. Loopback still identifies the server in that case.
	rp.ipnet = net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(8, 32)}
	return rp
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		session, err := rp.sessionManager.FindSession(sessionIdQuery)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID)
			msg.AddError(err.Error(), "failed to reconnect, session does not exist")
			conn.WriteJSON(msg)
			conn.Close()
			return
		}
		rp.sessionManager.ReconnectSession(session, conn)
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	defer func() {
		if match := rp.sessionManager.GetSessionMatch(session); match != nil {
			rp.matchManager.TerminateMatch(match.Id())
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

	serverPqtypeInet := pqtype.Inet{IPNet: rp.ipnet, Valid: true}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// then something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch code {

		// In this branch a fresh match is created and attached to
		// the session. A session only ever runs one match at a time.
		case mc.CodeNewMatch:
			ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
			err := rp.q.IncrementMatchesCreatedCount(ctx, serverPqtypeInet)
			cancel()
			if err != nil {
				// for now not killing the match for it
				log.Println(err)
			}

			match, respMsg := NewRequest(payload).HandleNewMatch(rp.matchManager)
			if match != nil {
				if prev := rp.sessionManager.GetSessionMatch(session); prev != nil {
					rp.matchManager.TerminateMatch(prev.Id())
				}
				rp.sessionManager.SetSessionMatch(session, match)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeDeployFleet:
			respMsg := NewRequest(payload).HandleDeployFleet(rp.matchManager)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeAutoDeployFleet:
			respMsg := NewRequest(payload).HandleAutoDeployFleet(rp.matchManager)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// The computer answers within the same round, so one
		// response carries both shots. A finished match gets its
		// result persisted.
		case mc.CodeAttack:
			respMsg := NewRequest(payload).HandleAttack(rp.matchManager)

			if respMsg.Error == nil && respMsg.Payload.MatchOver {
				rp.insertMatchResult(session, serverPqtypeInet)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeRematch:
			respMsg := NewRequest(payload).HandleRematch(rp.matchManager)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeQuitMatch:
			respMsg := NewRequest(payload).HandleQuitMatch(rp.matchManager)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			// The quit match is gone from the manager; drop the
			// session reference if it pointed at it.
			if m := rp.sessionManager.GetSessionMatch(session); m != nil {
				if _, err := rp.matchManager.GetMatch(m.Id()); err != nil {
					rp.sessionManager.SetSessionMatch(session, nil)
				}
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}

// The result row is best effort. A failed insert is logged and the
// match itself is unaffected.
func (rp *RequestProcessor) insertMatchResult(session *mc.Session, serverInet pqtype.Inet) {
	match := rp.sessionManager.GetSessionMatch(session)
	if match == nil {
		log.Println(cerr.ErrSessionHasNoMatch(rp.sessionManager.GetSessionId(session)))
		return
	}

	winner, err := match.WinnerName()
	if err != nil {
		log.Println(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := rp.q.InsertMatchResult(ctx, sqlc.InsertMatchResultParams{
		MatchID:       match.Id(),
		PlayerName:    match.PlayerName(),
		Winner:        winner,
		Rounds:        int32(match.Rounds()),
		PlayerShots:   int32(match.PlayerShots()),
		ComputerShots: int32(match.ComputerShots()),
		StartedAt:     match.StartedAt(),
		FinishedAt:    match.FinishedAt(),
		ServerInet:    serverInet,
	}); err != nil {
		log.Println(err)
	}
}
