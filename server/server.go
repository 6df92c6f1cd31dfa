package main

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/YevhenPoshtak/seabattle/pkg/ai"
	"github.com/YevhenPoshtak/seabattle/pkg/catalog"
	"github.com/YevhenPoshtak/seabattle/pkg/lobby"
	"github.com/YevhenPoshtak/seabattle/pkg/wire"
)

//Server hosts one match per incoming connection: a lobby exchange, the
//settings handshake, then a full game with the hosted side played by the
//scripted targeter.
type Server struct {
	cfg        catalog.GameConfig
	difficulty ai.Difficulty
	upgrader   websocket.Upgrader
}

func NewServer(cfg catalog.GameConfig, difficulty ai.Difficulty) *Server {
	return &Server{
		cfg:        cfg,
		difficulty: difficulty,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *Server) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade failed", "error", err)
		return
	}
	go s.handleConnection(conn)
}

func (s *Server) handleConnection(conn wire.Connection) {
	defer conn.Close()

	matchId := uuid.New().String()
	logger := log.With("match", matchId)
	logger.Info("peer connected")

	if err := admitPeer(conn, matchId); err != nil {
		logger.Error("lobby exchange failed", "error", err)
		return
	}

	match := NewMatch(matchId, s.cfg, s.difficulty)
	if err := match.Run(conn); err != nil {
		logger.Error("match abandoned", "error", err)
		return
	}
	logger.Info("match finished", "winner", match.Winner())
}

//admitPeer runs the lobby exchange: the peer announces itself with a
//join request and the host answers with the match id. Anything else is
//answered with a retry and the connection dropped.
func admitPeer(conn wire.Connection, matchId string) error {
	request, err := lobby.ReadRequest(conn)
	if err != nil {
		return err
	}
	if request.Action != lobby.Join {
		_ = lobby.SendResponse(conn, lobby.BuildResponse(lobby.Retry, "expected a join request", nil))
		return wire.ErrConnectionLost
	}

	response := lobby.BuildResponse(lobby.Start, "Match is starting.",
		map[string]interface{}{"matchId": matchId})
	return lobby.SendResponse(conn, response)
}
