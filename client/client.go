package main

import (
	"flag"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/YevhenPoshtak/seabattle/pkg/ai"
	"github.com/YevhenPoshtak/seabattle/pkg/catalog"
	"github.com/YevhenPoshtak/seabattle/pkg/engine"
	"github.com/YevhenPoshtak/seabattle/pkg/game"
	"github.com/YevhenPoshtak/seabattle/pkg/lobby"
	"github.com/YevhenPoshtak/seabattle/pkg/wire"
)

var addr = flag.String("addr", "localhost:8080", "host address")

func main() {
	smart := flag.Bool("smart", true, "use the smart targeting strategy")
	flag.Parse()

	difficulty := ai.Easy
	if *smart {
		difficulty = ai.Smart
	}

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws"}
	log.Info("connecting", "url", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial failed", "error", err)
	}
	defer conn.Close()

	if err := joinMatch(conn); err != nil {
		log.Fatal("join failed", "error", err)
	}

	if err := playMatch(conn, difficulty); err != nil {
		log.Fatal("match abandoned", "error", err)
	}
}

func joinMatch(conn wire.Connection) error {
	if err := lobby.SendRequest(conn, lobby.BuildRequest("", lobby.Join, nil)); err != nil {
		return err
	}
	response, err := lobby.ReadResponse(conn)
	if err != nil {
		return err
	}
	if response.Action != lobby.Start {
		return wire.ErrConnectionLost
	}
	log.Info("joined match", "args", response.Args)
	return nil
}

//playMatch receives the host's settings handshake, randomizes its fleet
//and auto-plays the whole game with the scripted targeter. The host
//fires the first salvo.
func playMatch(conn wire.Connection, difficulty ai.Difficulty) error {
	peer := wire.NewPeer(conn)
	boardSize, shotsPerTurn, err := peer.ReceiveSettings()
	if err != nil {
		return err
	}
	cfg := catalog.NewGameConfig(boardSize, shotsPerTurn)
	log.Info("settings received", "board", cfg.BoardSize, "shots", cfg.ShotsPerTurn)

	board := game.InitBoard(cfg.BoardSize, game.RoleGuest)
	game.RandomizeFleet(board, cfg.Fleet())

	eng := engine.NewEngine(cfg, board, engine.NewRemoteOpponent(peer), false)
	bot := engine.NewBotPlayer(difficulty, cfg.BoardSize)

	for !eng.GameOver() {
		if eng.Turn() == engine.SideLocal {
			report, err := bot.PlayTurn(eng)
			if err != nil {
				return err
			}
			log.Debug("volley resolved", "shots", len(report.Shots),
				"wounded", report.Wounded, "sunk", report.Sunk, "miss", report.Miss)
		} else {
			if _, err := eng.PlayOpponentTurn(); err != nil {
				return err
			}
		}
	}

	snapshot := eng.Snapshot()
	log.Info("game over", "winner", eng.Winner(),
		"hits", snapshot.LocalHits, "taken", snapshot.OpponentHits, "maxHits", snapshot.MaxHits)
	return nil
}
