package main

import (
	"github.com/charmbracelet/log"

	"github.com/YevhenPoshtak/seabattle/pkg/ai"
	"github.com/YevhenPoshtak/seabattle/pkg/catalog"
	"github.com/YevhenPoshtak/seabattle/pkg/engine"
	"github.com/YevhenPoshtak/seabattle/pkg/game"
	"github.com/YevhenPoshtak/seabattle/pkg/wire"
)

//Match plays one hosted game against a remote peer. The hosted side's
//fleet is randomized and its salvos are chosen by a scripted targeter;
//the host fires first.
type Match struct {
	id         string
	cfg        catalog.GameConfig
	difficulty ai.Difficulty
	eng        *engine.Engine
}

func NewMatch(id string, cfg catalog.GameConfig, difficulty ai.Difficulty) *Match {
	return &Match{
		id:         id,
		cfg:        cfg,
		difficulty: difficulty,
	}
}

func (m *Match) Run(conn wire.Connection) error {
	peer := wire.NewPeer(conn)
	if err := peer.SendSettings(m.cfg.BoardSize, m.cfg.ShotsPerTurn); err != nil {
		return err
	}

	board := game.InitBoard(m.cfg.BoardSize, game.RoleHost)
	game.RandomizeFleet(board, m.cfg.Fleet())

	m.eng = engine.NewEngine(m.cfg, board, engine.NewRemoteOpponent(peer), true)
	bot := engine.NewBotPlayer(m.difficulty, m.cfg.BoardSize)
	logger := log.With("match", m.id)

	for !m.eng.GameOver() {
		if m.eng.Turn() == engine.SideLocal {
			report, err := bot.PlayTurn(m.eng)
			if err != nil {
				return err
			}
			logger.Debug("host volley resolved",
				"shots", len(report.Shots), "wounded", report.Wounded,
				"sunk", report.Sunk, "miss", report.Miss)
		} else {
			report, err := m.eng.PlayOpponentTurn()
			if err != nil {
				return err
			}
			logger.Debug("peer volley resolved",
				"shots", len(report.Shots), "wounded", report.Wounded,
				"sunk", report.Sunk, "miss", report.Miss)
		}
	}
	return nil
}

func (m *Match) Winner() engine.Side {
	if m.eng == nil {
		return engine.SideNone
	}
	return m.eng.Winner()
}
