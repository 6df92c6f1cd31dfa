package engine

import (
	"github.com/YevhenPoshtak/seabattle/pkg/ai"
	"github.com/YevhenPoshtak/seabattle/pkg/game"
)

//BotPlayer drives the local side of an engine with a scripted targeter.
//It only goes through the engine's public operations, so it doubles as
//an automated harness for them.
type BotPlayer struct {
	targeter *ai.Targeter
}

func NewBotPlayer(difficulty ai.Difficulty, boardSize int) *BotPlayer {
	return &BotPlayer{targeter: ai.NewTargeter(difficulty, boardSize)}
}

//PlayTurn selects a full salvo, confirms it, fires it and feeds the
//outcomes back into the targeter.
func (b *BotPlayer) PlayTurn(e *Engine) (VolleyReport, error) {
	max := e.Config().ShotsPerTurn
	for i := 0; i < max; i++ {
		shot, ok := b.targeter.SelectTarget()
		if !ok {
			break
		}
		if err := e.SelectTarget(shot); err != nil {
			// The targeter never repeats a cell, so a rejection here
			// means the salvo is full.
			break
		}
	}

	if len(e.SelectedTargets()) == 0 {
		return VolleyReport{}, ErrEmptySalvo
	}
	if err := e.ConfirmSalvo(); err != nil {
		return VolleyReport{}, err
	}

	report, err := e.FireSalvo()
	for _, s := range report.Shots {
		b.targeter.RecordOutcome(s.Position.X, s.Position.Y,
			s.Outcome != game.OutcomeMiss, s.Outcome == game.OutcomeSunk)
	}
	return report, err
}
