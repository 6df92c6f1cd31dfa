package engine

import (
	"errors"

	"github.com/YevhenPoshtak/seabattle/pkg/ai"
	"github.com/YevhenPoshtak/seabattle/pkg/catalog"
	"github.com/YevhenPoshtak/seabattle/pkg/game"
	"github.com/YevhenPoshtak/seabattle/pkg/wire"
)

//Opponent is the capability set the turn engine needs from the other
//side, whether it is a scripted targeter or a remote peer. The attack
//methods (IncomingSalvo, NextShot, ApplyOutcome) cover the opponent's
//turn; the defence methods (AnnounceSalvo, ResolveShot, SunkShipCells)
//cover ours.
type Opponent interface {
	//IncomingSalvo starts the opponent's turn and returns how many shots
	//it will fire, at most max for the scripted variant.
	IncomingSalvo(max int) (int, error)
	//NextShot returns the opponent's next attack coordinate.
	NextShot() (game.Position, error)
	//ApplyOutcome reports what the opponent's shot did to our board.
	ApplyOutcome(shot game.Position, outcome game.Outcome) error
	//AnnounceSalvo tells the opponent how many shots our salvo carries.
	AnnounceSalvo(count int) error
	//ResolveShot fires one of our shots at the opponent's fleet.
	ResolveShot(shot game.Position) (game.Outcome, error)
	//SunkShipCells returns every cell of the opponent ship our shot just
	//sank, or nil when the opponent cannot reveal them directly.
	SunkShipCells(shot game.Position) []game.Position
	Close() error
}

var errSalvoExhausted = errors.New("no shots left in salvo")

//AIOpponent is the scripted opponent: a targeting strategy plus its own
//randomized fleet board that shots fired at it resolve against.
type AIOpponent struct {
	targeter *ai.Targeter
	fleet    *game.Board
	pending  []game.Position
}

func NewAIOpponent(difficulty ai.Difficulty, cfg catalog.GameConfig) *AIOpponent {
	fleet := game.InitBoard(cfg.BoardSize, game.RoleGuest)
	game.RandomizeFleet(fleet, cfg.Fleet())
	return &AIOpponent{
		targeter: ai.NewTargeter(difficulty, cfg.BoardSize),
		fleet:    fleet,
	}
}

//IncomingSalvo selects the whole salvo up front: every coordinate is
//chosen before any of this salvo's outcomes are known. Outcomes recorded
//as the shots resolve shape the next turn's targeting, not this one's.
func (o *AIOpponent) IncomingSalvo(max int) (int, error) {
	o.pending = o.pending[:0]
	for i := 0; i < max; i++ {
		shot, ok := o.targeter.SelectTarget()
		if !ok {
			break
		}
		o.pending = append(o.pending, shot)
	}
	return len(o.pending), nil
}

func (o *AIOpponent) NextShot() (game.Position, error) {
	if len(o.pending) == 0 {
		return game.Position{}, errSalvoExhausted
	}
	shot := o.pending[0]
	o.pending = o.pending[1:]
	return shot, nil
}

func (o *AIOpponent) ApplyOutcome(shot game.Position, outcome game.Outcome) error {
	o.targeter.RecordOutcome(shot.X, shot.Y, outcome != game.OutcomeMiss, outcome == game.OutcomeSunk)
	return nil
}

func (o *AIOpponent) AnnounceSalvo(count int) error {
	return nil
}

func (o *AIOpponent) ResolveShot(shot game.Position) (game.Outcome, error) {
	return o.fleet.ApplyShot(shot.X, shot.Y), nil
}

func (o *AIOpponent) SunkShipCells(shot game.Position) []game.Position {
	return o.fleet.OccupiedCellsOfShipAt(shot.X, shot.Y)
}

func (o *AIOpponent) Close() error {
	return nil
}

//FleetBoard exposes the scripted opponent's own board, mainly so a
//harness can inspect what the engine resolved shots against.
func (o *AIOpponent) FleetBoard() *game.Board {
	return o.fleet
}

//RemoteOpponent exchanges shots and outcomes with a peer over the wire.
//Every shot it fires at us must be answered before it sends the next,
//and every shot we fire waits for the peer's outcome byte.
type RemoteOpponent struct {
	peer *wire.Peer
}

func NewRemoteOpponent(peer *wire.Peer) *RemoteOpponent {
	return &RemoteOpponent{peer: peer}
}

func (o *RemoteOpponent) IncomingSalvo(max int) (int, error) {
	count, err := o.peer.ReceiveShotCount()
	if err != nil {
		return 0, err
	}
	if count < 0 {
		count = 0
	}
	return count, nil
}

func (o *RemoteOpponent) NextShot() (game.Position, error) {
	return o.peer.ReceiveShot()
}

func (o *RemoteOpponent) ApplyOutcome(shot game.Position, outcome game.Outcome) error {
	return o.peer.SendOutcome(outcome)
}

func (o *RemoteOpponent) AnnounceSalvo(count int) error {
	return o.peer.SendShotCount(count)
}

func (o *RemoteOpponent) ResolveShot(shot game.Position) (game.Outcome, error) {
	if err := o.peer.SendShot(shot); err != nil {
		return game.OutcomeMiss, err
	}
	return o.peer.ReceiveOutcome()
}

//SunkShipCells returns nil: the peer only reports a one-byte outcome, so
//the sunk ship is revealed by flood-filling connected hits in the fog
//view instead.
func (o *RemoteOpponent) SunkShipCells(shot game.Position) []game.Position {
	return nil
}

func (o *RemoteOpponent) Close() error {
	return o.peer.Close()
}
