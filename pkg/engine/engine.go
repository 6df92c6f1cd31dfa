package engine

import (
	"errors"

	"github.com/YevhenPoshtak/seabattle/pkg/catalog"
	"github.com/YevhenPoshtak/seabattle/pkg/game"
)

type Phase int8

const (
	PhaseSelecting Phase = iota
	PhaseFiring
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseFiring:
		return "firing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

type Side int8

const (
	SideNone Side = iota
	SideLocal
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SideLocal:
		return "local"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

var (
	ErrWrongPhase      = errors.New("action not allowed in current phase")
	ErrNotLocalTurn    = errors.New("not the local side's turn")
	ErrNotOpponentTurn = errors.New("not the opponent's turn")
	ErrOutOfBounds     = errors.New("target out of bounds")
	ErrTargetRevealed  = errors.New("target already revealed")
	ErrDuplicateTarget = errors.New("target already selected in this salvo")
	ErrSalvoFull       = errors.New("salvo is full")
	ErrEmptySalvo      = errors.New("no targets selected")
)

//ShotRecord is one resolved shot of a volley.
type ShotRecord struct {
	Position game.Position
	Outcome  game.Outcome
}

//VolleyReport summarizes one side's completed salvo for the rendering
//side: the resolved shots in firing order and the wounded/sunk/miss
//tallies at volley end.
type VolleyReport struct {
	Shots   []ShotRecord
	Wounded int
	Sunk    int
	Miss    int
}

//Engine is the orchestrating state machine. It alternates control
//between the local side and the opponent, resolves salvos shot by shot,
//and detects game end after every individual shot. A single logical
//thread drives it; only the side on turn ever mutates the opposing
//board.
type Engine struct {
	cfg      catalog.GameConfig
	maxHits  int
	local    *game.Board
	fog      *game.FogBoard
	opponent Opponent

	phase    Phase
	turn     Side
	winner   Side
	selected []game.Position

	localHits    int
	opponentHits int
	enemyShips   int
}

//NewEngine wires a local fleet board and an opponent into a fresh game.
//localStarts decides who fires the first salvo; in remote play the host
//goes first.
func NewEngine(cfg catalog.GameConfig, local *game.Board, opponent Opponent, localStarts bool) *Engine {
	fleet := cfg.Fleet()
	e := &Engine{
		cfg:        cfg,
		maxHits:    fleet.TotalShipCells(),
		local:      local,
		fog:        game.InitFogBoard(cfg.BoardSize),
		opponent:   opponent,
		phase:      PhaseSelecting,
		turn:       SideOpponent,
		enemyShips: fleet.TotalShips(),
	}
	if localStarts {
		e.turn = SideLocal
	}
	return e
}

func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) Turn() Side {
	return e.turn
}

func (e *Engine) GameOver() bool {
	return e.phase == PhaseGameOver
}

//Winner returns the winning side, or SideNone while the game is running
//or after an aborted session.
func (e *Engine) Winner() Side {
	return e.winner
}

func (e *Engine) Config() catalog.GameConfig {
	return e.cfg
}

//FogView returns the local side's view of the opposing board.
func (e *Engine) FogView() *game.FogBoard {
	return e.fog
}

//LocalBoard returns the local side's fleet board.
func (e *Engine) LocalBoard() *game.Board {
	return e.local
}

//SelectTarget adds one cell to the salvo under construction. Cells
//outside the grid, cells already revealed through the fog and cells
//already in the salvo are rejected without state change.
func (e *Engine) SelectTarget(p game.Position) error {
	if e.phase != PhaseSelecting {
		return ErrWrongPhase
	}
	if e.turn != SideLocal {
		return ErrNotLocalTurn
	}
	if p.X < 0 || p.X >= e.cfg.BoardSize || p.Y < 0 || p.Y >= e.cfg.BoardSize {
		return ErrOutOfBounds
	}
	if e.fog.Revealed(p.X, p.Y) {
		return ErrTargetRevealed
	}
	if len(e.selected) >= e.cfg.ShotsPerTurn {
		return ErrSalvoFull
	}
	for _, s := range e.selected {
		if s == p {
			return ErrDuplicateTarget
		}
	}
	e.selected = append(e.selected, p)
	return nil
}

//SelectedTargets returns a copy of the salvo under construction.
func (e *Engine) SelectedTargets() []game.Position {
	targets := make([]game.Position, len(e.selected))
	copy(targets, e.selected)
	return targets
}

func (e *Engine) ClearSelection() {
	e.selected = e.selected[:0]
}

//ConfirmSalvo locks the selection and moves to the firing phase.
func (e *Engine) ConfirmSalvo() error {
	if e.phase != PhaseSelecting {
		return ErrWrongPhase
	}
	if e.turn != SideLocal {
		return ErrNotLocalTurn
	}
	if len(e.selected) == 0 {
		return ErrEmptySalvo
	}
	e.phase = PhaseFiring
	return nil
}

//FireSalvo resolves the confirmed salvo against the opponent shot by
//shot, in selection order. The fog view and hit counters update after
//each shot, the win condition is checked after each shot, and firing
//stops early once the opposing fleet is destroyed. A wire failure aborts
//the session and is returned to the caller.
func (e *Engine) FireSalvo() (VolleyReport, error) {
	var report VolleyReport
	if e.phase != PhaseFiring {
		return report, ErrWrongPhase
	}
	if e.turn != SideLocal {
		return report, ErrNotLocalTurn
	}

	if err := e.opponent.AnnounceSalvo(len(e.selected)); err != nil {
		e.abort()
		return report, err
	}

	for _, shot := range e.selected {
		outcome, err := e.opponent.ResolveShot(shot)
		if err != nil {
			e.abort()
			return report, err
		}
		report.Shots = append(report.Shots, ShotRecord{Position: shot, Outcome: outcome})

		switch outcome {
		case game.OutcomeMiss:
			report.Miss++
			e.fog.Mark(shot.X, shot.Y, game.FogMiss)
		case game.OutcomeHit:
			e.localHits++
			e.fog.Mark(shot.X, shot.Y, game.FogHit)
		case game.OutcomeSunk:
			e.localHits++
			e.enemyShips--
			report.Sunk++
			e.revealSunkShip(shot)
		}

		if e.enemyShips <= 0 {
			e.finish(SideLocal)
			break
		}
	}

	report.Wounded = e.countFogHits(report.Shots)

	e.selected = e.selected[:0]
	if e.phase != PhaseGameOver {
		e.phase = PhaseSelecting
		e.turn = SideOpponent
	}
	return report, nil
}

//revealSunkShip marks the whole destroyed ship in the fog view. The
//scripted opponent hands over the exact cells; a remote peer only sends
//the outcome byte, so the connected hits are flood-filled instead.
func (e *Engine) revealSunkShip(shot game.Position) {
	cells := e.opponent.SunkShipCells(shot)
	if cells == nil {
		e.fog.RevealSunk(shot.X, shot.Y)
		return
	}
	for _, c := range cells {
		e.fog.Mark(c.X, c.Y, game.FogSunk)
	}
}

func (e *Engine) countFogHits(shots []ShotRecord) int {
	count := 0
	for _, s := range shots {
		if e.fog.State(s.Position.X, s.Position.Y) == game.FogHit {
			count++
		}
	}
	return count
}

//PlayOpponentTurn runs the opponent's whole salvo against the local
//board: the opponent announces its shot count, then each shot is
//received, resolved and answered before the next one. The win condition
//is checked after every shot and resolution stops early once the local
//fleet is destroyed.
func (e *Engine) PlayOpponentTurn() (VolleyReport, error) {
	var report VolleyReport
	if e.phase != PhaseSelecting {
		return report, ErrWrongPhase
	}
	if e.turn != SideOpponent {
		return report, ErrNotOpponentTurn
	}

	count, err := e.opponent.IncomingSalvo(e.cfg.ShotsPerTurn)
	if err != nil {
		e.abort()
		return report, err
	}

	for i := 0; i < count; i++ {
		shot, err := e.opponent.NextShot()
		if err != nil {
			e.abort()
			return report, err
		}

		outcome := e.local.ApplyShot(shot.X, shot.Y)
		if err := e.opponent.ApplyOutcome(shot, outcome); err != nil {
			e.abort()
			return report, err
		}
		report.Shots = append(report.Shots, ShotRecord{Position: shot, Outcome: outcome})

		switch outcome {
		case game.OutcomeMiss:
			report.Miss++
		case game.OutcomeHit:
			e.opponentHits++
		case game.OutcomeSunk:
			e.opponentHits++
			report.Sunk++
		}

		if e.local.RemainingShips() == 0 {
			e.finish(SideOpponent)
			break
		}
	}

	for _, s := range report.Shots {
		if e.local.State(s.Position.X, s.Position.Y) == game.Hit {
			report.Wounded++
		}
	}

	if e.phase != PhaseGameOver {
		e.turn = SideLocal
	}
	return report, nil
}

//Quit abandons the session: the opponent connection is closed and the
//engine stops accepting actions. No winner is recorded.
func (e *Engine) Quit() error {
	err := e.opponent.Close()
	e.abort()
	return err
}

func (e *Engine) finish(winner Side) {
	e.phase = PhaseGameOver
	e.winner = winner
}

func (e *Engine) abort() {
	e.phase = PhaseGameOver
	e.winner = SideNone
}

//Snapshot is the read-only state handed to the rendering side after each
//shot and at salvo boundaries.
type Snapshot struct {
	Phase          Phase
	Turn           Side
	Winner         Side
	LocalHits      int
	OpponentHits   int
	MaxHits        int
	LocalShips     int
	EnemyShips     int
	LocalGrid      [][]game.CellState
	FogGrid        [][]game.FogState
	LocalMissCount int
}

func (e *Engine) Snapshot() Snapshot {
	size := e.cfg.BoardSize
	localGrid := make([][]game.CellState, size)
	fogGrid := make([][]game.FogState, size)
	for y := 0; y < size; y++ {
		localGrid[y] = make([]game.CellState, size)
		fogGrid[y] = make([]game.FogState, size)
		for x := 0; x < size; x++ {
			localGrid[y][x] = e.local.State(x, y)
			fogGrid[y][x] = e.fog.State(x, y)
		}
	}
	return Snapshot{
		Phase:          e.phase,
		Turn:           e.turn,
		Winner:         e.winner,
		LocalHits:      e.localHits,
		OpponentHits:   e.opponentHits,
		MaxHits:        e.maxHits,
		LocalShips:     e.local.RemainingShips(),
		EnemyShips:     e.enemyShips,
		LocalGrid:      localGrid,
		FogGrid:        fogGrid,
		LocalMissCount: e.local.MissCount(),
	}
}
