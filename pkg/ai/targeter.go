package ai

import (
	"math/rand"
	"time"

	"github.com/YevhenPoshtak/seabattle/pkg/game"
)

type Difficulty int8

const (
	Easy Difficulty = iota
	Smart
)

func (d Difficulty) String() string {
	if d == Smart {
		return "smart"
	}
	return "easy"
}

type knowledge int8

const (
	unknown knowledge = iota
	confirmedMiss
	confirmedHit
)

//Targeter selects attack coordinates for the scripted opponent. Easy
//samples uniformly without replacement; Smart works a follow-up queue of
//neighbours of unresolved hits first, then a checkerboard parity pool,
//then the remaining untried cells.
type Targeter struct {
	difficulty Difficulty
	boardSize  int
	grid       [][]knowledge
	queue      []game.Position
	available  []game.Position
	parity     []game.Position
	rng        *rand.Rand
}

//NewTargeter returns a targeter for an empty adversary grid of the given
//size.
func NewTargeter(difficulty Difficulty, boardSize int) *Targeter {
	return newTargeter(difficulty, boardSize, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newTargeter(difficulty Difficulty, boardSize int, rng *rand.Rand) *Targeter {
	t := &Targeter{
		difficulty: difficulty,
		boardSize:  boardSize,
		rng:        rng,
	}
	t.Reset()
	return t
}

//Reset forgets everything learned about the adversary and rebuilds the
//shot pools for a new game.
func (t *Targeter) Reset() {
	t.grid = make([][]knowledge, t.boardSize)
	for i := range t.grid {
		t.grid[i] = make([]knowledge, t.boardSize)
	}
	t.queue = nil
	t.available = nil
	t.parity = nil

	for y := 0; y < t.boardSize; y++ {
		for x := 0; x < t.boardSize; x++ {
			p := game.Position{X: x, Y: y}
			t.available = append(t.available, p)
			// Every ship longer than one cell crosses the even
			// checkerboard, so covering one parity finds them with
			// half the shots.
			if (x+y)%2 == 0 {
				t.parity = append(t.parity, p)
			}
		}
	}

	t.rng.Shuffle(len(t.available), func(i, j int) {
		t.available[i], t.available[j] = t.available[j], t.available[i]
	})
	t.rng.Shuffle(len(t.parity), func(i, j int) {
		t.parity[i], t.parity[j] = t.parity[j], t.parity[i]
	})
}

//SelectTarget returns the next attack coordinate. The second return value
//is false once every cell has been tried.
func (t *Targeter) SelectTarget() (game.Position, bool) {
	if len(t.available) == 0 {
		return game.Position{X: -1, Y: -1}, false
	}

	if t.difficulty == Easy {
		return t.takeRandomAvailable(), true
	}

	// Follow up unresolved hits first. Entries may have been tried since
	// they were queued; those are skipped.
	for len(t.queue) > 0 {
		p := t.queue[0]
		t.queue = t.queue[1:]
		if t.removeAvailable(p) {
			t.removeParity(p)
			return p, true
		}
	}

	if len(t.parity) > 0 {
		p := t.parity[len(t.parity)-1]
		t.parity = t.parity[:len(t.parity)-1]
		t.removeAvailable(p)
		return p, true
	}

	return t.takeRandomAvailable(), true
}

//RecordOutcome feeds a shot result back into the targeter. A hit that did
//not sink enqueues the untried orthogonal neighbours of the hit, which
//chases a damaged ship along its axis without tracking a direction: only
//neighbours on the ship's line keep producing hits, and each new hit
//re-enqueues its own neighbours. A sunk outcome ends the chase; stale
//queue entries from the sunk ship are filtered when popped.
func (t *Targeter) RecordOutcome(x, y int, hit, sunk bool) {
	if x < 0 || x >= t.boardSize || y < 0 || y >= t.boardSize {
		return
	}

	if hit {
		t.grid[y][x] = confirmedHit
	} else {
		t.grid[y][x] = confirmedMiss
	}

	if t.difficulty == Smart && hit && !sunk {
		t.enqueueNeighbours(x, y)
	}
}

func (t *Targeter) enqueueNeighbours(x, y int) {
	candidates := []game.Position{
		{X: x, Y: y - 1},
		{X: x, Y: y + 1},
		{X: x - 1, Y: y},
		{X: x + 1, Y: y},
	}
	for _, c := range candidates {
		if c.X < 0 || c.X >= t.boardSize || c.Y < 0 || c.Y >= t.boardSize {
			continue
		}
		if t.grid[c.Y][c.X] == unknown {
			t.queue = append(t.queue, c)
		}
	}
}

func (t *Targeter) takeRandomAvailable() game.Position {
	index := t.rng.Intn(len(t.available))
	p := t.available[index]
	t.available = append(t.available[:index], t.available[index+1:]...)
	t.removeParity(p)
	return p
}

func (t *Targeter) removeAvailable(p game.Position) bool {
	for i, a := range t.available {
		if a == p {
			t.available = append(t.available[:i], t.available[i+1:]...)
			return true
		}
	}
	return false
}

func (t *Targeter) removeParity(p game.Position) {
	for i, a := range t.parity {
		if a == p {
			t.parity = append(t.parity[:i], t.parity[i+1:]...)
			return
		}
	}
}

func (t *Targeter) Difficulty() Difficulty {
	return t.difficulty
}
