package game

//Role marks which side of the match a board belongs to. It only offsets
//the seed used for randomized placement so both sides never share one;
//it carries no gameplay rule.
type Role int8

const (
	RoleHost Role = iota
	RoleGuest
)

//Board owns one player's grid and fleet. It is mutated exclusively
//through ship placement and shot resolution.
type Board struct {
	size      int
	cells     [][]Cell
	ships     []Ship
	missCount int
	role      Role
}

//InitBoard returns an empty size x size board with every cell set to Water.
func InitBoard(size int, role Role) *Board {
	b := &Board{
		size: size,
		role: role,
	}
	b.cells = initCells(size)
	return b
}

func initCells(size int) [][]Cell {
	cells := make([][]Cell, size)
	for y := 0; y < size; y++ {
		cells[y] = make([]Cell, size)
	}
	return cells
}

//Reset clears the grid and the fleet so ships can be placed again.
func (b *Board) Reset() {
	b.cells = initCells(b.size)
	b.ships = nil
	b.missCount = 0
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Role() Role {
	return b.role
}

func (b *Board) MissCount() int {
	return b.missCount
}

//State returns the state of the cell at (x, y). Out-of-bounds coordinates
//report Water.
func (b *Board) State(x, y int) CellState {
	if b.outOfBounds(x, y) {
		return Water
	}
	return b.cells[y][x].State
}

//Ships returns the ship registry. Callers must not mutate the entries.
func (b *Board) Ships() []Ship {
	return b.ships
}

func (b *Board) outOfBounds(x, y int) bool {
	return x < 0 || x >= b.size || y < 0 || y >= b.size
}

//ApplyShot resolves a single shot at (x, y). Shots outside the grid and
//shots at a cell already resolved as Miss, Hit or Sunk return OutcomeMiss
//and change nothing; firing twice at the same confirmed cell is
//indistinguishable from a true miss to the caller. A shot on an occupied
//cell wounds the owning ship, and the shot that exhausts the ship's
//length marks all its cells Sunk.
func (b *Board) ApplyShot(x, y int) Outcome {
	if b.outOfBounds(x, y) {
		return OutcomeMiss
	}

	switch b.cells[y][x].State {
	case Miss, Hit, Sunk:
		return OutcomeMiss
	case Water:
		b.cells[y][x].State = Miss
		b.missCount++
		return OutcomeMiss
	}

	ship := b.shipAt(x, y)
	if ship == nil {
		b.cells[y][x].State = Miss
		b.missCount++
		return OutcomeMiss
	}

	ship.hitCount++
	if ship.hitCount >= ship.length {
		ship.sunk = true
		for _, p := range ship.Positions() {
			if !b.outOfBounds(p.X, p.Y) {
				b.cells[p.Y][p.X].State = Sunk
			}
		}
		return OutcomeSunk
	}

	b.cells[y][x].State = Hit
	return OutcomeHit
}

//shipAt finds the ship covering (x, y) by re-deriving each ship's cells
//from its stored geometry. The fleet is small, so a linear scan beats
//keeping a cell-to-ship index in sync with the grid.
func (b *Board) shipAt(x, y int) *Ship {
	for i := range b.ships {
		if b.ships[i].Contains(x, y) {
			return &b.ships[i]
		}
	}
	return nil
}

//RemainingShips returns the number of ships not yet sunk.
func (b *Board) RemainingShips() int {
	count := 0
	for i := range b.ships {
		if !b.ships[i].sunk {
			count++
		}
	}
	return count
}

//WoundedCellCount returns the total number of hit cells on ships that are
//damaged but still afloat.
func (b *Board) WoundedCellCount() int {
	count := 0
	for i := range b.ships {
		if !b.ships[i].sunk && b.ships[i].hitCount > 0 {
			count += b.ships[i].hitCount
		}
	}
	return count
}

//SunkShipCount returns the number of ships destroyed so far.
func (b *Board) SunkShipCount() int {
	count := 0
	for i := range b.ships {
		if b.ships[i].sunk {
			count++
		}
	}
	return count
}

//OccupiedCellsOfShipAt returns every cell of the ship covering (x, y), or
//nil when no ship covers that coordinate. It is used to reveal a whole
//sunk ship to the opposing side's fog view.
func (b *Board) OccupiedCellsOfShipAt(x, y int) []Position {
	ship := b.shipAt(x, y)
	if ship == nil {
		return nil
	}
	return ship.Positions()
}

//IntactShipGroups counts connected groups of undamaged ship cells with an
//iterative flood fill. Hit and sunk cells break connectivity, so a ship
//split by a hit in the middle counts as two groups.
func (b *Board) IntactShipGroups() int {
	visited := make([][]bool, b.size)
	for i := range visited {
		visited[i] = make([]bool, b.size)
	}

	count := 0
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if visited[y][x] || b.cells[y][x].State != Occupied {
				continue
			}
			count++

			queue := []Position{{X: x, Y: y}}
			visited[y][x] = true
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				for _, n := range neighbours(p) {
					if b.outOfBounds(n.X, n.Y) || visited[n.Y][n.X] {
						continue
					}
					if b.cells[n.Y][n.X].State != Occupied {
						continue
					}
					visited[n.Y][n.X] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return count
}

func neighbours(p Position) []Position {
	return []Position{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
}
