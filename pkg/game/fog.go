package game

//FogState is one cell of the attacker's partial view of the opposing
//board. Occupied-but-unshot cells are never visible through the fog.
type FogState int8

const (
	FogUnknown FogState = iota
	FogMiss
	FogHit
	FogSunk
)

func (s FogState) String() string {
	switch s {
	case FogMiss:
		return "miss"
	case FogHit:
		return "hit"
	case FogSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

//FogBoard is the hit/miss-only view of the opposing board, updated as
//shots resolve and consumed read-only by the rendering side.
type FogBoard struct {
	size  int
	cells [][]FogState
}

func InitFogBoard(size int) *FogBoard {
	cells := make([][]FogState, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]FogState, size)
	}
	return &FogBoard{size: size, cells: cells}
}

func (f *FogBoard) Size() int {
	return f.size
}

func (f *FogBoard) outOfBounds(x, y int) bool {
	return x < 0 || x >= f.size || y < 0 || y >= f.size
}

//State returns the fog state at (x, y). Out-of-bounds coordinates report
//FogUnknown.
func (f *FogBoard) State(x, y int) FogState {
	if f.outOfBounds(x, y) {
		return FogUnknown
	}
	return f.cells[y][x]
}

//Revealed reports whether (x, y) has already been resolved to miss, hit
//or sunk.
func (f *FogBoard) Revealed(x, y int) bool {
	return f.State(x, y) != FogUnknown
}

//Mark records a resolved shot. Out-of-bounds coordinates are ignored.
func (f *FogBoard) Mark(x, y int, state FogState) {
	if f.outOfBounds(x, y) {
		return
	}
	f.cells[y][x] = state
}

//RevealSunk converts the hit at (x, y) and every orthogonally connected
//hit into sunk cells with an explicit queue. When the defender only
//reports a one-byte outcome, the connected hits are exactly the cells of
//the destroyed ship.
func (f *FogBoard) RevealSunk(x, y int) {
	if f.outOfBounds(x, y) {
		return
	}

	queue := []Position{{X: x, Y: y}}
	f.cells[y][x] = FogSunk
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range neighbours(p) {
			if f.outOfBounds(n.X, n.Y) || f.cells[n.Y][n.X] != FogHit {
				continue
			}
			f.cells[n.Y][n.X] = FogSunk
			queue = append(queue, n)
		}
	}
}
