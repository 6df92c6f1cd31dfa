package game

type Orientation int8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

//Ship is one placed ship. Its geometry is fixed at placement time and
//never moves; hitCount only grows, and sunk holds exactly when hitCount
//reaches length.
type Ship struct {
	id          int
	symbol      rune
	length      int
	originX     int
	originY     int
	orientation Orientation
	hitCount    int
	sunk        bool
}

func (s *Ship) ID() int {
	return s.id
}

func (s *Ship) Symbol() rune {
	return s.symbol
}

func (s *Ship) Length() int {
	return s.length
}

func (s *Ship) HitCount() int {
	return s.hitCount
}

func (s *Ship) IsSunk() bool {
	return s.sunk
}

func (s *Ship) Orientation() Orientation {
	return s.orientation
}

func (s *Ship) Origin() Position {
	return Position{X: s.originX, Y: s.originY}
}

//Positions returns every cell the ship occupies, derived from its stored
//origin, orientation and length.
func (s *Ship) Positions() []Position {
	positions := make([]Position, 0, s.length)
	for i := 0; i < s.length; i++ {
		if s.orientation == Vertical {
			positions = append(positions, Position{X: s.originX, Y: s.originY + i})
		} else {
			positions = append(positions, Position{X: s.originX + i, Y: s.originY})
		}
	}
	return positions
}

//Contains reports whether (x, y) lies on the ship, re-derived from the
//stored geometry.
func (s *Ship) Contains(x, y int) bool {
	if s.orientation == Vertical {
		return x == s.originX && y >= s.originY && y < s.originY+s.length
	}
	return y == s.originY && x >= s.originX && x < s.originX+s.length
}
