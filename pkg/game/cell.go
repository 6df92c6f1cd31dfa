package game

//CellState is the tagged state of one grid square. Exactly one state is
//set per cell at any time.
type CellState int8

const (
	Water CellState = iota
	Miss
	Hit
	Sunk
	Occupied
)

func (s CellState) String() string {
	switch s {
	case Water:
		return "water"
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	case Occupied:
		return "occupied"
	default:
		return "unknown"
	}
}

//Cell is one grid square. ShipID is meaningful only while State is
//Occupied and indexes the board's ship registry.
type Cell struct {
	State  CellState
	ShipID int
}

//Outcome is the observable result of a single shot.
type Outcome int8

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeSunk
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeSunk:
		return "sunk"
	default:
		return "unknown"
	}
}

//Position is a grid coordinate. X is the column, Y is the row.
type Position struct {
	X int
	Y int
}
