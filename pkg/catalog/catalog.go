package catalog

const (
	MinBoardSize = 10
	MaxBoardSize = 26
)

//FleetConfiguration describes the fleet composition for one board size:
//how many ships of each length are placed and how many shots a side
//fires per turn by default.
type FleetConfiguration struct {
	BoardSize    int
	FourDeck     int
	ThreeDeck    int
	TwoDeck      int
	OneDeck      int
	ShotsPerTurn int
}

var configurations = []FleetConfiguration{
	{10, 1, 2, 3, 4, 5},
	{11, 1, 2, 4, 5, 5},
	{12, 1, 3, 4, 6, 5},
	{13, 1, 3, 5, 6, 5},
	{14, 2, 3, 5, 7, 6},
	{15, 2, 4, 6, 8, 6},
	{16, 2, 4, 6, 9, 6},
	{17, 2, 4, 7, 9, 6},
	{18, 2, 5, 7, 10, 7},
	{19, 3, 5, 8, 11, 7},
	{20, 3, 5, 8, 12, 7},
	{21, 3, 6, 9, 13, 7},
	{22, 3, 6, 9, 14, 7},
	{23, 4, 6, 10, 15, 8},
	{24, 4, 7, 10, 16, 8},
	{25, 4, 7, 11, 17, 8},
	{26, 4, 7, 11, 18, 9},
}

//ConfigForSize returns the fleet configuration for the given board size.
//Sizes outside the catalog fall back to the 10x10 configuration.
func ConfigForSize(boardSize int) FleetConfiguration {
	for _, c := range configurations {
		if c.BoardSize == boardSize {
			return c
		}
	}
	return configurations[0]
}

//ShipLengths returns the lengths of every ship in the fleet, largest first.
func (c FleetConfiguration) ShipLengths() []int {
	var lengths []int
	for i := 0; i < c.FourDeck; i++ {
		lengths = append(lengths, 4)
	}
	for i := 0; i < c.ThreeDeck; i++ {
		lengths = append(lengths, 3)
	}
	for i := 0; i < c.TwoDeck; i++ {
		lengths = append(lengths, 2)
	}
	for i := 0; i < c.OneDeck; i++ {
		lengths = append(lengths, 1)
	}
	return lengths
}

//TotalShips returns the number of ships in the fleet.
func (c FleetConfiguration) TotalShips() int {
	return c.FourDeck + c.ThreeDeck + c.TwoDeck + c.OneDeck
}

//TotalShipCells returns the number of grid cells the fleet occupies, which
//is also the number of hits needed to destroy it.
func (c FleetConfiguration) TotalShipCells() int {
	return c.FourDeck*4 + c.ThreeDeck*3 + c.TwoDeck*2 + c.OneDeck
}

//GameConfig is the explicit configuration value passed into boards and the
//turn engine. There is no process-wide settings state.
type GameConfig struct {
	BoardSize    int
	ShotsPerTurn int
}

//NewGameConfig builds a game configuration from externally supplied values.
//The board size is clamped to [MinBoardSize, MaxBoardSize]; a non-positive
//shots value falls back to the catalog default for the clamped size.
func NewGameConfig(boardSize, shotsPerTurn int) GameConfig {
	if boardSize < MinBoardSize {
		boardSize = MinBoardSize
	}
	if boardSize > MaxBoardSize {
		boardSize = MaxBoardSize
	}
	if shotsPerTurn <= 0 {
		shotsPerTurn = ConfigForSize(boardSize).ShotsPerTurn
	}
	if shotsPerTurn > MaxBoardSize {
		shotsPerTurn = MaxBoardSize
	}
	return GameConfig{
		BoardSize:    boardSize,
		ShotsPerTurn: shotsPerTurn,
	}
}

//Fleet returns the fleet configuration for this game.
func (g GameConfig) Fleet() FleetConfiguration {
	return ConfigForSize(g.BoardSize)
}
