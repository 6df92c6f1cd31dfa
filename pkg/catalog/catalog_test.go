package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigForSize(t *testing.T) {
	tests := []struct {
		name      string
		boardSize int
		want      FleetConfiguration
	}{
		{name: "smallest board", boardSize: 10, want: FleetConfiguration{10, 1, 2, 3, 4, 5}},
		{name: "mid-range board", boardSize: 18, want: FleetConfiguration{18, 2, 5, 7, 10, 7}},
		{name: "largest board", boardSize: 26, want: FleetConfiguration{26, 4, 7, 11, 18, 9}},
		{name: "unknown size falls back to 10x10", boardSize: 42, want: FleetConfiguration{10, 1, 2, 3, 4, 5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ConfigForSize(test.boardSize))
		})
	}
}

func TestFleetConfiguration_ShipLengths(t *testing.T) {
	// given
	fleet := ConfigForSize(10)

	// when
	lengths := fleet.ShipLengths()

	// then largest first, one entry per ship
	assert.Equal(t, []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}, lengths)
	assert.Len(t, lengths, fleet.TotalShips())
}

func TestFleetConfiguration_Totals(t *testing.T) {
	for _, c := range configurations {
		assert.Equal(t, c.FourDeck+c.ThreeDeck+c.TwoDeck+c.OneDeck, c.TotalShips())
		assert.Equal(t, 4*c.FourDeck+3*c.ThreeDeck+2*c.TwoDeck+c.OneDeck, c.TotalShipCells())
	}
}

func TestNewGameConfig(t *testing.T) {
	tests := []struct {
		name      string
		boardSize int
		shots     int
		want      GameConfig
	}{
		{name: "values inside the catalog pass through", boardSize: 12, shots: 3, want: GameConfig{12, 3}},
		{name: "undersized board clamps to the minimum", boardSize: 4, shots: 3, want: GameConfig{10, 3}},
		{name: "oversized board clamps to the maximum", boardSize: 99, shots: 3, want: GameConfig{26, 3}},
		{name: "non-positive shots fall back to the catalog default", boardSize: 14, shots: 0, want: GameConfig{14, 6}},
		{name: "negative shots fall back to the catalog default", boardSize: 10, shots: -2, want: GameConfig{10, 5}},
		{name: "excessive shots are capped", boardSize: 10, shots: 100, want: GameConfig{10, 26}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, NewGameConfig(test.boardSize, test.shots))
		})
	}
}

func TestGameConfig_Fleet(t *testing.T) {
	cfg := NewGameConfig(15, 0)
	assert.Equal(t, ConfigForSize(15), cfg.Fleet())
}
