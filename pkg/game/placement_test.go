package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YevhenPoshtak/seabattle/pkg/catalog"
)

func TestBoard_CanPlace(t *testing.T) {
	tests := []struct {
		name        string
		x, y        int
		orientation Orientation
		length      int
		want        bool
	}{
		{name: "horizontal ship inside the grid", x: 0, y: 0, orientation: Horizontal, length: 4, want: true},
		{name: "vertical ship inside the grid", x: 9, y: 6, orientation: Vertical, length: 4, want: true},
		{name: "horizontal ship running off the right edge", x: 7, y: 0, orientation: Horizontal, length: 4, want: false},
		{name: "vertical ship running off the bottom edge", x: 0, y: 7, orientation: Vertical, length: 4, want: false},
		{name: "origin outside the grid", x: -1, y: 0, orientation: Horizontal, length: 2, want: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// given
			board := InitBoard(10, RoleHost)

			// when
			got := board.CanPlace(test.x, test.y, test.orientation, test.length)

			// then
			assert.Equal(t, test.want, got)
		})
	}

	t.Run("overlap with an existing ship", func(t *testing.T) {
		// given
		board := InitBoard(10, RoleHost)
		require.True(t, board.Place(3, 3, Horizontal, 3, 'A'))

		// then crossing the existing ship is rejected
		assert.False(t, board.CanPlace(4, 1, Vertical, 4))
		// and placing right next to it is allowed
		assert.True(t, board.CanPlace(3, 4, Horizontal, 3))
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("commits cells and registers the ship", func(t *testing.T) {
		// given
		board := InitBoard(10, RoleHost)

		// when
		ok := board.Place(2, 3, Vertical, 3, 'A')

		// then
		require.True(t, ok)
		require.Len(t, board.Ships(), 1)
		for _, p := range []Position{{2, 3}, {2, 4}, {2, 5}} {
			assert.Equal(t, Occupied, board.State(p.X, p.Y))
		}
		assert.Equal(t, 3, board.Ships()[0].Length())
	})

	t.Run("rejected placement mutates nothing", func(t *testing.T) {
		// given
		board := InitBoard(10, RoleHost)
		require.True(t, board.Place(2, 3, Vertical, 3, 'A'))

		// when
		ok := board.Place(2, 5, Horizontal, 2, 'B')

		// then
		assert.False(t, ok)
		assert.Len(t, board.Ships(), 1)
		assert.Equal(t, Water, board.State(3, 5))
	})

	t.Run("zero length is rejected", func(t *testing.T) {
		// given
		board := InitBoard(10, RoleHost)

		// then
		assert.False(t, board.Place(0, 0, Horizontal, 0, 'A'))
	})
}

func TestRandomizeFleet(t *testing.T) {
	t.Run("places the full catalog fleet without overlap", func(t *testing.T) {
		fleet := catalog.ConfigForSize(10)

		for seed := int64(0); seed < 10; seed++ {
			// given
			board := InitBoard(10, RoleHost)

			// when
			randomizeFleet(board, fleet, rand.New(rand.NewSource(seed)))

			// then
			require.Len(t, board.Ships(), fleet.TotalShips())
			occupied := 0
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					if board.State(x, y) == Occupied {
						occupied++
					}
				}
			}
			assert.Equal(t, fleet.TotalShipCells(), occupied)
		}
	})

	t.Run("clears an earlier fleet before placing", func(t *testing.T) {
		// given
		fleet := catalog.ConfigForSize(10)
		board := InitBoard(10, RoleGuest)
		require.True(t, board.Place(0, 0, Horizontal, 4, 'Z'))

		// when
		randomizeFleet(board, fleet, rand.New(rand.NewSource(7)))

		// then the stale ship is gone, only the catalog fleet remains
		assert.Len(t, board.Ships(), fleet.TotalShips())
	})
}
