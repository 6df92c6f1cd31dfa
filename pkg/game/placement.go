package game

import (
	"math/rand"
	"sort"
	"time"

	"github.com/YevhenPoshtak/seabattle/pkg/catalog"
)

const maxPlacementAttempts = 1000

//CanPlace reports whether a ship of the given length can be placed with
//its origin at (x, y) extending in the given orientation: every cell must
//be in bounds and still Water.
func (b *Board) CanPlace(x, y int, orientation Orientation, length int) bool {
	for i := 0; i < length; i++ {
		cx, cy := x, y
		if orientation == Vertical {
			cy += i
		} else {
			cx += i
		}
		if b.outOfBounds(cx, cy) || b.cells[cy][cx].State != Water {
			return false
		}
	}
	return true
}

//Place validates and commits a ship onto the board. On success every cell
//of the ship is marked occupied and the ship is registered; on failure
//nothing is mutated and false is returned.
func (b *Board) Place(x, y int, orientation Orientation, length int, symbol rune) bool {
	if length <= 0 || !b.CanPlace(x, y, orientation, length) {
		return false
	}

	ship := Ship{
		id:          len(b.ships),
		symbol:      symbol,
		length:      length,
		originX:     x,
		originY:     y,
		orientation: orientation,
	}
	b.ships = append(b.ships, ship)

	for _, p := range ship.Positions() {
		b.cells[p.Y][p.X] = Cell{State: Occupied, ShipID: ship.id}
	}
	return true
}

//RandomizeFleet clears the board and places the whole fleet at random,
//largest ships first. Each ship gets a bounded number of attempts; when
//one ship cannot be placed the whole board restarts from empty rather
//than backtracking. Boards sized to the catalog always fit their fleets,
//so the restart loop terminates in practice.
func RandomizeFleet(b *Board, fleet catalog.FleetConfiguration) {
	randomizeFleet(b, fleet, placementRand(b.role))
}

func randomizeFleet(b *Board, fleet catalog.FleetConfiguration, rng *rand.Rand) {
	lengths := fleet.ShipLengths()
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

restart:
	for {
		b.Reset()
		for i, length := range lengths {
			placed := false
			for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
				x := rng.Intn(b.size)
				y := rng.Intn(b.size)
				orientation := Horizontal
				if rng.Intn(2) == 1 {
					orientation = Vertical
				}
				if b.Place(x, y, orientation, length, shipSymbol(i)) {
					placed = true
					break
				}
			}
			if !placed {
				continue restart
			}
		}
		return
	}
}

func shipSymbol(index int) rune {
	return rune('A' + index%26)
}

//placementRand seeds a separate generator per role so host and guest
//never randomize identical boards from the same clock tick.
func placementRand(role Role) *rand.Rand {
	seed := time.Now().UnixNano()
	if role == RoleHost {
		seed += 3000
	}
	return rand.New(rand.NewSource(seed))
}
