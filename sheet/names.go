package sheet

import "fmt"

const (
	// GridSize is the number of cells along each axis of a sheet.
	GridSize = 3
	// TileCount is the number of cells in a sheet.
	TileCount = GridSize * GridSize
)

// tileNames must stay in the same order as the cells of the sheet.
var tileNames = [TileCount]string{
	"carrot", "fire", "grass",
	"stump", "corn", "wool",
	"brush", "bucket", "milk",
}

// TileNames returns a copy of the tile names in row-major grid order.
func TileNames() []string {
	names := make([]string, TileCount)
	copy(names, tileNames[:])
	return names
}

// TileName returns the name of the cell at grid index i. It panics if i is
// outside [0,TileCount).
func TileName(i int) string {
	if i < 0 || i >= TileCount {
		panic(fmt.Sprintf("sheet: tile index %d out of range [0,%d)", i, TileCount))
	}
	return tileNames[i]
}

// Index returns the grid index of the named tile.
func Index(name string) (int, bool) {
	for i, n := range tileNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
