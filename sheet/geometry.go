package sheet

import (
	"fmt"
	"image"
)

// TileSize returns the size of a single cell of a sheet with the passed
// bounds.
func TileSize(bounds image.Rectangle) image.Point {
	return image.Pt(bounds.Dx()/GridSize, bounds.Dy()/GridSize)
}

// TileRect returns the rectangle covered by the cell at grid index i. As with
// any image.Rectangle, Max is exclusive.
//
// The rectangle is offset by bounds.Min, so it addresses the same pixels for
// decoders that return images with a non-zero origin.
func TileRect(bounds image.Rectangle, i int) image.Rectangle {
	if i < 0 || i >= TileCount {
		panic(fmt.Sprintf("sheet: tile index %d out of range [0,%d)", i, TileCount))
	}
	size := TileSize(bounds)
	row, col := i/GridSize, i%GridSize

	left := bounds.Min.X + col*size.X
	top := bounds.Min.Y + row*size.Y
	return image.Rect(left, top, left+size.X, top+size.Y)
}
