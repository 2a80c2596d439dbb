package sheet

import (
	"image"
	"image/draw"

	"github.com/bradfitz/iter"
)

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Tile is one named cell cut out of a sheet.
type Tile struct {
	Index int
	Name  string
	// Rect is the cell's rectangle in the coordinates of the sheet.
	Rect  image.Rectangle
	Image image.Image
}

// Crop returns the part of img inside r.
//
// Images implementing SubImage (all of the standard library ones) share
// pixels with img. Anything else is copied into a new *image.NRGBA whose
// origin is (0,0).
func Crop(img image.Image, r image.Rectangle) image.Image {
	r = r.Intersect(img.Bounds())
	if si, ok := img.(subImager); ok {
		return si.SubImage(r)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

// Tiles cuts all nine cells out of img, in grid order.
func Tiles(img image.Image) []Tile {
	bounds := img.Bounds()
	tiles := make([]Tile, 0, TileCount)
	for i := range iter.N(TileCount) {
		r := TileRect(bounds, i)
		tiles = append(tiles, Tile{
			Index: i,
			Name:  tileNames[i],
			Rect:  r,
			Image: Crop(img, r),
		})
	}
	return tiles
}

// TileByName cuts the named cell out of img.
func TileByName(img image.Image, name string) (Tile, bool) {
	i, ok := Index(name)
	if !ok {
		return Tile{}, false
	}
	r := TileRect(img.Bounds(), i)
	return Tile{Index: i, Name: name, Rect: r, Image: Crop(img, r)}, true
}
