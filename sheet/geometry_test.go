package sheet

import (
	"image"
	"image/color"
	"testing"

	"badc0de.net/pkg/tileslicer/ttesting"
)

func TestTileNames(t *testing.T) {
	want := []string{"carrot", "fire", "grass", "stump", "corn", "wool", "brush", "bucket", "milk"}

	names := TileNames()
	ttesting.AssertEqualInt(t, "len", len(names), TileCount)
	for i, name := range want {
		ttesting.AssertEqualString(t, name, names[i], name)
	}

	names[0] = "potato"
	ttesting.AssertEqualString(t, "copy", TileName(0), "carrot")
}

func TestIndex(t *testing.T) {
	for i, name := range TileNames() {
		got, ok := Index(name)
		if !ok || got != i {
			t.Errorf("Index(%q) = %d, %v; want %d, true", name, got, ok, i)
		}
	}
	if _, ok := Index("potato"); ok {
		t.Errorf("Index(%q) found a tile", "potato")
	}
}

func TestTileRect(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		i      int
		want   image.Rectangle
	}{
		{"carrot", image.Rect(0, 0, 300, 300), 0, image.Rect(0, 0, 100, 100)},
		{"grass", image.Rect(0, 0, 300, 300), 2, image.Rect(200, 0, 300, 100)},
		{"corn", image.Rect(0, 0, 300, 300), 4, image.Rect(100, 100, 200, 200)},
		{"brush", image.Rect(0, 0, 300, 300), 6, image.Rect(0, 200, 100, 300)},
		{"milk", image.Rect(0, 0, 300, 300), 8, image.Rect(200, 200, 300, 300)},
		{"milk-remainder", image.Rect(0, 0, 302, 302), 8, image.Rect(200, 200, 300, 300)},
		{"milk-uneven", image.Rect(0, 0, 302, 304), 8, image.Rect(200, 202, 300, 303)},
		{"wool-wide", image.Rect(0, 0, 144, 168), 5, image.Rect(96, 56, 144, 112)},
		{"offset-origin", image.Rect(10, 20, 310, 320), 4, image.Rect(110, 120, 210, 220)},
		{"tiny", image.Rect(0, 0, 2, 2), 8, image.Rect(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		ttesting.AssertEqualRect(t, tt.name, TileRect(tt.bounds, tt.i), tt.want)
	}
}

func TestTileRectOutOfRange(t *testing.T) {
	for _, i := range []int{-1, TileCount} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("TileRect(_, %d) did not panic", i)
				}
			}()
			TileRect(image.Rect(0, 0, 9, 9), i)
		}()
	}
}

func TestTileNameOutOfRange(t *testing.T) {
	for _, i := range []int{-1, TileCount} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("TileName(%d) did not panic", i)
				}
			}()
			TileName(i)
		}()
	}
}

func TestTileSize(t *testing.T) {
	ttesting.AssertEqualPoint(t, "exact", TileSize(image.Rect(0, 0, 300, 300)), image.Pt(100, 100))
	ttesting.AssertEqualPoint(t, "floor", TileSize(image.Rect(0, 0, 301, 305)), image.Pt(100, 101))
	ttesting.AssertEqualPoint(t, "offset", TileSize(image.Rect(5, 5, 14, 11)), image.Pt(3, 2))
}

// plainImage hides the SubImage method of the image it wraps.
type plainImage struct {
	image.Image
}

func TestCrop(t *testing.T) {
	src := ttesting.GridSheet(30, 30)
	r := image.Rect(20, 10, 30, 20)

	t.Run("subimage", func(t *testing.T) {
		got := Crop(src, r)
		ttesting.AssertEqualRect(t, "bounds", got.Bounds(), r)
		ttesting.AssertRegion(t, "pixels", got, r.Min)
	})

	t.Run("copy", func(t *testing.T) {
		got := Crop(plainImage{src}, r)
		ttesting.AssertEqualRect(t, "bounds", got.Bounds(), image.Rect(0, 0, 10, 10))
		ttesting.AssertRegion(t, "pixels", got, r.Min)
	})

	t.Run("clipped", func(t *testing.T) {
		got := Crop(src, image.Rect(25, 25, 40, 40))
		ttesting.AssertEqualRect(t, "bounds", got.Bounds(), image.Rect(25, 25, 30, 30))
	})
}

func TestTiles(t *testing.T) {
	src := ttesting.GridSheet(31, 32)
	tiles := Tiles(src)
	ttesting.AssertEqualInt(t, "count", len(tiles), TileCount)

	for i, tile := range tiles {
		ttesting.AssertEqualInt(t, tile.Name+"/index", tile.Index, i)
		ttesting.AssertEqualString(t, tile.Name+"/name", tile.Name, TileName(i))
		ttesting.AssertEqualPoint(t, tile.Name+"/size", tile.Image.Bounds().Size(), image.Pt(10, 10))
		ttesting.AssertRegion(t, tile.Name, tile.Image, tile.Rect.Min)

		b := tile.Image.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if color.NRGBAModel.Convert(tile.Image.At(x, y)) == ttesting.RemainderColor {
					t.Fatalf("%s: pixel (%d,%d) comes from the remainder", tile.Name, x, y)
				}
			}
		}
	}
}

func TestTileByName(t *testing.T) {
	src := ttesting.GridSheet(300, 300)

	tile, ok := TileByName(src, "grass")
	if !ok {
		t.Fatalf("grass not found")
	}
	ttesting.AssertEqualInt(t, "index", tile.Index, 2)
	ttesting.AssertEqualRect(t, "rect", tile.Rect, image.Rect(200, 0, 300, 100))
	ttesting.AssertRegion(t, "pixels", tile.Image, image.Pt(200, 0))

	if _, ok := TileByName(src, "potato"); ok {
		t.Errorf("potato found")
	}
}
