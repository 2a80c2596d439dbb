package ttesting

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

// RemainderColor paints the pixels of a grid sheet that belong to no tile.
// GridColor does not return it for sheets narrower than 3840 pixels.
var RemainderColor = color.NRGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}

// GridColor returns a colour unique to the pixel at (x, y), for x and y
// below 4096.
func GridColor(x, y int) color.NRGBA {
	return color.NRGBA{
		R: uint8(x),
		G: uint8(y),
		B: uint8(x>>8&0x0F | (y>>8&0x0F)<<4),
		A: 0xFF,
	}
}

// GridSheet builds a w×h sheet coloured with GridColor. Pixels past the
// largest multiple of three on either axis get RemainderColor instead.
func GridSheet(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	usedW, usedH := w/3*3, h/3*3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x >= usedW || y >= usedH {
				img.SetNRGBA(x, y, RemainderColor)
				continue
			}
			img.SetNRGBA(x, y, GridColor(x, y))
		}
	}
	return img
}

// WriteGridSheet writes GridSheet(w, h) to path as a PNG.
func WriteGridSheet(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating sheet: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, GridSheet(w, h)); err != nil {
		t.Fatalf("encoding sheet: %v", err)
	}
}

// ReadPNG decodes the PNG at path.
func ReadPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	return img
}

// AssertRegion checks that every pixel of tile matches the GridColor of the
// sheet pixel at the same offset from origin.
func AssertRegion(t *testing.T, name string, tile image.Image, origin image.Point) {
	t.Helper()
	b := tile.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := color.NRGBAModel.Convert(tile.At(x, y)).(color.NRGBA)
			sx, sy := origin.X+x-b.Min.X, origin.Y+y-b.Min.Y
			if want := GridColor(sx, sy); got != want {
				t.Fatalf("%s: pixel (%d,%d) = %v; want sheet pixel (%d,%d) = %v", name, x, y, got, sx, sy, want)
			}
		}
	}
}
