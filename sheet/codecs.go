package sheet

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode decodes a sheet in any of the registered formats (png, jpeg, gif,
// bmp and webp) and returns the format name along with the image.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// CheckCodecs makes sure a PNG can be encoded and then recognized and decoded
// again through image.Decode. The slicer cannot do anything useful if this
// fails.
func CheckCodecs() error {
	probe := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	probe.SetNRGBA(0, 0, color.NRGBA{R: 0xC0, G: 0xFF, B: 0xEE, A: 0xFF})

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, probe); err != nil {
		return errors.Wrap(err, "encoding probe png")
	}
	img, format, err := image.Decode(buf)
	if err != nil {
		return errors.Wrap(err, "decoding probe png")
	}
	if format != "png" {
		return errors.Errorf("probe png decoded as %q", format)
	}
	if img.Bounds().Size() != probe.Bounds().Size() {
		return errors.Errorf("probe png decoded as %v, want %v", img.Bounds().Size(), probe.Bounds().Size())
	}
	return nil
}
