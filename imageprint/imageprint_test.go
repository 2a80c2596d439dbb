package imageprint

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"badc0de.net/pkg/tileslicer/ttesting"
)

func strip() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 0xFF})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	// (2,0) stays transparent.
	return img
}

func TestPrintNoColor(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Out: buf}
	p.Print(strip(), "strip.png", ModeNoColor)
	ttesting.AssertEqualString(t, "art", buf.String(), "..##  \n")

	buf.Reset()
	p.Blanks = true
	p.Print(strip(), "strip.png", ModeNoColor)
	ttesting.AssertEqualString(t, "blanks", buf.String(), "      \n")
}

func TestPrint24bit(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Out: buf, Blanks: true}
	p.Print(strip(), "strip.png", Mode24bit)

	want := "\x1b[48;2;0;0;0m  \x1b[0m" +
		"\x1b[48;2;255;255;255m  \x1b[0m" +
		"\x1b[0m  " +
		"\x1b[0m\n"
	ttesting.AssertEqualString(t, "escapes", buf.String(), want)
}

func TestPrintRows(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Out: buf}
	p.PrintNoColor(ttesting.GridSheet(4, 3).SubImage(image.Rect(1, 1, 3, 3)))
	ttesting.AssertEqualInt(t, "rows", strings.Count(buf.String(), "\n"), 2)
	ttesting.AssertEqualInt(t, "width", len(strings.Split(buf.String(), "\n")[0]), 4)
}

func TestPrintITermEscape(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Out: buf}
	p.printITerm(strip(), "carrot.png")

	out := buf.String()
	if !strings.HasPrefix(out, "\n\033]1337;File=name=Y2Fycm90LnBuZw==;inline=1;") {
		t.Errorf("unexpected escape start: %q", out)
	}
	if !strings.Contains(out, "width=3px;height=1px:") || !strings.HasSuffix(out, "\a\n") {
		t.Errorf("unexpected escape: %q", out)
	}
}
