// Package imageprint prints tiles on a terminal. UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"os"

	"github.com/gookit/color"
)

// Mode selects how a Printer draws an image.
type Mode int

const (
	// Mode24bit changes the background with 24bit color escape sequences.
	Mode24bit Mode = iota
	// Mode256Color leaves picking the escape sequences to gookit/color.
	Mode256Color
	// ModeNoColor prints shading characters without any escapes.
	ModeNoColor
	// ModeITerm passes the image as a PNG file using iTerm2's escape code.
	ModeITerm
	// ModeRasTerm picks kitty, iTerm or sixel graphics, whichever the
	// terminal advertises.
	ModeRasTerm
)

// Printer draws images to Out, or os.Stdout if Out is nil.
type Printer struct {
	Out io.Writer

	// Blanks prints colored blanks rather than some bad ascii art. It only
	// makes sense to disable this in ModeNoColor.
	Blanks bool
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Print draws i in the passed mode. name is announced to terminals that
// receive the image as a file.
func (p *Printer) Print(i image.Image, name string, mode Mode) {
	switch mode {
	case ModeRasTerm:
		p.PrintRasTerm(i)
	case ModeITerm:
		p.PrintITerm(i, name)
	case ModeNoColor:
		p.PrintNoColor(i)
	case Mode256Color:
		p.Print256Color(i)
	default:
		p.Print24bit(i)
	}
}

func (p *Printer) shade(col ic.Color, escapesTrueColor, noColor bool) {
	w := p.out()
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if noColor {
			fmt.Fprint(w, "  ")
		} else {
			fmt.Fprint(w, "\x1b[0m  ")
		}
		return
	}

	cell := "  "
	if !p.Blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch {
	case noColor:
		fmt.Fprint(w, cell)
	case escapesTrueColor:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, b, cell)
	default:
		fmt.Fprint(w, color.RGB(r, g, b, true).Sprint(cell))
	}
}

func (p *Printer) rows(i image.Image, escapesTrueColor, noColor bool) {
	w := p.out()
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			p.shade(i.At(x, y), escapesTrueColor, noColor)
		}
		if !noColor {
			fmt.Fprint(w, "\x1b[0m")
		}
		fmt.Fprint(w, "\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func (p *Printer) Print256Color(i image.Image) {
	p.rows(i, false, false)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func (p *Printer) Print24bit(i image.Image) {
	p.rows(i, true, false)
}

// PrintNoColor draws an image without using color escape sequences.
func (p *Printer) PrintNoColor(i image.Image) {
	p.rows(i, false, true)
}

// PrintITerm draws an image using iTerm2's escape sequences. It prints
// nothing on terminals that are not known to understand them.
//
// https://www.iterm2.com/documentation-images.html
func (p *Printer) PrintITerm(i image.Image, fn string) {
	if !isTermItermWez() {
		return
	}
	p.printITerm(i, fn)
}

func (p *Printer) printITerm(i image.Image, fn string) {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	png.Encode(bEnc, i)
	bEnc.Close()
	fmt.Fprintf(p.out(), "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n", name, b.Len(), i.Bounds().Size().X, i.Bounds().Size().Y, b.String())
}
