package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"badc0de.net/pkg/tileslicer/imageprint"
)

var (
	col      = flag.Bool("col", true, "whether to use colors when previewing")
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	iterm    = flag.Bool("iterm", false, "whether to print with iterm escape code instead of 24 bit")
	rasterm  = flag.Bool("rasterm", false, "whether to print with kitty, iterm or sixel graphics, whichever the terminal supports")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to shrink previews to fit the terminal")
)

func previewMode() imageprint.Mode {
	switch {
	case *rasterm:
		return imageprint.ModeRasTerm
	case !*col:
		return imageprint.ModeNoColor
	case *iterm:
		return imageprint.ModeITerm
	case *col256:
		return imageprint.Mode256Color
	default:
		return imageprint.Mode24bit
	}
}

func previewFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		glog.Errorf("preview: %v", err)
		return
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		glog.Errorf("preview: decoding %q: %v", path, err)
		return
	}

	fmt.Println(path)
	out(img, path)
}

func out(img image.Image, name string) {
	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if (termSize.WSXPixel != 0 && termSize.WSYPixel != 0) && (*rasterm || *iterm) {
				// Graphics protocols can take the image in native size, so only
				// shrink it if it would not fit on the screen.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
			} else {
				// Each pixel takes two columns.
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.Lanczos3)
			}
		}
	}

	p := &imageprint.Printer{Out: os.Stdout, Blanks: *blanks}
	p.Print(img, name, previewMode())
}
