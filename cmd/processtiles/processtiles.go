// Command processtiles slices a 3x3 tile sheet into the nine tile images the
// game loads from public/tiles.
//
// Usage:
//
//	processtiles [flags] [sheet.png]
//
// The sheet defaults to tiles.png in the working directory. Problems with the
// sheet are reported on stdout; they do not change the exit status.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/tileslicer/paths"
	"badc0de.net/pkg/tileslicer/sheet"
)

var (
	maxTileSize = flag.String("max_tile_size", "", "if set as WxH, shrink each tile to fit within it before saving")
	preview     = flag.Bool("preview", false, "print each tile on the terminal after saving it")

	outputDir string
)

// parseSize parses WxH. An empty string is the zero point.
func parseSize(s string) (image.Point, error) {
	if s == "" {
		return image.Point{}, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, errors.Errorf("size %q is not WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return image.Point{}, errors.Wrapf(err, "size %q: width", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return image.Point{}, errors.Wrapf(err, "size %q: height", s)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, errors.Errorf("size %q must be positive", s)
	}
	return image.Pt(w, h), nil
}

func checkCodecs() {
	if err := sheet.CheckCodecs(); err != nil {
		fmt.Println("The PNG codec needed to read and write tiles is not available.")
		fmt.Println("Rebuild processtiles with a Go toolchain that includes image/png:")
		fmt.Println("    go install badc0de.net/pkg/tileslicer/cmd/processtiles@latest")
		glog.Exitf("codec check failed: %v", err)
	}
}

func main() {
	paths.SetupOutputDirFlag(&outputDir)
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	checkCodecs()

	size, err := parseSize(*maxTileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "--max_tile_size: %v\n", err)
		flag.Usage()
		glog.Flush()
		os.Exit(2)
	}

	s := &sheet.Slicer{Out: os.Stdout, MaxTileSize: size}
	res, err := s.ProcessTiles(paths.SourceFromArgs(flag.Args()), outputDir)
	if err != nil {
		// Already reported by the slicer.
		return
	}

	if *preview {
		for _, path := range res.Paths {
			previewFile(path)
		}
	}
}
