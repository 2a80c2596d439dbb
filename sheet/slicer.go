package sheet

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"badc0de.net/pkg/tileslicer/paths"
)

// ErrSourceMissing is returned (wrapped) by ProcessTiles when there is no
// sheet at the source path. Nothing is written in that case.
var ErrSourceMissing = errors.New("source sheet not found")

// Slicer cuts a sheet into tile files, describing its progress on Out.
type Slicer struct {
	// Out receives the human readable progress and diagnostics. Defaults
	// to os.Stdout.
	Out io.Writer

	// MaxTileSize, when both coordinates are positive, shrinks every tile
	// to fit within it before saving. Aspect ratio is preserved and tiles
	// that already fit are saved as they are.
	MaxTileSize image.Point
}

// Result describes a run of ProcessTiles.
type Result struct {
	SheetSize image.Point
	TileSize  image.Point

	// Paths lists the files written, in grid order. After a failure it
	// holds the tiles that made it to disk.
	Paths []string

	// CreatedDir is set if the output directory did not exist before.
	CreatedDir bool
}

// ProcessTiles slices the sheet at sourcePath into outputDir using a Slicer
// that reports to os.Stdout.
func ProcessTiles(sourcePath, outputDir string) (*Result, error) {
	return (&Slicer{}).ProcessTiles(sourcePath, outputDir)
}

func (s *Slicer) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

// ProcessTiles slices the sheet at sourcePath and writes each of the nine
// tiles to outputDir as <name>.png, replacing existing files.
//
// If sourcePath does not exist, this is reported on Out and an error wrapping
// ErrSourceMissing is returned; the output directory is not touched. Any
// other failure is reported on Out as well and stops the run: tiles written
// up to that point are left in place.
func (s *Slicer) ProcessTiles(sourcePath, outputDir string) (*Result, error) {
	w := s.out()

	if !paths.Exists(sourcePath) {
		glog.V(1).Infof("sheet %q not found", sourcePath)
		fmt.Fprintf(w, "Error: cannot find file '%s'\n", sourcePath)
		fmt.Fprintf(w, "Rename your 3x3 tile sheet to '%s' and place it in the project root.\n", paths.DefaultSource)
		return nil, errors.Wrapf(ErrSourceMissing, "%q", sourcePath)
	}

	res := &Result{}
	if err := s.process(w, res, sourcePath, outputDir); err != nil {
		glog.Errorf("processing %q into %q: %v", sourcePath, outputDir, err)
		fmt.Fprintf(w, "Error while processing: %v\n", err)
		return res, err
	}

	fmt.Fprintf(w, "\nAll tiles processed.\n")
	fmt.Fprintf(w, "Enable 'use image assets' in the game settings to see them.\n")
	return res, nil
}

func (s *Slicer) process(w io.Writer, res *Result, sourcePath, outputDir string) error {
	created, err := paths.EnsureDir(outputDir)
	if err != nil {
		return err
	}
	if created {
		res.CreatedDir = true
		fmt.Fprintf(w, "Created directory: %s\n", outputDir)
	}

	img, err := decodeFile(sourcePath)
	if err != nil {
		return err
	}

	res.SheetSize = img.Bounds().Size()
	res.TileSize = TileSize(img.Bounds())
	fmt.Fprintf(w, "Image size: %dx%d\n", res.SheetSize.X, res.SheetSize.Y)
	fmt.Fprintf(w, "Tile size: %dx%d\n", res.TileSize.X, res.TileSize.Y)

	for _, t := range Tiles(img) {
		path := filepath.Join(outputDir, t.Name+".png")
		if err := s.writeTile(path, t.Image); err != nil {
			return errors.Wrapf(err, "tile %q", t.Name)
		}
		glog.V(1).Infof("tile %d %q: %v -> %s", t.Index, t.Name, t.Rect, path)
		res.Paths = append(res.Paths, path)
		fmt.Fprintf(w, "Saved: %s\n", path)
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sheet %q", path)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding sheet %q", path)
	}
	glog.V(1).Infof("decoded %s sheet %q: %v", format, path, img.Bounds())
	return img, nil
}

// writeTile encodes img before creating path, so a tile that cannot be
// encoded leaves no file behind. A file that cannot be written in full is
// removed again.
func (s *Slicer) writeTile(path string, img image.Image) error {
	if s.MaxTileSize.X > 0 && s.MaxTileSize.Y > 0 {
		img = resize.Thumbnail(uint(s.MaxTileSize.X), uint(s.MaxTileSize.Y), img, resize.Lanczos3)
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return errors.Wrapf(err, "encoding %q", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating tile file")
	}
	_, err = f.Write(buf.Bytes())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "writing %q", path)
	}
	return nil
}
