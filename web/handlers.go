// Package web serves the tiles of a sheet over HTTP in the layout the game
// loads them from (/tiles/<name>.png), cutting them on request.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"image"
	"image/png"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/tileslicer/sheet"
)

type Handler struct {
	sheetLock  sync.Mutex
	sourcePath string

	img     image.Image
	modTime time.Time
	size    int64
}

// NewHandler constructs a web handler for the sheet at sourcePath. The sheet
// is decoded on first use, and again whenever the file changes.
func NewHandler(sourcePath string) *Handler {
	return &Handler{sourcePath: sourcePath}
}

// sheet returns the decoded sheet along with the file info it was decoded
// from. Callers hold sheetLock.
func (h *Handler) sheet() (image.Image, os.FileInfo, error) {
	s, err := os.Stat(h.sourcePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "finding sheet")
	}
	if h.img != nil && s.ModTime().Equal(h.modTime) && s.Size() == h.size {
		return h.img, s, nil
	}

	f, err := os.Open(h.sourcePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening sheet")
	}
	defer f.Close()
	img, format, err := sheet.Decode(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decoding sheet %q", h.sourcePath)
	}

	glog.Infof("web: loaded %s sheet %q, %v", format, h.sourcePath, img.Bounds().Size())
	h.img, h.modTime, h.size = img, s.ModTime(), s.Size()
	return img, s, nil
}

func (h *Handler) sheetError(w http.ResponseWriter, err error) {
	if os.IsNotExist(errors.Cause(err)) {
		http.Error(w, "sheet not found", http.StatusNotFound)
		return
	}
	glog.Errorf("web: %v", err)
	http.Error(w, "sheet could not be read", http.StatusInternalServerError)
}

func etag(s os.FileInfo, name string) string {
	generation := 1 // bump if the way tiles are cut changes
	return fmt.Sprintf(`W/"tile:%d:%x:%x:%s:image/png"`, generation, s.Size(), s.ModTime().UnixNano(), name)
}

func (h *Handler) tileHandler(w http.ResponseWriter, r *http.Request) {
	h.sheetLock.Lock()
	defer h.sheetLock.Unlock()

	name := mux.Vars(r)["name"]
	if _, ok := sheet.Index(name); !ok {
		http.Error(w, "unknown tile", http.StatusNotFound)
		return
	}

	img, s, err := h.sheet()
	if err != nil {
		h.sheetError(w, err)
		return
	}

	tag := etag(s, name)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", tag)
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	tile, _ := sheet.TileByName(img, name)
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, tile.Image); err != nil {
		glog.Errorf("web: encoding tile %q: %v", name, err)
		http.Error(w, "tile could not be encoded", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Last-Modified", s.ModTime().UTC().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Source}}</title></head>
<body>
<p>{{.Source}}: {{.SheetSize.X}}x{{.SheetSize.Y}}, tiles {{.TileSize.X}}x{{.TileSize.Y}}</p>
<table>
{{range .Rows}}<tr>{{range .}}<td><a href="/tiles/{{.Name}}.png"><img src="{{.Src}}" alt="{{.Name}}" title="{{.Name}}"></a></td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

type indexTile struct {
	Name string
	Src  template.URL
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	h.sheetLock.Lock()
	defer h.sheetLock.Unlock()

	img, _, err := h.sheet()
	if err != nil {
		h.sheetError(w, err)
		return
	}

	data := struct {
		Source              string
		SheetSize, TileSize image.Point
		Rows                [][]indexTile
	}{
		Source:    h.sourcePath,
		SheetSize: img.Bounds().Size(),
		TileSize:  sheet.TileSize(img.Bounds()),
	}

	var row []indexTile
	for _, tile := range sheet.Tiles(img) {
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, tile.Image); err != nil {
			glog.Errorf("web: encoding tile %q: %v", tile.Name, err)
			http.Error(w, "tile could not be encoded", http.StatusInternalServerError)
			return
		}
		byt, err := dataurl.New(buf.Bytes(), "image/png").MarshalText()
		if err != nil {
			http.Error(w, "tile could not be encoded", http.StatusInternalServerError)
			return
		}

		row = append(row, indexTile{Name: tile.Name, Src: template.URL(byt)})
		if len(row) == sheet.GridSize {
			data.Rows = append(data.Rows, row)
			row = nil
		}
	}

	buf := &bytes.Buffer{}
	if err := indexTemplate.Execute(buf, data); err != nil {
		glog.Errorf("web: rendering index: %v", err)
		http.Error(w, "index could not be rendered", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/tiles/{name:[a-z]+}.png", h.tileHandler).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/", h.indexHandler).Methods(http.MethodGet, http.MethodHead)
}
