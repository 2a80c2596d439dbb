// Command tileweb serves the tiles of a sheet at /tiles/<name>.png, cutting
// them from the sheet on every request, so the game can be tried against a
// new sheet without running processtiles.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"badc0de.net/pkg/tileslicer/paths"
	"badc0de.net/pkg/tileslicer/web"
)

var (
	listenAddress = flag.String("listen_address", ":8080", "http listen address for tileweb")

	sourcePath string
)

func main() {
	paths.SetupSourceFlag(&sourcePath)
	flagutil.Parse()

	if !paths.Exists(sourcePath) {
		glog.Warningf("sheet %q does not exist yet; tiles will 404 until it does", sourcePath)
	}

	r := mux.NewRouter()
	web.NewHandler(sourcePath).RegisterRoutes(r)

	glog.Infof("serving tiles of %q on %s", sourcePath, *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stdout, r)))
}
