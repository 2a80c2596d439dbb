package paths

import (
	"flag"
)

// SetupSourceFlag registers --source, defaulting to DefaultSource.
func SetupSourceFlag(flagPtr *string) {
	flag.StringVar(flagPtr, "source", DefaultSource, "Path to the 3x3 tile sheet")
}

// SetupOutputDirFlag registers --output_dir, defaulting to DefaultOutputDir.
func SetupOutputDirFlag(flagPtr *string) {
	flag.StringVar(flagPtr, "output_dir", DefaultOutputDir, "Directory the tiles are written to")
}

// SourceFromArgs returns the sheet path passed as the first positional
// argument, or DefaultSource if there is none. Any further arguments are
// ignored.
func SourceFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return DefaultSource
}
