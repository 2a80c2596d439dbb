//go:build windows

package imageprint

import (
	"flag"
	"image"
)

var (
	forceITerm = flag.Bool("force_iterm", false, "value to force iterm detection to take (implementation variant: no rasterm)")
)

func isTermItermWez() bool {
	return *forceITerm
}

// PrintRasTerm falls back to Print24bit, as rasterm is not used on windows.
func (p *Printer) PrintRasTerm(i image.Image) {
	p.Print24bit(i)
}
