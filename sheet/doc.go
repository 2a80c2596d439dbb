// Package sheet slices a 3x3 tile sheet into nine named tiles.
//
// A sheet is partitioned with floor division. When the width or height is
// not a multiple of three, the remainder columns on the right and rows at
// the bottom belong to no tile and are silently dropped.
//
// The tile names follow the row-major reading order of the grid:
//
//	carrot fire   grass
//	stump  corn   wool
//	brush  bucket milk
package sheet
