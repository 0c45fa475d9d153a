package pptx

import "math"

// English Metric Units: 914400 per inch. Every shape position in every
// part goes through Inches, so parts that must agree on the shared
// canvas cannot drift apart.
const emuPerInch = 914400

// Canvas dimensions in EMU: a 16:9 slide and the standard notes page.
const (
	canvasWidth  = 12192000
	canvasHeight = 6858000
	notesWidth   = 6858000
	notesHeight  = 9144000
)

// Inches converts a measurement in inches to EMU
func Inches(v float64) int64 {
	return int64(math.Round(v * emuPerInch))
}
