package pattern

import (
	"image"
	"image/color"
)

// Size is the edge length of the LED matrix grid.
const Size = 5

// Pattern is an immutable named 5x5 on/off glyph for the LED matrix.
type Pattern struct {
	Name string
	Rows [Size][Size]uint8
}

// At reports whether the cell at (row, col) is lit.
func (p Pattern) At(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	return p.Rows[row][col] != 0
}

// Count returns the number of lit cells.
func (p Pattern) Count() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.Rows[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Image flattens the grid row-major into a Size*Size x 1 strip, for
// drawers that address the panel as a single run of pixels.
func (p Pattern) Image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, Size*Size, 1))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if p.Rows[r][c] != 0 {
				im.SetNRGBA(r*Size+c, 0, color.NRGBA{R: 0xFF, A: 0xFF})
			}
		}
	}
	return im
}

var (
	// Smiley signals that the program started.
	Smiley = Pattern{
		Name: "smiley",
		Rows: [Size][Size]uint8{
			{0, 1, 0, 1, 0},
			{0, 1, 0, 1, 0},
			{0, 0, 0, 0, 0},
			{1, 0, 0, 0, 1},
			{0, 1, 1, 1, 0},
		},
	}

	// Cross signals a failed display probe.
	Cross = Pattern{
		Name: "cross",
		Rows: [Size][Size]uint8{
			{1, 0, 0, 0, 1},
			{0, 1, 0, 1, 0},
			{0, 0, 1, 0, 0},
			{0, 1, 0, 1, 0},
			{1, 0, 0, 0, 1},
		},
	}

	// Check signals a successful display probe.
	Check = Pattern{
		Name: "check",
		Rows: [Size][Size]uint8{
			{0, 0, 0, 0, 1},
			{0, 0, 0, 1, 0},
			{1, 0, 1, 0, 0},
			{0, 1, 0, 0, 0},
			{0, 0, 0, 0, 0},
		},
	}

	// Heart signals the greeting was pushed to the panel.
	Heart = Pattern{
		Name: "heart",
		Rows: [Size][Size]uint8{
			{0, 1, 0, 1, 0},
			{1, 0, 1, 0, 1},
			{1, 0, 0, 0, 1},
			{0, 1, 0, 1, 0},
			{0, 0, 1, 0, 0},
		},
	}
)
