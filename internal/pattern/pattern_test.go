package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/coreman2200/boardcheck/internal/pattern"
)

var TestPatternHasExpectedShape = []struct {
	P     Pattern
	Name  string
	Count int
}{
	{Smiley, "smiley", 9},
	{Cross, "cross", 9},
	{Check, "check", 5},
	{Heart, "heart", 10},
}

func TestPatternShapes(t *testing.T) {
	for _, v := range TestPatternHasExpectedShape {
		t.Run(v.Name, func(t *testing.T) {
			assert.Equal(t, v.Name, v.P.Name)
			assert.Equal(t, v.Count, v.P.Count())
		})
	}
}

func TestAtMatchesRows(t *testing.T) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			assert.Equal(t, Cross.Rows[r][c] != 0, Cross.At(r, c))
		}
	}
	assert.False(t, Cross.At(-1, 0))
	assert.False(t, Cross.At(0, Size))
}

func TestImageFlattensRowMajor(t *testing.T) {
	im := Heart.Image()
	assert.Equal(t, Size*Size, im.Rect.Max.X)
	assert.Equal(t, 1, im.Rect.Max.Y)

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			px := im.NRGBAAt(r*Size+c, 0)
			assert.Equal(t, Heart.At(r, c), px.A != 0)
		}
	}
}
