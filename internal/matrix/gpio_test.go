package matrix

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/coreman2200/boardcheck/internal/pattern"
)

func testGPIO() *GPIO {
	m := &GPIO{log: zerolog.Nop()}
	for i := 0; i < pattern.Size; i++ {
		m.rows[i] = &gpiotest.Pin{N: fmt.Sprintf("ROW%d", i)}
		m.cols[i] = &gpiotest.Pin{N: fmt.Sprintf("COL%d", i)}
	}
	return m
}

func TestClearParksPanelDark(t *testing.T) {
	m := testGPIO()
	m.Clear()
	for _, p := range m.rows {
		assert.Equal(t, gpio.Low, p.(*gpiotest.Pin).L)
	}
	for _, p := range m.cols {
		assert.Equal(t, gpio.High, p.(*gpiotest.Pin).L)
	}
}

func TestShowBlocksForDurationAndDeenergizesRows(t *testing.T) {
	m := testGPIO()
	const hold = 20 * time.Millisecond

	start := time.Now()
	m.Show(pattern.Smiley, hold)
	assert.GreaterOrEqual(t, time.Since(start), hold)

	// No background refresh: every row source must be off once Show returns.
	for _, p := range m.rows {
		assert.Equal(t, gpio.Low, p.(*gpiotest.Pin).L)
	}
}

func TestNewGPIORejectsWrongPinCount(t *testing.T) {
	_, err := NewGPIO([]string{"ROW0"}, []string{"COL0"}, zerolog.Nop())
	assert.Error(t, err)
}
