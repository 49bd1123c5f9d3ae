package matrix

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/coreman2200/boardcheck/internal/pattern"
)

// rowHold is how long each row stays energized during a scan pass.
const rowHold = 2 * time.Millisecond

// GPIO multiplexes the matrix over 5 row pins (sources) and 5 column
// pins (sinks). A cell lights when its row is high and its column low.
type GPIO struct {
	rows [pattern.Size]gpio.PinIO
	cols [pattern.Size]gpio.PinIO
	log  zerolog.Logger
}

// NewGPIO resolves the named pins through the host registry and parks the
// panel dark. Pin resolution failure means the board does not expose the
// matrix; callers fall back to the console driver.
func NewGPIO(rowNames, colNames []string, log zerolog.Logger) (*GPIO, error) {
	if len(rowNames) != pattern.Size || len(colNames) != pattern.Size {
		return nil, errors.Errorf("matrix needs %d row and %d column pins", pattern.Size, pattern.Size)
	}
	m := &GPIO{log: log}
	for i, name := range rowNames {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, errors.Errorf("row pin %q not found", name)
		}
		m.rows[i] = p
	}
	for i, name := range colNames {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, errors.Errorf("column pin %q not found", name)
		}
		m.cols[i] = p
	}
	m.Clear()
	return m, nil
}

// Show scans the pattern row by row until d has elapsed.
func (m *GPIO) Show(p pattern.Pattern, d time.Duration) {
	m.log.Debug().Str("pattern", p.Name).Dur("for", d).Msg("matrix show")
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		for r := 0; r < pattern.Size; r++ {
			for c := 0; c < pattern.Size; c++ {
				lvl := gpio.High
				if p.At(r, c) {
					lvl = gpio.Low
				}
				if err := m.cols[c].Out(lvl); err != nil {
					m.log.Debug().Err(err).Msg("column write failed")
				}
			}
			if err := m.rows[r].Out(gpio.High); err != nil {
				m.log.Debug().Err(err).Msg("row write failed")
			}
			time.Sleep(rowHold)
			if err := m.rows[r].Out(gpio.Low); err != nil {
				m.log.Debug().Err(err).Msg("row write failed")
			}
		}
	}
}

// Clear drives every row low and every column high.
func (m *GPIO) Clear() {
	for _, p := range m.rows {
		if p != nil {
			_ = p.Out(gpio.Low)
		}
	}
	for _, p := range m.cols {
		if p != nil {
			_ = p.Out(gpio.High)
		}
	}
}

// Close parks the panel. The pins stay registered with the host.
func (m *GPIO) Close() error {
	m.Clear()
	return nil
}
