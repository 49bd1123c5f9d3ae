package matrix

import (
	"image"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	"github.com/coreman2200/boardcheck/internal/pattern"
)

// Console renders the flattened pattern as a strip of ANSI cells on the
// terminal. Used when the matrix pins are unavailable.
type Console struct {
	drawer display.Drawer
	log    zerolog.Logger
}

func NewConsole(log zerolog.Logger) *Console {
	return &Console{
		drawer: screen.New(pattern.Size * pattern.Size),
		log:    log,
	}
}

func (m *Console) Show(p pattern.Pattern, d time.Duration) {
	m.log.Debug().Str("pattern", p.Name).Dur("for", d).Msg("matrix show")
	if err := m.drawer.Draw(m.drawer.Bounds(), p.Image(), image.Point{}); err != nil {
		m.log.Error().Err(err).Msg("console draw failed")
	}
	time.Sleep(d)
}

func (m *Console) Clear() {
	if err := m.drawer.Halt(); err != nil {
		m.log.Error().Err(err).Msg("console clear failed")
	}
}

func (m *Console) Close() error {
	return m.drawer.Halt()
}
