// Package oled wraps the external SSD1306 panel behind a buffered frame.
//
// The display operates in buffered-graphics mode: Clear and DrawText only
// mutate the in-memory frame, Flush commits it to the panel. Init performs
// the controller handshake and is the one step that can fail.
package oled

import (
	"image"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Panel geometry and bus speed are fixed for this board.
const (
	Width  = 128
	Height = 32

	BusSpeed = 100 * physic.KiloHertz
)

// Display owns the I2C bus it is constructed over. Once constructed, the
// raw bus must not be used by anyone else.
type Display struct {
	bus  i2c.Bus
	dev  *ssd1306.Dev
	buf  *image1bit.VerticalLSB
	face font.Face
	log  zerolog.Logger
}

// New takes ownership of bus and configures it to the panel's clock rate.
// Speed configuration is best-effort: the sysfs backend rejects SetSpeed
// without a host hook and the bus is still usable at its default rate.
// The controller itself is untouched until Init.
func New(bus i2c.Bus, log zerolog.Logger) *Display {
	if err := bus.SetSpeed(BusSpeed); err != nil {
		log.Warn().Err(err).Msg("i2c bus speed not configurable; using bus default")
	}
	return &Display{
		bus: bus,
		// Face7x13 has ascent 11, so the fixed baseline at y=10 clips
		// the top pixel row of the greeting.
		face: basicfont.Face7x13,
		log:  log,
	}
}

// Init runs the controller handshake and allocates the frame buffer.
// Geometry is fixed at 128x32, unrotated, sequential COM wiring.
func (d *Display) Init() error {
	opts := ssd1306.DefaultOpts
	opts.W = Width
	opts.H = Height
	opts.Rotated = false
	opts.Sequential = true
	dev, err := ssd1306.NewI2C(d.bus, &opts)
	if err != nil {
		return errors.Wrap(err, "ssd1306 handshake")
	}
	d.dev = dev
	d.buf = image1bit.NewVerticalLSB(dev.Bounds())
	d.log.Debug().Str("dev", dev.String()).Msg("oled initialized")
	return nil
}

// Bounds returns the panel geometry. Valid only after Init.
func (d *Display) Bounds() image.Rectangle {
	if d.dev == nil {
		return image.Rectangle{}
	}
	return d.dev.Bounds()
}

// Clear resets the frame buffer to all-off. The panel is untouched.
func (d *Display) Clear() {
	if d.dev == nil {
		return
	}
	d.buf = image1bit.NewVerticalLSB(d.dev.Bounds())
}

// DrawText renders s into the frame buffer with the baseline at (x, y),
// using the fixed monospace face with "on" foreground pixels.
func (d *Display) DrawText(s string, x, y int) error {
	if d.dev == nil {
		return errors.New("display not initialized")
	}
	drawer := font.Drawer{
		Dst:  d.buf,
		Src:  &image.Uniform{image1bit.On},
		Face: d.face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(s)
	return nil
}

// Flush commits the frame buffer to the panel.
func (d *Display) Flush() error {
	if d.dev == nil {
		return errors.New("display not initialized")
	}
	if err := d.dev.Draw(d.dev.Bounds(), d.buf, image.Point{}); err != nil {
		return errors.Wrap(err, "flush frame")
	}
	return nil
}

// Close halts the panel and releases the bus if it can be closed.
func (d *Display) Close() error {
	if d.dev != nil {
		if err := d.dev.Halt(); err != nil {
			d.log.Debug().Err(err).Msg("oled halt failed")
		}
	}
	if c, ok := d.bus.(i2c.BusCloser); ok {
		return c.Close()
	}
	return nil
}
