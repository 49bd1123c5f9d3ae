// Package sequencer runs the fixed power-on bring-up script: status glyphs
// on the LED matrix, a probe of the external OLED, a static greeting, and a
// terminal park state reporting the outcome.
package sequencer

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/boardcheck/internal/pattern"
)

// Greeting is the text pushed to the OLED on a successful probe.
const Greeting = "Hello Tony of Time!"

// Greeting baseline position in the frame buffer.
const (
	GreetingX = 0
	GreetingY = 10
)

// Script timing. Fixed; nothing configures these.
const (
	smileyHold = 1000 * time.Millisecond
	checkHold  = 1000 * time.Millisecond
	heartHold  = 2000 * time.Millisecond
	blinkHold  = 1000 * time.Millisecond
	blinkPause = 500 * time.Millisecond
	idlePause  = 1000 * time.Millisecond
)

// State is the sequencer's position in its two-terminal state machine.
type State string

const (
	// Booting is the initial state; the script is still running.
	Booting State = "booting"
	// BlinkingFailure is the terminal state after a failed OLED probe:
	// the matrix blinks a cross until power-cycle.
	BlinkingFailure State = "blinking-failure"
	// Idle is the terminal state after a fully successful run.
	Idle State = "idle"
)

// Matrix is the LED matrix capability the script drives.
type Matrix interface {
	Show(p pattern.Pattern, d time.Duration)
	Clear()
}

// Screen is the buffered OLED capability. Init is the only step allowed to
// change control flow; draw and flush failures are best-effort.
type Screen interface {
	Init() error
	Clear()
	DrawText(s string, x, y int) error
	Flush() error
}

// Clock supplies the blocking delays between steps.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock is the wall-clock Clock used on hardware.
type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Sequencer executes the bring-up script exactly once and then parks in a
// terminal state.
type Sequencer struct {
	matrix Matrix
	screen Screen
	clock  Clock
	log    zerolog.Logger
	state  State
}

func New(m Matrix, s Screen, c Clock, log zerolog.Logger) *Sequencer {
	return &Sequencer{
		matrix: m,
		screen: s,
		clock:  c,
		log:    log,
		state:  Booting,
	}
}

// State returns the current state.
func (s *Sequencer) State() State {
	return s.state
}

// Boot runs the one-shot script and returns the terminal state reached.
// It does not enter the terminal loop; see Run.
func (s *Sequencer) Boot() State {
	s.log.Info().Msg("bring-up starting")
	s.matrix.Show(pattern.Smiley, smileyHold)
	s.matrix.Clear()

	if err := s.screen.Init(); err != nil {
		s.log.Warn().Err(err).Msg("oled probe failed")
		s.state = BlinkingFailure
		return s.state
	}

	s.matrix.Show(pattern.Check, checkHold)
	s.matrix.Clear()

	// Greeting is best-effort: a panel that probed fine but drops the
	// frame gets no retry and no visible signal.
	s.screen.Clear()
	if err := s.screen.DrawText(Greeting, GreetingX, GreetingY); err != nil {
		s.log.Debug().Err(err).Msg("greeting draw failed")
	}
	if err := s.screen.Flush(); err != nil {
		s.log.Debug().Err(err).Msg("greeting flush failed")
	}

	s.matrix.Show(pattern.Heart, heartHold)
	s.matrix.Clear()

	s.log.Info().Msg("bring-up complete")
	s.state = Idle
	return s.state
}

// Run executes Boot and then parks in the terminal loop until ctx is
// cancelled. On hardware the context never fires and Run never returns,
// matching the power-cycle-to-exit contract.
func (s *Sequencer) Run(ctx context.Context) State {
	switch s.Boot() {
	case BlinkingFailure:
		for ctx.Err() == nil {
			s.blinkOnce()
		}
	case Idle:
		for ctx.Err() == nil {
			s.clock.Sleep(idlePause)
		}
	}
	return s.state
}

// blinkOnce is one cycle of the failure terminal loop.
func (s *Sequencer) blinkOnce() {
	s.matrix.Show(pattern.Cross, blinkHold)
	s.matrix.Clear()
	s.clock.Sleep(blinkPause)
}
