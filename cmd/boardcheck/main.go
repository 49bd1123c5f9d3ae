package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/coreman2200/boardcheck/internal/config"
	"github.com/coreman2200/boardcheck/internal/matrix"
	"github.com/coreman2200/boardcheck/internal/oled"
	"github.com/coreman2200/boardcheck/internal/sequencer"
)

func main() {
	var (
		i2cBus     = flag.String("i2c", "", "I2C bus name (empty: first available)")
		driver     = flag.String("driver", "gpio", "matrix driver: gpio | console")
		rowPins    = flag.String("rows", "GPIO17,GPIO27,GPIO22,GPIO23,GPIO24", "matrix row pins")
		colPins    = flag.String("cols", "GPIO5,GPIO6,GPIO13,GPIO19,GPIO26", "matrix column pins")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Config file is optional; flags carry the defaults.
	eBus := *i2cBus
	eDriver := *driver
	eRows := strings.Split(*rowPins, ",")
	eCols := strings.Split(*colPins, ",")
	if cfg, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		if cfg.I2CBus != "" {
			eBus = cfg.I2CBus
		}
		if cfg.Matrix.Driver != "" {
			eDriver = cfg.Matrix.Driver
		}
		if len(cfg.Matrix.RowPins) > 0 {
			eRows = cfg.Matrix.RowPins
		}
		if len(cfg.Matrix.ColPins) > 0 {
			eCols = cfg.Matrix.ColPins
		}
	}

	// Board peripherals are a startup-only acquisition; failure halts.
	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("host init failed")
	}

	var mtx matrix.Driver
	switch eDriver {
	case "gpio":
		m, err := matrix.NewGPIO(eRows, eCols, log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("matrix pins unavailable; falling back to console")
			mtx = matrix.NewConsole(log.Logger)
		} else {
			mtx = m
		}
	case "console":
		mtx = matrix.NewConsole(log.Logger)
	default:
		log.Warn().Str("driver", eDriver).Msg("unknown matrix driver; using console")
		mtx = matrix.NewConsole(log.Logger)
	}
	defer mtx.Close()

	bus, err := i2creg.Open(eBus)
	if err != nil {
		log.Fatal().Err(err).Str("bus", eBus).Msg("i2c bus open failed")
	}
	disp := oled.New(bus, log.Logger)
	defer disp.Close()

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-c
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
	}()

	seq := sequencer.New(mtx, disp, sequencer.SystemClock{}, log.Logger)
	state := seq.Run(ctx)
	log.Info().Str("state", string(state)).Msg("sequencer stopped")
}
