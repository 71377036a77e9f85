package main

import (
	"flag"
	"math"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/fonts"
	"github.com/automoto/overworld/levels"
	"github.com/automoto/overworld/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	levelName := flag.String("level", "overworld", "bundled level name")
	tuningFile := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.WithError(err).Fatal("invalid log level")
	}
	logger.SetLevel(level)

	var watcher *config.Watcher
	if *tuningFile != "" {
		tuning, err := config.LoadFile(*tuningFile, config.Defaults())
		if err != nil {
			logger.WithError(err).Fatal("failed to load tuning")
		}
		config.Apply(tuning)

		watcher, err = config.Watch(*tuningFile, config.Defaults())
		if err != nil {
			logger.WithError(err).Warn("tuning hot reload disabled")
		} else {
			defer watcher.Close()
		}
	}

	lvl, err := levels.Load(*levelName)
	if err != nil {
		names, _ := levels.Names()
		logger.WithError(err).WithField("available", names).Fatal("failed to load level")
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		logger.WithError(err).Fatal("failed to load fonts")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("overworld")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond())

	game := NewGame(scenes.NewOverworld(lvl, logger), watcher, logger)
	if err := ebiten.RunGame(game); err != nil {
		logger.WithError(err).Fatal("game exited")
	}
}

// ticksPerSecond matches ebiten's update rate to the fixed physics step.
func ticksPerSecond() int {
	return int(math.Round(1 / config.Physics.FixedStep))
}
