package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/swarm/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		logger.Fatal("load tuning", zap.Error(err))
	}

	// hot reload only works when an override directory exists on disk
	var watcher *prefabs.Watcher
	if _, err := os.Stat("prefabs"); err == nil {
		watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			logger.Warn("tuning watch unavailable", zap.Error(err))
		} else {
			defer func() { _ = watcher.Close() }()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("swarm")

	if err := ebiten.RunGame(NewGame(logger, tuning, watcher)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
