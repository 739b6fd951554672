package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/flightdeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (default ~/.config/flightdeck/config.toml)")
	datasetPath := flag.String("dataset", "", "YAML dataset file (optional, defaults to the built-in sample)")
	startPage := flag.String("page", "", "start page: overview, devices, fleets or settings")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		DatasetPath: *datasetPath,
		StartPage:   *startPage,
		PrefsPath:   *prefsPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "flightdeck: %v\n", err)
		return 1
	}
	return 0
}
