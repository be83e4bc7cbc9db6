// Command pathgrid-render builds a maze, solves it headlessly and writes the
// final grid to a PNG.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"

	"pathgrid/internal/app"
	"pathgrid/internal/core"
	"pathgrid/internal/render"
)

func main() {
	if err := app.LoadDotEnv(); err != nil {
		logrus.WithError(err).Fatal("load .env")
	}
	cfg := app.NewConfig()
	cfg.ApplyEnv(nil)
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "pathgrid.png", "output PNG path")
	delay := flag.Duration("delay", 0, "pause after each wall and visited cell")
	pad := flag.Int("pad", 8, "border around the grid in pixels")
	flag.Parse()

	log, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("configure logging")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	alg, _ := cfg.Algorithm()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctrl, res, err := app.RunScenario(ctx, app.Scenario{
		Size:      core.Size{Rows: cfg.Rows, Cols: cfg.Cols},
		Seed:      cfg.Seed,
		Algorithm: alg,
		Delay:     *delay,
	}, log)
	if err != nil {
		log.WithError(err).Fatal("scenario failed")
	}

	grid := ctrl.Grid()
	img, err := render.Snapshot(grid.Size(), grid.Cells(), render.DefaultPalette(), cfg.Scale, *pad)
	if err != nil {
		log.WithError(err).Fatal("render")
	}
	f, err := os.Create(*out)
	if err != nil {
		log.WithError(err).Fatal("create output")
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		log.WithError(err).Fatal("write output")
	}
	if err := f.Close(); err != nil {
		log.WithError(err).Fatal("close output")
	}

	log.WithFields(logrus.Fields{
		"out":     *out,
		"algo":    res.Algorithm.String(),
		"walls":   res.Walls,
		"visited": res.Visited,
		"path":    res.Steps,
		"found":   res.Found,
		"elapsed": res.Elapsed.Round(time.Microsecond),
	}).Info("image written")
}
