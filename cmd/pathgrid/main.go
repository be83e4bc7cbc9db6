//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"pathgrid/internal/app"
)

func main() {
	if err := app.LoadDotEnv(); err != nil {
		logrus.WithError(err).Fatal("load .env")
	}
	cfg := app.NewConfig()
	cfg.ApplyEnv(nil)
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("configure logging")
	}
	session, err := app.NewSession(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	game := app.New(session, cfg.Scale, cfg.TPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("pathgrid %dx%d", cfg.Rows, cfg.Cols))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run game")
	}
}
