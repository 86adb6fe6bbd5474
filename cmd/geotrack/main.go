package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"geotrack/internal/config"
	"geotrack/internal/logging"
	"geotrack/internal/tui"
)

func main() {
	// .env is optional; real environment variables still apply.
	_ = godotenv.Load()

	fs := config.Flags()
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: geotrack [flags] [seed-file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	opts := tui.Options{
		Named:   cfg.Form.Named,
		Points:  cfg.Form.Points,
		Seed:    cfg.Form.Seed,
		Zoom:    cfg.Map.Zoom,
		Palette: cfg.Map.Palette,
		Logger:  logger,
	}
	var m tea.Model
	if fs.NArg() > 0 {
		m = tui.NewWithPath(opts, fs.Arg(0))
	} else {
		m = tui.New(opts)
	}
	logger.Info("starting", zap.Bool("named", cfg.Form.Named), zap.Int("points", cfg.Form.Points))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		log.Fatal(err)
	}
}
