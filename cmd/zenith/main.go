package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mstern/zenith/internal/checkin"
	"github.com/mstern/zenith/internal/cli"
	"github.com/mstern/zenith/internal/config"
	"github.com/mstern/zenith/internal/constants"
	"github.com/mstern/zenith/internal/errors"
	"github.com/mstern/zenith/internal/habit"
	"github.com/mstern/zenith/internal/logger"
	"github.com/mstern/zenith/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Path    string `help:"Journal location (directory for diskv, file for sqlite). Overrides config."`
	Backend string `help:"Storage backend (diskv|sqlite). Overrides config."`
	Debug   bool   `help:"Verbose logging to stderr."`

	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits and completion streaks."`
	Checkin  cli.CheckinCmd  `cmd:"" help:"Record and view daily wellness check-ins."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show the mood calendar for a month."`
	Summary  cli.SummaryCmd  `cmd:"" help:"Show the monthly habit summary."`
	Clear    cli.ClearCmd    `cmd:"" help:"Erase all journal data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal wellness journal: daily check-ins, habit streaks, and a mood calendar."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": "v0.3.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Path != "" {
		cfg.Path = CLI.Path
	}
	if CLI.Backend != "" {
		cfg.Backend = CLI.Backend
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	// Logs live under the journal directory, or next to the database file
	// when the sqlite backend is selected.
	logDir := cfg.Path
	if cfg.Backend == constants.BackendSQLite {
		logDir = filepath.Dir(cfg.Path)
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	kv, err := openBackend(cfg)
	if err != nil {
		errors.Fatal(err)
	}

	adapter := storage.NewAdapter(kv)
	appCtx := &cli.Context{
		Habits:   habit.NewStore(adapter, time.Now),
		CheckIns: checkin.NewStore(adapter, time.Now),
		Adapter:  adapter,
		Now:      time.Now,
	}

	errors.Fatal(ctx.Run(appCtx))
}

func openBackend(cfg config.Config) (storage.KV, error) {
	switch cfg.Backend {
	case constants.BackendSQLite:
		return storage.NewSQLiteKV(cfg.Path)
	case constants.BackendDiskv, "":
		return storage.NewDiskvKV(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
