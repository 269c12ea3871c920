package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
	"github.com/vancomm/minesweeper/internal/tui"
)

var log = logrus.New()

func setupLogging(cfg *config.Config) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Plain})

	// the full screen interface owns the terminal
	if !cfg.Plain {
		log.SetOutput(io.Discard)
	}

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Level:      level,
			Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", cfg.Log.File, err)
		}
		log.AddHook(hook)
	}

	mines.Log.SetLevel(log.Level)
	mines.Log.SetFormatter(log.Formatter)
	mines.Log.SetOutput(log.Out)
	mines.Log.ReplaceHooks(log.Hooks)
	return nil
}

func runPlain(ctx context.Context, s *session.Session) error {
	done := make(chan error, 1)
	go func() { done <- commands.Run(ctx, s, os.Stdin, os.Stdout) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return nil
	}
}

func runScreen(ctx context.Context, s *session.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to init screen: %w", err)
	}
	defer screen.Fini()

	ui := tui.New(screen, s, log)

	ctx, cancel := context.WithCancel(ctx)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return ui.Run(gCtx)
	})
	g.Go(func() error {
		return ui.Tick(gCtx, time.Second)
	})
	return g.Wait()
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flags := config.NewFlagSet(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		log.Fatal(err)
	}
	if err := setupLogging(cfg); err != nil {
		log.Fatal(err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	params, err := cfg.GameParams()
	if err != nil {
		log.Fatal(err)
	}
	s, err := session.New(params, cfg.Rand(), log)
	if err != nil {
		log.Fatal(err)
	}

	run := runScreen
	if cfg.Plain {
		run = runPlain
	}
	if err := run(mainCtx, s); err != nil {
		log.Errorf("exit reason: %s", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.WithFields(s.Fields()).Info("bye")
}
