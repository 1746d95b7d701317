package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"hourglass/internal"
	"hourglass/internal/config"
	"hourglass/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	// The program owns the terminal, so logs only ever go to a file.
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "hourglass")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctl := timer.New(timer.DefaultTotal, timer.WithLogger(log.Default()))
	defer ctl.Close()

	m, err := internal.NewModel(ctl, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	states, unsubscribe := ctl.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case s, ok := <-states:
				if !ok {
					return nil
				}
				p.Send(internal.MsgState{State: s})
			}
		}
	})

	g.Go(func() error {
		ticker := time.NewTicker(time.Second / internal.FrameRate)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				p.Send(internal.MsgFrame{})
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		log.Printf("starting with %s countdown", timer.DefaultTotal)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})

	return g.Wait()
}
