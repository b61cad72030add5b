package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gioui.org/app"

	"github.com/chazu/colorbuttons/pkg/config"
)

func main() {
	scriptPath := flag.String("script", "", "replay a scenario file headlessly and print its transcript")
	snapshotPath := flag.String("snapshot", "", "render the demo offscreen and write it as a PNG")
	flag.Parse()

	if *scriptPath != "" || *snapshotPath != "" {
		if err := runBatch(*scriptPath, *snapshotPath); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The window loop runs beside app.Main, which owns the main thread.
	go func() {
		if err := runWindow(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func newApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewApp(cfg)
}

func runWindow() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunWindow(ctx)
}

func runBatch(scriptPath, snapshotPath string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source string
	if scriptPath != "" {
		b, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to read scenario: %w", err)
		}
		source = string(b)
	}

	result := a.RunScript(ctx, source)
	if scriptPath != "" {
		result.WriteTranscript(os.Stdout)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "%s\n", e)
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("scenario failed with %d error(s)", len(result.Errors))
	}

	if snapshotPath != "" {
		return a.Snapshot(ctx, result.Demo, snapshotPath)
	}
	return nil
}
