package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"type-lab/internal"
	"type-lab/render"
	"type-lab/services"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lab terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run(out io.Writer) (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Demo registry
	svc := services.NewDemoService(logger)

	return runLab(config, logger, svc, out)
}

// runLab executes the selected demos and renders the summary.
// Split from run() so it can be exercised with a mocked service.
func runLab(config internal.Config, logger *slog.Logger, svc services.IDemoService, out io.Writer) (int, error) {
	names := config.Demos()
	if len(names) == 0 {
		names = svc.Names()
	}

	reports := make([]services.Report, 0, len(names))
	for _, name := range names {
		render.Header(out, name, config.Colours)

		demoOut := out
		if config.MirrorToLog {
			demoOut = io.MultiWriter(out, render.NewLogWriter(logger, name))
		}

		report, err := svc.Run(name, demoOut)
		if err != nil {
			return exitRuntime, err
		}
		reports = append(reports, report)
	}

	render.Header(out, "summary", config.Colours)
	render.Summary(out, reports)
	return exitOK, nil
}
