// Command maskdemo runs a YAML script of selection operations and writes
// the resulting mask as an image.
//
// Defaults for the flags may be given in a .env file or the environment:
//
//	MASKDEMO_OUTPUT=mask.png
//	MASKDEMO_UNDO_LIMIT=16
//	MASKDEMO_LOG_LEVEL=debug
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/gogpu/selection"
)

// config holds the resolved command-line settings.
type config struct {
	script    string
	output    string
	ants      bool
	undoLimit int
	logLevel  slog.Level
	noColor   bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("maskdemo: %v", err)
	}
	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("Failed: %v", err)
	}
}

// parseFlags loads .env defaults, then parses args.
func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("maskdemo", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "file with MASKDEMO_* defaults")
	// The env file is needed before the other defaults, so parse twice.
	_ = fs.Parse(filterEnvFlag(args))

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", *envFile, err)
	}

	cfg := &config{}
	fs = flag.NewFlagSet("maskdemo", flag.ContinueOnError)
	fs.String("env", ".env", "file with MASKDEMO_* defaults")
	fs.StringVar(&cfg.script, "script", "", "YAML script to run (required)")
	fs.StringVar(&cfg.output, "output", envString("MASKDEMO_OUTPUT", "mask.png"), "output file (.png, .bmp, .tif)")
	fs.BoolVar(&cfg.ants, "ants", false, "burn the selection outline into the output")
	fs.IntVar(&cfg.undoLimit, "undo", envInt("MASKDEMO_UNDO_LIMIT", 32), "undo steps kept for undo/redo script steps")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable coloured output")
	level := fs.String("log", envString("MASKDEMO_LOG_LEVEL", "warn"), "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.script == "" {
		return nil, fmt.Errorf("-script is required")
	}
	if err := cfg.logLevel.UnmarshalText([]byte(*level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return cfg, nil
}

// filterEnvFlag returns only the -env flag and its value from args.
func filterEnvFlag(args []string) []string {
	for i, a := range args {
		switch {
		case a == "-env" || a == "--env":
			if i+1 < len(args) {
				return args[i : i+2]
			}
		case strings.HasPrefix(a, "-env=") || strings.HasPrefix(a, "--env="):
			return []string{a}
		}
	}
	return nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

// run executes the script described by cfg, reporting to out and logging
// to logOut.
func run(cfg *config, out, logOut io.Writer) error {
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.logLevel})).
		With("run", runID)
	selection.SetLogger(logger)
	defer selection.SetLogger(nil)

	script, err := LoadScript(cfg.script)
	if err != nil {
		return err
	}
	logger.Info("script loaded", "path", cfg.script, "steps", len(script.Steps))

	rep := newReporter(out, cfg.noColor)
	rep.begin(script, runID[:8])
	c := script.Run(cfg.undoLimit, rep.report)
	defer c.Close()

	img := c.Image()
	if cfg.ants {
		_, segs := c.Boundary(c.Rect())
		BurnAnts(img, segs)
	}
	if err := Save(cfg.output, img); err != nil {
		return err
	}
	logger.Info("mask written", "path", cfg.output)
	rep.done(cfg.output)
	return nil
}
