// Package main provides the Dev Link dashboard application: a terminal
// multi-tool with a notepad, spreadsheet, drawing canvas, file converter,
// OCR extraction, an HTML/CSS code runner, and AI-assisted tools, all in
// one session.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaiholabs/devlink/pkg/assistant"
	"github.com/jaiholabs/devlink/pkg/config"
	"github.com/jaiholabs/devlink/pkg/convert"
	"github.com/jaiholabs/devlink/pkg/executor/tui"
	"github.com/jaiholabs/devlink/pkg/ocr"
)

const version = "0.1.0"

// flags holds the command line overrides. Anything left empty falls back to
// the persisted configuration.
type flags struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	OCRLanguage string
	ShowVersion bool
}

func main() {
	f := parseFlags()

	if f.ShowVersion {
		fmt.Printf("devlink v%s\n", version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, f); err != nil {
		cancel()
		log.Fatalf("Application error: %v", err)
	}
}

func parseFlags() *flags {
	f := &flags{}

	flag.StringVar(&f.APIKey, "api-key", "", "OpenRouter API key (or set OPENROUTER_API_KEY env var)")
	flag.StringVar(&f.BaseURL, "base-url", "", "Chat-completions base URL for compatible APIs")
	flag.StringVar(&f.Model, "model", "", "Model for the AI tools")
	flag.IntVar(&f.MaxTokens, "max-tokens", 0,
		fmt.Sprintf("Response length cap for the AI tools (%d-%d)", assistant.MinTokens, assistant.MaxTokens))
	flag.StringVar(&f.OCRLanguage, "ocr-lang", "", "Tesseract language code for OCR")
	flag.BoolVar(&f.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Dev Link - a terminal productivity dashboard\n\n")
		fmt.Fprintf(os.Stderr, "Usage: devlink [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  OPENROUTER_API_KEY   OpenRouter API key\n")
		fmt.Fprintf(os.Stderr, "  OPENROUTER_BASE_URL  Chat-completions base URL\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  devlink                                  # Start the dashboard\n")
		fmt.Fprintf(os.Stderr, "  devlink -model deepseek/deepseek-r1:free\n")
		fmt.Fprintf(os.Stderr, "  devlink -ocr-lang deu\n")
	}

	flag.Parse()
	return f
}

func run(ctx context.Context, f *flags) error {
	store, err := config.NewFileStore("")
	if err != nil {
		return fmt.Errorf("failed to locate configuration: %w", err)
	}
	cfg, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Command line overrides are session-only, never written back.
	if f.APIKey != "" {
		cfg.LLM.APIKey = f.APIKey
	}
	if f.BaseURL != "" {
		cfg.LLM.BaseURL = f.BaseURL
	}
	if f.Model != "" {
		cfg.LLM.Model = f.Model
	}
	if f.MaxTokens != 0 {
		cfg.LLM.MaxTokens = f.MaxTokens
	}
	if f.OCRLanguage != "" {
		cfg.OCR.Language = f.OCRLanguage
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	registry := convert.NewRegistry()

	engine := &ocr.Tesseract{Language: cfg.OCR.Language}
	engineErr := engine.Probe()

	executor := tui.NewExecutor(cfg, registry, engine, engineErr)
	if err := executor.Run(ctx); err != nil {
		return fmt.Errorf("executor error: %w", err)
	}
	return nil
}
