// Package tui implements the terminal dashboard: an eight-tool toolbar where
// exactly one tool panel shows at a time and each tool keeps its scratch
// state for the life of the session.
//
// The TUI codebase is split into multiple files:
// - executor.go: Executor implementation and program lifecycle
// - model.go: Core model structure and state
// - update.go: Bubble Tea Update function and key routing
// - view.go: Bubble Tea View function and layout
// - panels.go: Per-tool panel rendering
// - styles.go: Color palette and styling
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaiholabs/devlink/pkg/assistant"
	"github.com/jaiholabs/devlink/pkg/config"
	"github.com/jaiholabs/devlink/pkg/convert"
	"github.com/jaiholabs/devlink/pkg/llm"
	"github.com/jaiholabs/devlink/pkg/llm/openai"
	"github.com/jaiholabs/devlink/pkg/logging"
	"github.com/jaiholabs/devlink/pkg/ocr"
)

// Executor runs the dashboard TUI and blocks until the user exits.
type Executor struct {
	cfg      *config.Config
	registry *convert.Registry
	engine   ocr.Engine
	ocrErr   error
	program  *tea.Program
}

// NewExecutor wires the dashboard's backends. engineErr carries the OCR
// probe failure, if any; the tool is shown disabled with that reason.
func NewExecutor(cfg *config.Config, registry *convert.Registry, engine ocr.Engine, engineErr error) *Executor {
	return &Executor{
		cfg:      cfg,
		registry: registry,
		engine:   engine,
		ocrErr:   engineErr,
	}
}

// Run starts the TUI and blocks until the user quits or ctx is canceled.
func (e *Executor) Run(ctx context.Context) error {
	logger, logErr := logging.NewLogger("tui")
	if logErr != nil {
		logger.Warnf("file logging unavailable: %v", logErr)
	}
	defer logger.Close()
	logger.Infof("dashboard starting, session %s", logger.SessionID())

	applyTheme(e.cfg.UI.Theme)

	m := initialModel(e.cfg, e.registry, e.engine, e.ocrErr, logger)
	for i, fm := range assistant.FreeModels {
		if fm.ID == e.cfg.LLM.Model {
			m.modelIdx = i
			break
		}
	}
	if p, err := newProvider(e.cfg, e.cfg.LLM.Model); err != nil {
		logger.Warnf("AI tools disabled: %v", err)
	} else {
		m.provider = p
	}

	e.program = tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := e.program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI program: %w", err)
	}
	logger.Infof("dashboard exited")
	return nil
}

// newProvider builds an LLM provider from the configuration for the given
// model. Fails when no key is configured anywhere.
func newProvider(cfg *config.Config, modelID string) (llm.Provider, error) {
	opts := []openai.ProviderOption{
		openai.WithModel(modelID),
		openai.WithMaxTokens(cfg.LLM.MaxTokens),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.LLM.BaseURL))
	}
	return openai.NewProvider(cfg.LLM.APIKey, opts...)
}
