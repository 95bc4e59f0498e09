package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/jaiholabs/devlink/pkg/assistant"
	"github.com/jaiholabs/devlink/pkg/brainstorm"
	"github.com/jaiholabs/devlink/pkg/config"
	"github.com/jaiholabs/devlink/pkg/convert"
	"github.com/jaiholabs/devlink/pkg/llm"
	"github.com/jaiholabs/devlink/pkg/logging"
	"github.com/jaiholabs/devlink/pkg/ocr"
	"github.com/jaiholabs/devlink/pkg/session"
)

// inputMode tracks where keystrokes go.
type inputMode int

const (
	// modePanel routes keys to the active tool panel (or the toolbar when
	// idle).
	modePanel inputMode = iota
	// modeLine routes keys to the single-line prompt input.
	modeLine
	// modeEditor routes keys to the multi-line editor.
	modeEditor
)

// lineTarget says what the single-line input is collecting.
type lineTarget int

const (
	targetNone lineTarget = iota
	targetChatPrompt
	targetIdea
	targetBrainstormTopic
	targetConvertFile
	targetConvertText
	targetOCRFile
	targetSheetCell
	targetImageDesc
	targetCodeGenDesc
)

// editorTarget says which buffer the multi-line editor is editing.
type editorTarget int

const (
	editNone editorTarget = iota
	editNote
	editHTML
	editCSS
)

// model is the state of the dashboard TUI.
type model struct {
	// Bubble Tea components
	textarea textarea.Model
	input    textinput.Model
	spinner  spinner.Model

	// Application state
	session  *session.Session
	registry *convert.Registry
	engine   ocr.Engine
	ocrErr   error // non-nil when the OCR engine probe failed
	cfg      *config.Config
	logger   *logging.Logger
	provider llm.Provider

	// Input routing
	mode       inputMode
	lineFor    lineTarget
	editingFor editorTarget

	// Converter browsing state
	categoryIdx int
	entryIdx    int
	pendingFile string // upload path collected before a text prompt, if any

	// Spreadsheet cursor
	sheetRow int
	sheetCol int

	// Drawing state
	drawModeIdx int

	// Code runner state
	langIdx int

	// Assistant state: the model picker plus the option lists of the
	// standalone tools, all cycled with panel keys.
	modelIdx       int
	explainTypeIdx int
	sumLenIdx      int
	sumStyleIdx    int
	imgStyleIdx    int
	imgMoodIdx     int
	genLangIdx     int
	codeStyleIdx   int

	// Brainstorm state
	brainKindIdx int
	brainCount   int

	// Transient status line: the last outcome shown under the panel.
	status  string
	statErr bool

	busy        bool
	loadingText string

	width  int
	height int
	ready  bool
}

// Messages produced by async commands. Commands only perform I/O; the
// session mutation the outcome implies happens in Update when the message
// arrives.

type aiReplyMsg struct {
	prompt string
	reply  *llm.Message
	err    error
}

type ideasMsg struct {
	ideas []string
	err   error
}

type convertDoneMsg struct {
	entry  string
	result *convert.Result
	input  string // original filename, for the output name
	err    error
}

type ocrDoneMsg struct {
	result *ocr.Result
	err    error
}

// oneShotMsg carries the outcome of a standalone assistant tool; the
// content is saved under filename on arrival.
type oneShotMsg struct {
	filename string
	content  string
	err      error
}

// initialModel builds the model with its widgets configured.
func initialModel(cfg *config.Config, registry *convert.Registry, engine ocr.Engine, ocrErr error, logger *logging.Logger) model {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	ti := textinput.New()
	ti.Placeholder = "Type here and press Enter"
	ti.CharLimit = 0

	return model{
		textarea:   ta,
		input:      ti,
		spinner:    newSpinner(),
		session:    session.New(),
		registry:   registry,
		engine:     engine,
		ocrErr:     ocrErr,
		cfg:        cfg,
		logger:     logger,
		brainCount: brainstorm.DefaultIdeas,
	}
}

func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lavender)
	return sp
}

// currentModel returns the selected assistant model.
func (m *model) currentModel() assistant.Model {
	return assistant.FreeModels[m.modelIdx%len(assistant.FreeModels)]
}

func (m *model) setStatus(s string) {
	m.status = s
	m.statErr = false
}

func (m *model) setError(err error) {
	m.status = err.Error()
	m.statErr = true
	if m.logger != nil {
		m.logger.Errorf("%v", err)
	}
}
