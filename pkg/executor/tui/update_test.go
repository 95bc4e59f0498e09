package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaiholabs/devlink/pkg/assistant"
	"github.com/jaiholabs/devlink/pkg/coderunner"
	"github.com/jaiholabs/devlink/pkg/config"
	"github.com/jaiholabs/devlink/pkg/convert"
	"github.com/jaiholabs/devlink/pkg/llm"
	"github.com/jaiholabs/devlink/pkg/notepad"
	"github.com/jaiholabs/devlink/pkg/ocr"
	"github.com/jaiholabs/devlink/pkg/session"
)

// stubProvider replies with a canned message and remembers the last request.
type stubProvider struct {
	reply string
	seen  []*llm.Message
}

func (s *stubProvider) Complete(ctx context.Context, messages []*llm.Message) (*llm.Message, error) {
	s.seen = messages
	return llm.NewAssistantMessage(s.reply), nil
}

func (s *stubProvider) GetModel() string   { return "stub" }
func (s *stubProvider) GetBaseURL() string { return "http://stub" }

type stubEngine struct{}

func (stubEngine) Recognize(ctx context.Context, image []byte) ([]ocr.Block, error) {
	return []ocr.Block{{Text: "hello", Confidence: 0.9}}, nil
}

func testModel(t *testing.T) *model {
	t.Helper()
	registry := convert.NewRegistry(convert.WithLookPath(func(string) (string, error) {
		return "", fmt.Errorf("not installed")
	}))
	m := initialModel(config.Default(), registry, stubEngine{}, nil, nil)
	m.width = 100
	m.height = 40
	m.ready = true
	return &m
}

func press(t *testing.T, m *model, key string) tea.Cmd {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestHotkeysToggleTools(t *testing.T) {
	m := testModel(t)

	press(t, m, "1")
	if m.session.Current() != session.ToolNotepad {
		t.Fatalf("expected notepad active, got %q", m.session.Current())
	}

	// Same key returns to idle.
	press(t, m, "1")
	if !m.session.Idle() {
		t.Error("expected idle after second press")
	}

	// Switching tools needs no intermediate idle.
	press(t, m, "3")
	press(t, m, "7")
	if m.session.Current() != session.ToolAssistant {
		t.Errorf("expected assistant active, got %q", m.session.Current())
	}
}

func TestEscClosesActiveTool(t *testing.T) {
	m := testModel(t)

	press(t, m, "2")
	press(t, m, "esc")
	if !m.session.Idle() {
		t.Error("esc should return to idle")
	}
}

func TestNotepadEditRoundTrip(t *testing.T) {
	m := testModel(t)

	press(t, m, "1")
	press(t, m, "e")
	if m.mode != modeEditor {
		t.Fatal("expected editor mode")
	}

	m.textarea.SetValue("draft text")
	press(t, m, "esc")
	if m.mode != modePanel {
		t.Fatal("esc should leave the editor")
	}
	if got := m.session.Notepad().Content(); got != "draft text" {
		t.Errorf("note content %q", got)
	}
}

func TestEditorSurvivesToolSwitch(t *testing.T) {
	m := testModel(t)

	press(t, m, "1")
	press(t, m, "e")
	m.textarea.SetValue("keep me")
	press(t, m, "esc")

	// Toggle away and back.
	press(t, m, "1")
	press(t, m, "2")
	press(t, m, "2")
	press(t, m, "1")

	if got := m.session.Notepad().Content(); got != "keep me" {
		t.Errorf("content lost on toggle: %q", got)
	}
}

func TestSpreadsheetCellEdit(t *testing.T) {
	m := testModel(t)

	press(t, m, "2")
	press(t, m, "e")
	if m.mode != modeLine || m.lineFor != targetSheetCell {
		t.Fatal("expected cell input")
	}

	m.input.SetValue("Ship it")
	press(t, m, "enter")

	got, err := m.session.Sheet().Cell(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Ship it" {
		t.Errorf("cell = %q", got)
	}
}

func TestConverterCursorSkipsUnavailable(t *testing.T) {
	m := testModel(t)

	press(t, m, "4")
	entry, err := m.selectedEntry()
	if err != nil {
		t.Fatal(err)
	}
	// DOCX to PDF is disabled by the failing probe, so the first offered
	// entry must be something else.
	if entry.Name == "DOCX to PDF" {
		t.Error("unavailable entry offered")
	}
	if !entry.Available {
		t.Error("cursor resolved to an unavailable entry")
	}
}

func TestBusyBlocksPanelKeys(t *testing.T) {
	m := testModel(t)

	press(t, m, "1")
	m.session.Notepad().SetContent("still here")
	m.busy = true
	press(t, m, "x") // would clear the note
	if m.session.Notepad().Content() != "still here" {
		t.Error("panel key ran while busy")
	}
}

func TestViewShowsToolbarAndWarnings(t *testing.T) {
	m := testModel(t)

	out := m.View()
	for _, want := range []string{"Notepad", "File Converter", "Brainstorm", "DOCX to PDF", "LibreOffice"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewRendersActivePanel(t *testing.T) {
	m := testModel(t)

	press(t, m, "8")
	if err := m.session.Board().Add("try a smaller scope"); err != nil {
		t.Fatal(err)
	}
	out := m.View()
	if !strings.Contains(out, "try a smaller scope") {
		t.Error("board idea not rendered")
	}
}

func TestSummarizeNeedsANote(t *testing.T) {
	m := testModel(t)

	press(t, m, "7")
	cmd := press(t, m, "s")
	if cmd != nil {
		t.Error("empty note should not trigger a request")
	}
	if !m.statErr {
		t.Error("expected an error on the status line")
	}
}

func TestAssistantSubToolsPromptForInput(t *testing.T) {
	m := testModel(t)

	press(t, m, "7")
	press(t, m, "p")
	if m.mode != modeLine || m.lineFor != targetImageDesc {
		t.Fatal("expected image description input")
	}
	press(t, m, "esc")

	press(t, m, "g")
	if m.mode != modeLine || m.lineFor != targetCodeGenDesc {
		t.Fatal("expected code description input")
	}
}

func TestChatMutatesHistoryOnlyInUpdate(t *testing.T) {
	m := testModel(t)
	provider := &stubProvider{reply: "hello back"}
	m.provider = provider

	press(t, m, "7")
	press(t, m, "i")
	m.input.SetValue("hi there")
	cmd := press(t, m, "enter")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if !m.busy {
		t.Error("expected busy while the request is in flight")
	}
	// The request is built and dispatched without touching the history.
	if got := len(m.session.Chat().History()); got != 0 {
		t.Fatalf("history mutated before the reply arrived: %d turns", got)
	}

	messages, err := m.session.Chat().Outgoing("hi there")
	if err != nil {
		t.Fatal(err)
	}
	msg, ok := m.askCmd("hi there", messages)().(aiReplyMsg)
	if !ok {
		t.Fatal("expected aiReplyMsg")
	}
	if got := len(m.session.Chat().History()); got != 0 {
		t.Fatalf("command mutated the history: %d turns", got)
	}

	m.Update(msg)
	history := m.session.Chat().History()
	if len(history) != 2 {
		t.Fatalf("history = %d turns, want 2", len(history))
	}
	if history[0].Content != "hi there" || history[1].Content != "hello back" {
		t.Errorf("history = %q, %q", history[0].Content, history[1].Content)
	}
	if m.busy {
		t.Error("still busy after the reply landed")
	}

	// The next turn carries the recorded exchange.
	messages, err = m.session.Chat().Outgoing("and again")
	if err != nil {
		t.Fatal(err)
	}
	m.askCmd("and again", messages)()
	if len(provider.seen) != 4 { // system + 2 history turns + new prompt
		t.Errorf("request carried %d messages, want 4", len(provider.seen))
	}
}

func TestIdeasLandOnBoardInUpdate(t *testing.T) {
	m := testModel(t)
	m.provider = &stubProvider{reply: "1. ship smaller\n2. ship sooner"}

	msg, ok := m.generateCmd("any prompt", 5)().(ideasMsg)
	if !ok {
		t.Fatal("expected ideasMsg")
	}
	if msg.err != nil {
		t.Fatal(msg.err)
	}
	if got := len(m.session.Board().Ideas()); got != 0 {
		t.Fatalf("command mutated the board: %d ideas", got)
	}

	m.Update(msg)
	ideas := m.session.Board().Ideas()
	if len(ideas) != 2 || ideas[0] != "ship smaller" {
		t.Errorf("board = %v", ideas)
	}
}

func TestAssistantOptionKeysCycle(t *testing.T) {
	m := testModel(t)

	press(t, m, "7")
	press(t, m, "n")
	if m.genLangIdx != 1 {
		t.Errorf("genLangIdx = %d after n", m.genLangIdx)
	}
	press(t, m, "t")
	press(t, m, "l")
	press(t, m, "y")
	press(t, m, "a")
	press(t, m, "o")
	press(t, m, "w")
	for name, idx := range map[string]int{
		"explainTypeIdx": m.explainTypeIdx,
		"sumLenIdx":      m.sumLenIdx,
		"sumStyleIdx":    m.sumStyleIdx,
		"imgStyleIdx":    m.imgStyleIdx,
		"imgMoodIdx":     m.imgMoodIdx,
		"codeStyleIdx":   m.codeStyleIdx,
	} {
		if idx != 1 {
			t.Errorf("%s = %d, want 1", name, idx)
		}
	}

	out := m.View()
	if !strings.Contains(out, assistant.GeneratorLanguages[1]) {
		t.Error("selected generator language not shown")
	}
}

func TestAssistantPanelShowsTokenUsage(t *testing.T) {
	m := testModel(t)

	press(t, m, "7")
	m.Update(aiReplyMsg{prompt: "hi", reply: llm.NewAssistantMessage("hello back")})
	out := m.View()
	if !strings.Contains(out, "reply budget") {
		t.Error("token usage line not rendered")
	}
}

func TestCodeRunnerLanguageCycle(t *testing.T) {
	m := testModel(t)

	press(t, m, "6")
	press(t, m, "l")
	if coderunner.Languages[m.langIdx] != coderunner.LanguagePython {
		t.Fatalf("language = %s after l", coderunner.Languages[m.langIdx])
	}

	// Placeholder languages take no edit keys and render their stub.
	press(t, m, "e")
	if m.mode != modePanel {
		t.Error("editor opened for a placeholder language")
	}
	if !strings.Contains(m.View(), "Coming Soon") {
		t.Error("placeholder code not rendered")
	}

	press(t, m, "l")
	press(t, m, "l")
	press(t, m, "l")
	if coderunner.Languages[m.langIdx] != coderunner.LanguageHTMLCSS {
		t.Fatalf("cycle did not wrap: %s", coderunner.Languages[m.langIdx])
	}
	press(t, m, "e")
	if m.mode != modeEditor {
		t.Error("editor should open for HTML/CSS")
	}
}

func TestNotepadBoldSnippet(t *testing.T) {
	m := testModel(t)

	press(t, m, "1")
	press(t, m, "b") // plain text: no-op
	if strings.Contains(m.session.Notepad().Content(), "**bold text**") {
		t.Error("snippet appended in plain text format")
	}

	press(t, m, "f") // plain -> markdown
	if m.session.Notepad().Format() != notepad.FormatMarkdown {
		t.Fatalf("format = %s", m.session.Notepad().Format())
	}
	press(t, m, "b")
	if !strings.HasSuffix(m.session.Notepad().Content(), "**bold text**") {
		t.Error("bold snippet not appended")
	}
}

func TestOCRCommandProducesResult(t *testing.T) {
	m := testModel(t)

	cmd := m.ocrCmd("scan.png", []byte{1, 2, 3})
	msg, ok := cmd().(ocrDoneMsg)
	if !ok {
		t.Fatal("expected ocrDoneMsg")
	}
	if msg.err != nil {
		t.Fatal(msg.err)
	}
	if msg.result.Text != "hello" {
		t.Errorf("text = %q", msg.result.Text)
	}

	m.Update(msg)
	if m.session.OCRResult() == nil {
		t.Error("result not stored in session")
	}
}
