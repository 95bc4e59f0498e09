package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaiholabs/devlink/pkg/assistant"
	"github.com/jaiholabs/devlink/pkg/brainstorm"
	"github.com/jaiholabs/devlink/pkg/coderunner"
	"github.com/jaiholabs/devlink/pkg/convert"
	"github.com/jaiholabs/devlink/pkg/drawing"
	"github.com/jaiholabs/devlink/pkg/llm"
	"github.com/jaiholabs/devlink/pkg/notepad"
	"github.com/jaiholabs/devlink/pkg/ocr"
	"github.com/jaiholabs/devlink/pkg/session"
)

// requestTimeout bounds every remote call made from the event loop.
const requestTimeout = 90 * time.Second

var errNoProvider = fmt.Errorf("no AI provider configured (set an OpenRouter API key)")

// toolHotkeys maps the number row to the toolbar, in display order.
var toolHotkeys = map[string]session.ToolID{
	"1": session.ToolNotepad,
	"2": session.ToolSpreadsheet,
	"3": session.ToolDrawing,
	"4": session.ToolConverter,
	"5": session.ToolOCR,
	"6": session.ToolCodeRunner,
	"7": session.ToolAssistant,
	"8": session.ToolBrainstorm,
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model. All state mutation happens here, on the
// single event-loop goroutine; commands only do I/O and report back.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 4)
		m.textarea.SetHeight(msg.Height - 12)
		m.input.Width = msg.Width - 6
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case aiReplyMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.session.Chat().Record(msg.prompt, msg.reply)
			m.setStatus("Reply received")
		}
		return m, nil

	case ideasMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.session.Board().Extend(msg.ideas)
			m.setStatus(fmt.Sprintf("Added %d ideas to the board", len(msg.ideas)))
		}
		return m, nil

	case convertDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		name := msg.result.OutputName(msg.input)
		if err := saveFile(name, msg.result.Data); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("%s: saved %s", msg.entry, name))
		return m, nil

	case ocrDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.session.SetOCRResult(msg.result)
		m.setStatus(fmt.Sprintf("Extracted %d words (%s)", msg.result.WordCount(), msg.result.Quality()))
		return m, nil

	case oneShotMsg:
		m.busy = false
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.saveExport(msg.filename, []byte(msg.content))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeEditor:
		return m.handleEditorKey(msg)
	case modeLine:
		return m.handleLineKey(msg)
	}
	return m.handlePanelKey(msg)
}

// handleEditorKey routes keys to the multi-line editor. Esc commits the
// buffer back to whichever tool owns it.
func (m *model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		content := m.textarea.Value()
		switch m.editingFor {
		case editNote:
			m.session.Notepad().SetContent(content)
			words, chars := m.session.Notepad().Counts()
			m.setStatus(fmt.Sprintf("Note saved: %d words, %d characters", words, chars))
		case editHTML:
			m.session.Runner().SetHTML(content)
			m.setStatus("HTML buffer saved")
		case editCSS:
			m.session.Runner().SetCSS(content)
			m.setStatus("CSS buffer saved")
		}
		m.editingFor = editNone
		m.mode = modePanel
		m.textarea.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// handleLineKey routes keys to the single-line input. Enter submits, Esc
// cancels.
func (m *model) handleLineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.lineFor = targetNone
		m.mode = modePanel
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		target := m.lineFor
		m.lineFor = targetNone
		m.mode = modePanel
		m.input.Blur()
		m.input.Reset()
		return m.submitLine(target, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) submitLine(target lineTarget, value string) (tea.Model, tea.Cmd) {
	switch target {
	case targetChatPrompt:
		if m.provider == nil {
			m.setError(errNoProvider)
			return m, nil
		}
		messages, err := m.session.Chat().Outgoing(value)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.busy = true
		m.loadingText = "Thinking..."
		return m, tea.Batch(m.spinner.Tick, m.askCmd(value, messages))

	case targetIdea:
		if err := m.session.Board().Add(value); err != nil {
			m.setError(err)
		} else {
			m.setStatus("Idea added")
		}
		return m, nil

	case targetBrainstormTopic:
		if m.provider == nil {
			m.setError(errNoProvider)
			return m, nil
		}
		prompt, count, err := brainstorm.GeneratePrompt(value, brainstorm.Kinds[m.brainKindIdx], m.brainCount)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.busy = true
		m.loadingText = "Brainstorming..."
		return m, tea.Batch(m.spinner.Tick, m.generateCmd(prompt, count))

	case targetConvertFile:
		return m.startFileConversion(value)

	case targetConvertText:
		entry, err := m.selectedEntry()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.busy = true
		m.loadingText = "Converting..."
		return m, tea.Batch(m.spinner.Tick, m.convertCmd(entry.Name, convert.TextPayload(value), ""))

	case targetOCRFile:
		data, err := os.ReadFile(value)
		if err != nil {
			m.setError(fmt.Errorf("cannot read %s: %w", value, err))
			return m, nil
		}
		m.busy = true
		m.loadingText = "Extracting text..."
		return m, tea.Batch(m.spinner.Tick, m.ocrCmd(filepath.Base(value), data))

	case targetSheetCell:
		if err := m.session.Sheet().SetCell(m.sheetRow, m.sheetCol, value); err != nil {
			m.setError(err)
		} else {
			m.setStatus("Cell updated")
		}
		return m, nil

	case targetImageDesc:
		prompt := assistant.ImagePrompt(value,
			assistant.ImageStyles[m.imgStyleIdx], assistant.ImageMoods[m.imgMoodIdx])
		return m.startOneShot(prompt, "image_prompt.txt", "Building image prompt...")

	case targetCodeGenDesc:
		language := assistant.GeneratorLanguages[m.genLangIdx]
		prompt := assistant.GenerateCodePrompt(value, language, assistant.CodeStyles[m.codeStyleIdx], false)
		return m.startOneShot(prompt, "generated"+assistant.FileExtensionFor(language), "Generating code...")
	}
	return m, nil
}

func (m *model) startFileConversion(path string) (tea.Model, tea.Cmd) {
	entry, err := m.selectedEntry()
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if !entry.Input.AcceptsFile(path) {
		m.setError(fmt.Errorf("%s does not accept %q", entry.Name, filepath.Base(path)))
		return m, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		m.setError(fmt.Errorf("cannot read %s: %w", path, err))
		return m, nil
	}
	m.busy = true
	m.loadingText = "Converting..."
	payload := convert.Payload{Filename: filepath.Base(path), Data: data}
	return m, tea.Batch(m.spinner.Tick, m.convertCmd(entry.Name, payload, filepath.Base(path)))
}

// handlePanelKey routes keys to the toolbar and the active tool panel.
func (m *model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if id, ok := toolHotkeys[key]; ok {
		m.session.Toggle(id)
		m.status = ""
		return m, nil
	}

	switch key {
	case "esc":
		if !m.session.Idle() {
			m.session.Reset()
			m.status = ""
			return m, nil
		}
		return m, tea.Quit
	case "q":
		if m.session.Idle() {
			return m, tea.Quit
		}
	}

	if m.busy {
		return m, nil
	}

	switch m.session.Current() {
	case session.ToolNotepad:
		return m.handleNotepadKey(key)
	case session.ToolSpreadsheet:
		return m.handleSpreadsheetKey(key)
	case session.ToolDrawing:
		return m.handleDrawingKey(key)
	case session.ToolConverter:
		return m.handleConverterKey(key)
	case session.ToolOCR:
		return m.handleOCRKey(key)
	case session.ToolCodeRunner:
		return m.handleCodeRunnerKey(key)
	case session.ToolAssistant:
		return m.handleAssistantKey(key)
	case session.ToolBrainstorm:
		return m.handleBrainstormKey(key)
	}
	return m, nil
}

func (m *model) handleNotepadKey(key string) (tea.Model, tea.Cmd) {
	pad := m.session.Notepad()
	switch key {
	case "e":
		m.textarea.SetValue(pad.Content())
		return m.openEditor(editNote)
	case "f":
		pad.SetFormat(nextFormat(pad.Format()))
		if pad.Format() == notepad.FormatMarkdown && pad.Content() == "" {
			pad.SetContent(notepad.MarkdownPlaceholder)
		}
		m.setStatus(fmt.Sprintf("Format: %s", pad.Format()))
	case "p":
		pad.TogglePreview()
	case "b":
		if pad.Format() == notepad.FormatMarkdown {
			pad.Append("**bold text**")
			m.setStatus("Bold snippet appended")
		}
	case "x":
		pad.Clear()
		m.setStatus("Note cleared")
	case "t":
		exp := pad.ExportTXT()
		m.saveExport(exp.Filename, exp.Data)
	case "d":
		exp := pad.ExportMD()
		m.saveExport(exp.Filename, exp.Data)
	case "h":
		exp, err := pad.ExportHTML()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.saveExport(exp.Filename, exp.Data)
	}
	return m, nil
}

func nextFormat(f notepad.Format) notepad.Format {
	for i, cur := range notepad.Formats {
		if cur == f {
			return notepad.Formats[(i+1)%len(notepad.Formats)]
		}
	}
	return notepad.FormatPlain
}

func (m *model) handleSpreadsheetKey(key string) (tea.Model, tea.Cmd) {
	sheet := m.session.Sheet()
	switch key {
	case "up":
		if m.sheetRow > 0 {
			m.sheetRow--
		}
	case "down":
		if m.sheetRow < sheet.Rows()-1 {
			m.sheetRow++
		}
	case "left":
		if m.sheetCol > 0 {
			m.sheetCol--
		}
	case "right":
		if m.sheetCol < len(sheet.Columns())-1 {
			m.sheetCol++
		}
	case "e", "enter":
		cell, err := sheet.Cell(m.sheetRow, m.sheetCol)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.input.SetValue(cell)
		return m.openLine(targetSheetCell, "New cell value")
	case "a":
		m.sheetRow = sheet.AddRow()
		m.setStatus("Row added")
	case "c":
		name := sheet.AddColumn("")
		m.setStatus(fmt.Sprintf("Column %s added", name))
	case "r":
		if err := sheet.RemoveRow(m.sheetRow); err != nil {
			m.setError(err)
			return m, nil
		}
		if m.sheetRow >= sheet.Rows() && m.sheetRow > 0 {
			m.sheetRow--
		}
		m.setStatus("Row removed")
	case "s":
		data, err := sheet.CSV()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.saveExport("spreadsheet.csv", data)
	case "j":
		data, err := sheet.JSON()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.saveExport("spreadsheet.json", data)
	case "x":
		sheet.Reset()
		m.sheetRow, m.sheetCol = 0, 0
		m.setStatus("Spreadsheet reset")
	}
	return m, nil
}

func (m *model) handleDrawingKey(key string) (tea.Model, tea.Cmd) {
	canvas := m.session.Canvas()
	switch key {
	case "m":
		m.drawModeIdx = (m.drawModeIdx + 1) % len(drawing.Modes)
		m.setStatus(fmt.Sprintf("Mode: %s", drawing.Modes[m.drawModeIdx]))
	case "a":
		if err := canvas.Add(m.demoShape()); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("%s added (%d shapes)", drawing.Modes[m.drawModeIdx], len(canvas.Shapes())))
	case "u":
		canvas.Undo()
		m.setStatus("Undid last shape")
	case "x":
		canvas.Clear()
		m.setStatus("Canvas cleared")
	case "j":
		data, err := canvas.ExportJSON()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.saveExport("drawing.json", data)
	case "p":
		data, err := canvas.ExportPNG()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.saveExport("drawing.png", data)
	}
	return m, nil
}

// demoShape places a shape of the active mode, staggered by shape count so
// repeated adds stay visible.
func (m *model) demoShape() drawing.Shape {
	canvas := m.session.Canvas()
	offset := len(canvas.Shapes()) * 30
	x := 100 + offset
	y := 100 + offset/2

	mode := drawing.Modes[m.drawModeIdx]
	s := drawing.Shape{
		Mode:        mode,
		StrokeWidth: drawing.DefaultStrokeWidth,
		StrokeColor: "#1e88e5",
	}
	switch mode {
	case drawing.ModeFreedraw:
		s.Points = []drawing.Point{{X: x, Y: y}, {X: x + 40, Y: y + 20}, {X: x + 80, Y: y - 10}}
	case drawing.ModeRect:
		s.Points = []drawing.Point{{X: x, Y: y}, {X: x + 120, Y: y + 80}}
		s.FillColor = "#a8e6cf"
	case drawing.ModeCircle:
		s.Points = []drawing.Point{{X: x, Y: y}, {X: x + 50, Y: y}}
	default:
		s.Points = []drawing.Point{{X: x, Y: y}, {X: x + 150, Y: y + 60}}
	}
	return s
}

func (m *model) handleConverterKey(key string) (tea.Model, tea.Cmd) {
	categories := m.registry.Categories()
	switch key {
	case "left":
		if m.categoryIdx > 0 {
			m.categoryIdx--
			m.entryIdx = 0
		}
	case "right":
		if m.categoryIdx < len(categories)-1 {
			m.categoryIdx++
			m.entryIdx = 0
		}
	case "up":
		if m.entryIdx > 0 {
			m.entryIdx--
		}
	case "down":
		entries, err := m.registry.Entries(categories[m.categoryIdx])
		if err == nil && m.entryIdx < len(entries)-1 {
			m.entryIdx++
		}
	case "enter":
		entry, err := m.selectedEntry()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		if entry.Input.IsText() {
			return m.openLine(targetConvertText, fmt.Sprintf("Paste %s input", entry.Input))
		}
		return m.openLine(targetConvertFile, fmt.Sprintf("Path to a %s file", entry.Input))
	}
	return m, nil
}

// selectedEntry resolves the converter cursor to a registry entry.
func (m *model) selectedEntry() (convert.Entry, error) {
	categories := m.registry.Categories()
	if m.categoryIdx >= len(categories) {
		m.categoryIdx = 0
	}
	entries, err := m.registry.Entries(categories[m.categoryIdx])
	if err != nil {
		return convert.Entry{}, err
	}
	if m.entryIdx >= len(entries) {
		m.entryIdx = len(entries) - 1
	}
	return entries[m.entryIdx], nil
}

func (m *model) handleOCRKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "i":
		if m.ocrErr != nil {
			m.setError(m.ocrErr)
			return m, nil
		}
		return m.openLine(targetOCRFile, "Path to an image file")
	case "r":
		if result := m.session.OCRResult(); result != nil {
			m.saveExport("ocr_report.txt", []byte(result.Report()))
		}
	case "t":
		if result := m.session.OCRResult(); result != nil {
			m.saveExport("ocr_text.txt", []byte(result.Text))
		}
	case "c":
		result := m.session.OCRResult()
		if result == nil {
			return m, nil
		}
		if err := clipboard.WriteAll(result.Text); err != nil {
			m.setError(fmt.Errorf("clipboard: %w", err))
			return m, nil
		}
		m.setStatus("Extracted text copied to clipboard")
	case "j":
		result := m.session.OCRResult()
		if result == nil {
			return m, nil
		}
		data, err := result.JSON()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.saveExport("ocr_result.json", data)
	case "x":
		m.session.ClearOCRResult()
		m.setStatus("Extraction cleared")
	}
	return m, nil
}

func (m *model) handleCodeRunnerKey(key string) (tea.Model, tea.Cmd) {
	ws := m.session.Runner()
	lang := coderunner.Languages[m.langIdx]

	if key == "l" {
		m.langIdx = (m.langIdx + 1) % len(coderunner.Languages)
		m.setStatus(fmt.Sprintf("Language: %s", coderunner.Languages[m.langIdx]))
		return m, nil
	}

	// Only HTML/CSS has a working workspace; the other languages render a
	// placeholder and take no edit or export keys.
	if !lang.Runnable() {
		return m, nil
	}

	switch key {
	case "e":
		m.textarea.SetValue(ws.HTML())
		return m.openEditor(editHTML)
	case "c":
		m.textarea.SetValue(ws.CSS())
		return m.openEditor(editCSS)
	case "r":
		ws.Reset()
		m.setStatus("Templates restored")
	case "s":
		exp := ws.ExportCombined()
		m.saveExport(exp.Filename, exp.Data)
	case "h":
		exp := ws.ExportHTML()
		m.saveExport(exp.Filename, exp.Data)
	case "y":
		exp := ws.ExportCSS()
		m.saveExport(exp.Filename, exp.Data)
	}
	return m, nil
}

func (m *model) handleAssistantKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "i", "enter":
		return m.openLine(targetChatPrompt, "Ask the assistant")
	case "s":
		doc := m.session.Notepad().PlainText()
		if strings.TrimSpace(doc) == "" {
			m.setError(fmt.Errorf("nothing to summarize: the notepad is empty"))
			return m, nil
		}
		prompt := assistant.SummarizePrompt(doc,
			assistant.SummaryLengths[m.sumLenIdx], assistant.SummaryStyles[m.sumStyleIdx])
		return m.startOneShot(prompt, "summary.txt", "Summarizing...")
	case "e":
		prompt := assistant.ExplainCodePrompt(m.session.Runner().HTML(), "Other",
			assistant.ExplanationTypes[m.explainTypeIdx])
		return m.startOneShot(prompt, "explanation.txt", "Explaining code...")
	case "p":
		return m.openLine(targetImageDesc, "Describe the image to prompt for")
	case "g":
		return m.openLine(targetCodeGenDesc, "Describe the code to generate")
	case "t":
		m.explainTypeIdx = (m.explainTypeIdx + 1) % len(assistant.ExplanationTypes)
		m.setStatus(fmt.Sprintf("Explanation: %s", assistant.ExplanationTypes[m.explainTypeIdx]))
	case "l":
		m.sumLenIdx = (m.sumLenIdx + 1) % len(assistant.SummaryLengths)
		m.setStatus(fmt.Sprintf("Summary length: %s", assistant.SummaryLengths[m.sumLenIdx]))
	case "y":
		m.sumStyleIdx = (m.sumStyleIdx + 1) % len(assistant.SummaryStyles)
		m.setStatus(fmt.Sprintf("Summary style: %s", assistant.SummaryStyles[m.sumStyleIdx]))
	case "a":
		m.imgStyleIdx = (m.imgStyleIdx + 1) % len(assistant.ImageStyles)
		m.setStatus(fmt.Sprintf("Image style: %s", assistant.ImageStyles[m.imgStyleIdx]))
	case "o":
		m.imgMoodIdx = (m.imgMoodIdx + 1) % len(assistant.ImageMoods)
		m.setStatus(fmt.Sprintf("Image mood: %s", assistant.ImageMoods[m.imgMoodIdx]))
	case "n":
		m.genLangIdx = (m.genLangIdx + 1) % len(assistant.GeneratorLanguages)
		m.setStatus(fmt.Sprintf("Generator language: %s", assistant.GeneratorLanguages[m.genLangIdx]))
	case "w":
		m.codeStyleIdx = (m.codeStyleIdx + 1) % len(assistant.CodeStyles)
		m.setStatus(fmt.Sprintf("Code style: %s", assistant.CodeStyles[m.codeStyleIdx]))
	case "m":
		m.modelIdx = (m.modelIdx + 1) % len(assistant.FreeModels)
		m.switchModel()
		m.setStatus(fmt.Sprintf("Model: %s", m.currentModel().Name))
	case "c":
		history := m.session.Chat().History()
		if len(history) == 0 {
			return m, nil
		}
		last := history[len(history)-1]
		if err := clipboard.WriteAll(last.Content); err != nil {
			m.setError(fmt.Errorf("clipboard: %w", err))
			return m, nil
		}
		m.setStatus("Last message copied to clipboard")
	case "x":
		m.session.Chat().Clear()
		m.setStatus("Conversation cleared")
	}
	return m, nil
}

func (m *model) handleBrainstormKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "i":
		return m.openLine(targetIdea, "New idea")
	case "g":
		return m.openLine(targetBrainstormTopic, "Topic to brainstorm")
	case "k":
		m.brainKindIdx = (m.brainKindIdx + 1) % len(brainstorm.Kinds)
		m.setStatus(fmt.Sprintf("Generating: %s", brainstorm.Kinds[m.brainKindIdx]))
	case "+":
		if m.brainCount < brainstorm.MaxIdeas {
			m.brainCount++
		}
	case "-":
		if m.brainCount > brainstorm.MinIdeas {
			m.brainCount--
		}
	case "d":
		board := m.session.Board()
		if n := len(board.Ideas()); n > 0 {
			if err := board.Remove(n - 1); err == nil {
				m.setStatus("Last idea removed")
			}
		}
	case "x":
		m.session.Board().Clear()
		m.setStatus("Board cleared")
	}
	return m, nil
}

func (m *model) openEditor(target editorTarget) (tea.Model, tea.Cmd) {
	m.editingFor = target
	m.mode = modeEditor
	m.status = ""
	return m, m.textarea.Focus()
}

func (m *model) openLine(target lineTarget, placeholder string) (tea.Model, tea.Cmd) {
	m.lineFor = target
	m.mode = modeLine
	m.input.Placeholder = placeholder
	m.status = ""
	return m, m.input.Focus()
}

// switchModel rebuilds the provider for the newly selected model. A missing
// key leaves the provider nil; the AI tools report that on use.
func (m *model) switchModel() {
	p, err := newProvider(m.cfg, m.currentModel().ID)
	if err != nil {
		m.provider = nil
		return
	}
	m.provider = p
}

// saveExport writes a download to the working directory and reports the
// outcome on the status line.
func (m *model) saveExport(name string, data []byte) {
	if err := saveFile(name, data); err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Saved %s", name))
}

func saveFile(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0600); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// startOneShot kicks off a standalone assistant tool: spinner on, request
// off the event loop, result saved under filename when the reply lands.
func (m *model) startOneShot(prompt, filename, loading string) (tea.Model, tea.Cmd) {
	if m.provider == nil {
		m.setError(errNoProvider)
		return m, nil
	}
	m.busy = true
	m.loadingText = loading
	return m, tea.Batch(m.spinner.Tick, m.oneShotCmd(prompt, filename))
}

// askCmd sends an already-built chat request to the provider off the event
// loop. The exchange is recorded into the session when aiReplyMsg arrives.
func (m *model) askCmd(prompt string, messages []*llm.Message) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply, err := provider.Complete(ctx, messages)
		if err != nil {
			return aiReplyMsg{prompt: prompt, err: err}
		}
		return aiReplyMsg{prompt: prompt, reply: reply}
	}
}

// oneShotCmd runs a standalone assistant prompt off the event loop.
func (m *model) oneShotCmd(prompt, filename string) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply, err := provider.Complete(ctx, []*llm.Message{llm.NewUserMessage(prompt)})
		if err != nil {
			return oneShotMsg{filename: filename, err: err}
		}
		return oneShotMsg{filename: filename, content: reply.Content}
	}
}

// generateCmd asks the provider for ideas off the event loop. The reply is
// parsed in the command (ParseIdeas is pure); the board grows in Update.
func (m *model) generateCmd(prompt string, count int) tea.Cmd {
	provider := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply, err := provider.Complete(ctx, []*llm.Message{llm.NewUserMessage(prompt)})
		if err != nil {
			return ideasMsg{err: err}
		}
		ideas := brainstorm.ParseIdeas(reply.Content, count)
		if len(ideas) == 0 {
			return ideasMsg{err: fmt.Errorf("the model returned no usable ideas")}
		}
		return ideasMsg{ideas: ideas}
	}
}

func (m *model) convertCmd(entry string, payload convert.Payload, input string) tea.Cmd {
	registry := m.registry
	return func() tea.Msg {
		result, err := registry.Convert(entry, payload)
		return convertDoneMsg{entry: entry, result: result, input: input, err: err}
	}
}

func (m *model) ocrCmd(source string, data []byte) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		blocks, err := engine.Recognize(ctx, data)
		if err != nil {
			return ocrDoneMsg{err: err}
		}
		return ocrDoneMsg{result: ocr.NewResult(source, blocks)}
	}
}
