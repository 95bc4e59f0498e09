package tui

import (
	"fmt"
	"strings"

	"github.com/jaiholabs/devlink/pkg/assistant"
	"github.com/jaiholabs/devlink/pkg/brainstorm"
	"github.com/jaiholabs/devlink/pkg/coderunner"
	"github.com/jaiholabs/devlink/pkg/drawing"
	"github.com/jaiholabs/devlink/pkg/llm"
	"github.com/jaiholabs/devlink/pkg/notepad"
)

// previewLines caps how much of a buffer a panel shows inline.
const previewLines = 16

func (m *model) renderNotepad() string {
	pad := m.session.Notepad()
	words, chars := pad.Counts()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Notepad"))
	fmt.Fprintf(&b, "  %s\n", tipsStyle.Render(string(pad.Format())))

	content := pad.Content()
	if content == "" {
		b.WriteString("\n")
		b.WriteString(tipsStyle.Render("Empty note. Press e to start writing."))
		b.WriteString("\n")
	} else if pad.Format() == notepad.FormatMarkdown && pad.Preview() {
		rendered, err := pad.RenderHTML()
		if err != nil {
			rendered = content
		}
		b.WriteString("\n")
		b.WriteString(clip(rendered, previewLines))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(clip(content, previewLines))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s", tipsStyle.Render(fmt.Sprintf("%d words, %d characters", words, chars)))
	return b.String()
}

func (m *model) renderSpreadsheet() string {
	sheet := m.session.Sheet()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Spreadsheet"))
	b.WriteString("\n\n")

	widths := columnWidths(sheet.Columns(), sheet)

	header := make([]string, len(sheet.Columns()))
	for i, col := range sheet.Columns() {
		header[i] = pad(col, widths[i])
	}
	b.WriteString(selectedStyle.Render(" " + strings.Join(header, " | ") + " "))
	b.WriteString("\n")

	for r := 0; r < sheet.Rows(); r++ {
		row, err := sheet.Row(r)
		if err != nil {
			continue
		}
		cells := make([]string, len(row))
		for c, v := range row {
			cell := pad(v, widths[c])
			if r == m.sheetRow && c == m.sheetCol {
				cell = selectedStyle.Render(cell)
			}
			cells[c] = cell
		}
		b.WriteString(" " + strings.Join(cells, " | ") + " \n")
	}
	return b.String()
}

func columnWidths(columns []string, sheet interface {
	Rows() int
	Row(int) ([]string, error)
}) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col)
	}
	for r := 0; r < sheet.Rows(); r++ {
		row, err := sheet.Row(r)
		if err != nil {
			continue
		}
		for c, v := range row {
			if c < len(widths) && len(v) > widths[c] {
				widths[c] = len(v)
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (m *model) renderDrawing() string {
	canvas := m.session.Canvas()
	w, h := canvas.Size()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Drawing Tool"))
	fmt.Fprintf(&b, "  %s\n\n", tipsStyle.Render(fmt.Sprintf("%dx%d canvas", w, h)))
	fmt.Fprintf(&b, "Mode: %s\n", string(drawing.Modes[m.drawModeIdx]))
	fmt.Fprintf(&b, "Shapes: %d\n", len(canvas.Shapes()))

	shapes := canvas.Shapes()
	start := 0
	if len(shapes) > previewLines {
		start = len(shapes) - previewLines
	}
	for i := start; i < len(shapes); i++ {
		s := shapes[i]
		fmt.Fprintf(&b, "  %2d. %-8s stroke %s width %d\n", i+1, s.Mode, s.StrokeColor, s.StrokeWidth)
	}
	return b.String()
}

func (m *model) renderConverter() string {
	categories := m.registry.Categories()

	var b strings.Builder
	b.WriteString(titleStyle.Render("File Converter"))
	b.WriteString("\n\n")

	tabs := make([]string, len(categories))
	for i, c := range categories {
		if i == m.categoryIdx {
			tabs[i] = activeToolStyle.Render(c)
		} else {
			tabs[i] = idleToolStyle.Render(c)
		}
	}
	b.WriteString(strings.Join(tabs, "   "))
	b.WriteString("\n\n")

	entries, err := m.registry.Entries(categories[m.categoryIdx])
	if err != nil {
		b.WriteString(warningStyle.Render(fmt.Sprintf("No conversions available: %v", err)))
		b.WriteString("\n")
	} else {
		for i, e := range entries {
			line := fmt.Sprintf("%s  (%s to %s)", e.Name, e.Input, e.Output)
			if i == m.entryIdx {
				b.WriteString(selectedStyle.Render(" " + line + " "))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if unavailable := m.registry.Unavailable(); len(unavailable) > 0 {
		b.WriteString("\n")
		for _, e := range unavailable {
			b.WriteString(warningStyle.Render(fmt.Sprintf("%s: %s", e.Name, e.Reason)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *model) renderOCR() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("OCR Text Extraction"))
	b.WriteString("\n\n")

	if m.ocrErr != nil {
		b.WriteString(warningStyle.Render(fmt.Sprintf("Unavailable: %v", m.ocrErr)))
		b.WriteString("\n")
		return b.String()
	}

	result := m.session.OCRResult()
	if result == nil {
		b.WriteString(tipsStyle.Render("No extraction yet. Press enter and give an image path."))
		b.WriteString("\n")
		return b.String()
	}

	d := result.Distribution()
	if result.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", result.Source)
	}
	fmt.Fprintf(&b, "Words: %d   Characters: %d\n", result.WordCount(), result.CharCount())
	fmt.Fprintf(&b, "Confidence: %.1f%%   Quality: %s\n", result.AverageConfidence()*100, result.Quality())
	fmt.Fprintf(&b, "Distribution: %d high / %d medium / %d low\n\n", d.High, d.Medium, d.Low)
	b.WriteString(clip(result.Text, previewLines))
	b.WriteString("\n")
	return b.String()
}

// placeholderLexers maps the non-runnable languages to chroma lexer names
// for rendering their placeholder code.
var placeholderLexers = map[coderunner.Language]string{
	coderunner.LanguagePython: "python",
	coderunner.LanguageJava:   "java",
	coderunner.LanguageCPP:    "cpp",
}

func (m *model) renderCodeRunner() string {
	ws := m.session.Runner()
	lang := coderunner.Languages[m.langIdx]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Code Runner"))
	fmt.Fprintf(&b, "  %s\n\n", tipsStyle.Render(string(lang)))

	if !lang.Runnable() {
		b.WriteString(clip(coderunner.Highlight(coderunner.PlaceholderCode(lang), placeholderLexers[lang]), previewLines))
		b.WriteString("\n\n")
		b.WriteString(tipsStyle.Render("Press l to switch back to HTML/CSS."))
		b.WriteString("\n")
		return b.String()
	}

	htmlLexer, cssLexer := coderunner.HighlightLanguage(lang)
	b.WriteString(titleStyle.Render("HTML"))
	b.WriteString("\n")
	b.WriteString(clip(coderunner.Highlight(ws.HTML(), htmlLexer), previewLines/2))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("CSS"))
	b.WriteString("\n")
	b.WriteString(clip(coderunner.Highlight(ws.CSS(), cssLexer), previewLines/2))
	b.WriteString("\n")
	return b.String()
}

func (m *model) renderAssistant() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AI Assistant"))
	fmt.Fprintf(&b, "  %s\n\n", tipsStyle.Render(m.currentModel().Name))

	if m.provider == nil {
		b.WriteString(warningStyle.Render("No API key configured. Set OPENROUTER_API_KEY or use --api-key."))
		b.WriteString("\n\n")
	}

	b.WriteString(tipsStyle.Render(fmt.Sprintf(
		"Explain: %s   Summary: %s/%s   Image: %s/%s   Generate: %s/%s",
		assistant.ExplanationTypes[m.explainTypeIdx],
		assistant.SummaryLengths[m.sumLenIdx], assistant.SummaryStyles[m.sumStyleIdx],
		assistant.ImageStyles[m.imgStyleIdx], assistant.ImageMoods[m.imgMoodIdx],
		assistant.GeneratorLanguages[m.genLangIdx], assistant.CodeStyles[m.codeStyleIdx])))
	b.WriteString("\n")

	history := m.session.Chat().History()
	if len(history) == 0 {
		b.WriteString("\n")
		b.WriteString(tipsStyle.Render("Start a conversation with i."))
		b.WriteString("\n")
		return b.String()
	}

	var transcript strings.Builder
	for _, msg := range history {
		transcript.WriteString(msg.Content)
		transcript.WriteString("\n")
	}
	used := assistant.CountTokens(m.currentModel().ID, transcript.String())
	line := fmt.Sprintf("History: %d tokens (reply budget %d)", used, m.cfg.LLM.MaxTokens)
	if used > m.cfg.LLM.MaxTokens {
		b.WriteString(warningStyle.Render(line))
	} else {
		b.WriteString(tipsStyle.Render(line))
	}
	b.WriteString("\n\n")

	start := 0
	if len(history) > 8 {
		start = len(history) - 8
	}
	for _, msg := range history[start:] {
		prefix := "You"
		style := titleStyle
		if msg.Role == llm.RoleAssistant {
			prefix = "Assistant"
			style = successStyle
		}
		b.WriteString(style.Render(prefix + ":"))
		b.WriteString(" ")
		b.WriteString(clip(msg.Content, 6))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m *model) renderBrainstorm() string {
	board := m.session.Board()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Brainstorm Board"))
	fmt.Fprintf(&b, "  %s\n\n", tipsStyle.Render(fmt.Sprintf("%s, %d at a time",
		brainstorm.Kinds[m.brainKindIdx], m.brainCount)))

	ideas := board.Ideas()
	if len(ideas) == 0 {
		b.WriteString(tipsStyle.Render("The board is empty. Add with i or generate with g."))
		b.WriteString("\n")
		return b.String()
	}
	for i, idea := range ideas {
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, idea)
	}
	return b.String()
}

// clip limits a multi-line string to n lines, marking the cut.
func clip(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:n], "\n") + "\n" + tipsStyle.Render(fmt.Sprintf("... %d more lines", len(lines)-n))
}
