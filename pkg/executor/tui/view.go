package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jaiholabs/devlink/pkg/session"
)

// asciiHeader is the banner shown above the toolbar.
const asciiHeader = `
 ____  _______     __  _     ___ _   _ _  __
|  _ \| ____\ \   / / | |   |_ _| \ | | |/ /
| | | |  _|  \ \ / /  | |    | ||  \| | ' /
| |_| | |___  \ V /   | |___ | || |\  | . \
|____/|_____|  \_/    |_____|___|_| \_|_|\_\
`

// View implements tea.Model.
func (m *model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(asciiHeader))
	b.WriteString("\n")
	b.WriteString(tipsStyle.Render("One dashboard for notes, data, drawings, conversions and AI help."))
	b.WriteString("\n\n")
	b.WriteString(m.renderToolbar())
	b.WriteString("\n\n")

	switch m.mode {
	case modeEditor:
		b.WriteString(m.renderEditor())
	case modeLine:
		b.WriteString(m.renderPanel())
		b.WriteString("\n")
		b.WriteString(inputBoxStyle.Render(m.input.View()))
	default:
		b.WriteString(m.renderPanel())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderToolbar draws the eight tool toggles with the active one
// highlighted.
func (m *model) renderToolbar() string {
	parts := make([]string, 0, len(session.Tools))
	for i, id := range session.Tools {
		label := fmt.Sprintf("[%d] %s", i+1, session.Label(id))
		if id == m.session.Current() {
			parts = append(parts, activeToolStyle.Render(label))
		} else {
			parts = append(parts, idleToolStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (m *model) renderEditor() string {
	title := map[editorTarget]string{
		editNote: "Notepad",
		editHTML: "HTML Editor",
		editCSS:  "CSS Editor",
	}[m.editingFor]

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")
	b.WriteString(tipsStyle.Render("esc saves and returns"))
	return b.String()
}

func (m *model) renderPanel() string {
	if m.session.Idle() {
		return m.renderWelcome()
	}

	var body string
	switch m.session.Current() {
	case session.ToolNotepad:
		body = m.renderNotepad()
	case session.ToolSpreadsheet:
		body = m.renderSpreadsheet()
	case session.ToolDrawing:
		body = m.renderDrawing()
	case session.ToolConverter:
		body = m.renderConverter()
	case session.ToolOCR:
		body = m.renderOCR()
	case session.ToolCodeRunner:
		body = m.renderCodeRunner()
	case session.ToolAssistant:
		body = m.renderAssistant()
	case session.ToolBrainstorm:
		body = m.renderBrainstorm()
	}
	return panelStyle.Width(m.panelWidth()).Render(body)
}

func (m *model) panelWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m *model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to Dev Link"))
	b.WriteString("\n\n")
	b.WriteString("Press a number key to open a tool. Pressing it again closes the tool\n")
	b.WriteString("and returns here. Your work in every tool is kept for the whole session.\n\n")
	for i, id := range session.Tools {
		fmt.Fprintf(&b, "  %d  %s\n", i+1, session.Label(id))
	}
	if unavailable := m.registry.Unavailable(); len(unavailable) > 0 {
		b.WriteString("\n")
		for _, e := range unavailable {
			b.WriteString(warningStyle.Render(fmt.Sprintf("%s disabled: %s", e.Name, e.Reason)))
			b.WriteString("\n")
		}
	}
	if m.ocrErr != nil {
		b.WriteString(warningStyle.Render(fmt.Sprintf("OCR disabled: %v", m.ocrErr)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *model) renderStatusBar() string {
	if m.busy {
		return statusBarStyle.Render(m.spinner.View() + " " + m.loadingText)
	}

	var left string
	switch {
	case m.status != "" && m.statErr:
		left = errorStyle.Render(m.status)
	case m.status != "":
		left = successStyle.Render(m.status)
	default:
		left = tipsStyle.Render(m.hint())
	}
	return statusBarStyle.Render(left)
}

// hint returns the keymap line for the current panel.
func (m *model) hint() string {
	if m.mode == modeLine {
		return "enter submits, esc cancels"
	}
	switch m.session.Current() {
	case session.ToolNotepad:
		return "e edit, f format, p preview, b bold, t/d/h export txt/md/html, x clear, esc close"
	case session.ToolSpreadsheet:
		return "arrows move, e edit cell, a row, c column, r remove row, s/j export, x reset"
	case session.ToolDrawing:
		return "m mode, a add shape, u undo, j/p export, x clear"
	case session.ToolConverter:
		return "left/right category, up/down entry, enter convert"
	case session.ToolOCR:
		return "enter extract from image, t text, r report, j json, c copy, x clear"
	case session.ToolCodeRunner:
		return "l language, e html, c css, s/h/y export, r reset"
	case session.ToolAssistant:
		return "i ask, s summarize, e explain, p image, g generate, m model, t/l/y/a/o/n/w options, c copy, x clear"
	case session.ToolBrainstorm:
		return "i add, g generate, k kind, +/- count, d remove last, x clear"
	}
	return "1-8 open a tool, q quits"
}
