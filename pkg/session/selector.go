// Package session holds the per-session state of the dashboard: which tool
// panel is currently visible and the scratch state each tool accumulates
// while the session is alive. Nothing in this package is persisted.
package session

// ToolID identifies one tool panel.
type ToolID string

const (
	ToolNotepad     ToolID = "notepad"
	ToolSpreadsheet ToolID = "spreadsheet"
	ToolDrawing     ToolID = "drawing"
	ToolConverter   ToolID = "converter"
	ToolOCR         ToolID = "ocr"
	ToolCodeRunner  ToolID = "code_runner"
	ToolAssistant   ToolID = "assistant"
	ToolBrainstorm  ToolID = "brainstorm"
)

// Tools lists every tool in display order.
var Tools = []ToolID{
	ToolNotepad,
	ToolSpreadsheet,
	ToolDrawing,
	ToolConverter,
	ToolOCR,
	ToolCodeRunner,
	ToolAssistant,
	ToolBrainstorm,
}

// Selector is a single-slot holder for the active tool. It is a two-state
// machine: Idle (no panel shown) or Showing(tool). Toggling the tool that is
// already showing returns to Idle; toggling any other tool switches to it.
//
// The zero value is Idle and ready to use.
type Selector struct {
	active ToolID
}

// Toggle flips the selection for id and returns the new active tool.
// Toggle is total: any id is accepted, including ones not in Tools.
func (s *Selector) Toggle(id ToolID) ToolID {
	if s.active == id {
		s.active = ""
	} else {
		s.active = id
	}
	return s.active
}

// Current returns the active tool, or the empty ToolID when idle.
func (s *Selector) Current() ToolID {
	return s.active
}

// Idle reports whether no tool is showing.
func (s *Selector) Idle() bool {
	return s.active == ""
}

// Reset clears the selection back to Idle.
func (s *Selector) Reset() {
	s.active = ""
}

// Label returns a human-readable name for a tool.
func Label(id ToolID) string {
	switch id {
	case ToolNotepad:
		return "Notepad"
	case ToolSpreadsheet:
		return "Spreadsheet"
	case ToolDrawing:
		return "Drawing Tool"
	case ToolConverter:
		return "File Converter"
	case ToolOCR:
		return "OCR"
	case ToolCodeRunner:
		return "Code Runner"
	case ToolAssistant:
		return "AI Tools"
	case ToolBrainstorm:
		return "Brainstorm"
	default:
		return string(id)
	}
}
