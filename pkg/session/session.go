package session

import (
	"github.com/jaiholabs/devlink/pkg/assistant"
	"github.com/jaiholabs/devlink/pkg/brainstorm"
	"github.com/jaiholabs/devlink/pkg/coderunner"
	"github.com/jaiholabs/devlink/pkg/drawing"
	"github.com/jaiholabs/devlink/pkg/notepad"
	"github.com/jaiholabs/devlink/pkg/ocr"
	"github.com/jaiholabs/devlink/pkg/spreadsheet"
)

// Session is the explicit per-session context passed to every handler.
// It owns the tool selector and each tool's scratch state. Scratch is
// created lazily on first use and lives until the session ends or the
// user resets that tool.
//
// A Session is confined to a single goroutine (the UI event loop) and
// needs no locking.
type Session struct {
	Selector

	notepad *notepad.Editor
	sheet   *spreadsheet.Sheet
	canvas  *drawing.Canvas
	runner  *coderunner.Workspace
	chat    *assistant.Chat
	board   *brainstorm.Board
	ocrOut  *ocr.Result
}

// New returns an empty session in the Idle state.
func New() *Session {
	return &Session{}
}

// Notepad returns the notepad scratch, creating it on first use.
func (s *Session) Notepad() *notepad.Editor {
	if s.notepad == nil {
		s.notepad = notepad.New()
	}
	return s.notepad
}

// Sheet returns the spreadsheet scratch, creating it with seed data on
// first use.
func (s *Session) Sheet() *spreadsheet.Sheet {
	if s.sheet == nil {
		s.sheet = spreadsheet.New()
	}
	return s.sheet
}

// Canvas returns the drawing scratch, creating it on first use.
func (s *Session) Canvas() *drawing.Canvas {
	if s.canvas == nil {
		s.canvas = drawing.NewCanvas(drawing.DefaultWidth, drawing.DefaultHeight)
	}
	return s.canvas
}

// Runner returns the code runner scratch, creating it with the default
// templates on first use.
func (s *Session) Runner() *coderunner.Workspace {
	if s.runner == nil {
		s.runner = coderunner.NewWorkspace()
	}
	return s.runner
}

// Chat returns the assistant chat history, creating it on first use.
func (s *Session) Chat() *assistant.Chat {
	if s.chat == nil {
		s.chat = assistant.NewChat()
	}
	return s.chat
}

// Board returns the brainstorming board, creating it on first use.
func (s *Session) Board() *brainstorm.Board {
	if s.board == nil {
		s.board = brainstorm.NewBoard()
	}
	return s.board
}

// OCRResult returns the most recent OCR extraction, or nil if none.
func (s *Session) OCRResult() *ocr.Result {
	return s.ocrOut
}

// SetOCRResult stores an OCR extraction in the session scratch.
func (s *Session) SetOCRResult(r *ocr.Result) {
	s.ocrOut = r
}

// ClearOCRResult drops the stored OCR extraction.
func (s *Session) ClearOCRResult() {
	s.ocrOut = nil
}
