package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaiholabs/devlink/pkg/ocr"
)

func TestScratchIsLazyAndStable(t *testing.T) {
	s := New()

	pad := s.Notepad()
	require.NotNil(t, pad)
	assert.Same(t, pad, s.Notepad(), "accessor must return the same scratch")

	assert.Same(t, s.Sheet(), s.Sheet())
	assert.Same(t, s.Canvas(), s.Canvas())
	assert.Same(t, s.Runner(), s.Runner())
	assert.Same(t, s.Chat(), s.Chat())
	assert.Same(t, s.Board(), s.Board())
}

func TestScratchSurvivesToggling(t *testing.T) {
	s := New()

	s.Toggle(ToolNotepad)
	s.Notepad().SetContent("meeting notes")
	s.Toggle(ToolNotepad) // back to idle
	s.Toggle(ToolSpreadsheet)
	s.Toggle(ToolNotepad)

	assert.Equal(t, "meeting notes", s.Notepad().Content())
}

func TestSheetScratchStartsSeeded(t *testing.T) {
	s := New()
	sheet := s.Sheet()

	require.Equal(t, []string{"Task", "Status", "Priority"}, sheet.Columns())
	assert.Equal(t, 2, sheet.Rows())
}

func TestOCRResultLifecycle(t *testing.T) {
	s := New()
	assert.Nil(t, s.OCRResult())

	result := ocr.NewResult("scan.png", []ocr.Block{{Text: "hello", Confidence: 0.9}})
	s.SetOCRResult(result)
	require.Same(t, result, s.OCRResult())

	// Toggling tools leaves the extraction alone.
	s.Toggle(ToolOCR)
	s.Toggle(ToolOCR)
	assert.Same(t, result, s.OCRResult())

	s.ClearOCRResult()
	assert.Nil(t, s.OCRResult())
}
