package notepad

import (
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestEditorBuffer(t *testing.T) {
	e := New()

	if e.Content() != "" || e.Format() != FormatPlain {
		t.Fatal("new editor should be empty plain text")
	}

	e.SetContent("hello world")
	e.Append(" again")
	if e.Content() != "hello world again" {
		t.Errorf("unexpected content %q", e.Content())
	}

	e.Clear()
	if e.Content() != "" {
		t.Error("Clear left content behind")
	}
}

func TestFormatSwitchKeepsContent(t *testing.T) {
	e := New()
	e.SetContent("# Heading")

	e.SetFormat(FormatMarkdown)
	if e.Content() != "# Heading" {
		t.Error("format switch lost content")
	}

	e.TogglePreview()
	if !e.Preview() {
		t.Error("preview should toggle on in markdown format")
	}

	e.SetFormat(FormatPlain)
	if e.Preview() {
		t.Error("preview should reset outside markdown")
	}
	e.TogglePreview()
	if e.Preview() {
		t.Error("preview must not toggle outside markdown")
	}
}

func TestCounts(t *testing.T) {
	e := New()

	e.SetContent("one two three")
	words, chars := e.Counts()
	if words != 3 || chars != 13 {
		t.Errorf("expected 3 words / 13 chars, got %d / %d", words, chars)
	}

	// Rich text counts the visible text, not the markup.
	e.SetFormat(FormatRich)
	e.SetContent("<p><b>one</b> two</p>")
	words, chars = e.Counts()
	if words != 2 {
		t.Errorf("expected 2 words, got %d", words)
	}
	if chars != len("one two") {
		t.Errorf("expected %d chars, got %d", len("one two"), chars)
	}
}

func TestRenderHTML(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		e := New()
		e.SetFormat(FormatMarkdown)
		e.SetContent("**bold** move")
		out, err := e.RenderHTML()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "<strong>bold</strong>") {
			t.Errorf("markdown not rendered: %q", out)
		}
	})

	t.Run("plain text is escaped", func(t *testing.T) {
		e := New()
		e.SetContent("1 < 2 & 3")
		out, err := e.RenderHTML()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(out, "<") || !strings.Contains(out, "&lt;") {
			t.Errorf("plain text not escaped: %q", out)
		}
	})

	t.Run("rich text passes through", func(t *testing.T) {
		e := New()
		e.SetFormat(FormatRich)
		e.SetContent("<b>kept</b>")
		out, err := e.RenderHTML()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "<b>kept</b>" {
			t.Errorf("rich text altered: %q", out)
		}
	})
}

func TestExports(t *testing.T) {
	e := New()
	e.now = fixedClock
	e.SetFormat(FormatRich)
	e.SetContent("<p>note body</p>")

	t.Run("txt strips markup", func(t *testing.T) {
		exp := e.ExportTXT()
		if exp.Filename != "note_20250314_092653.txt" {
			t.Errorf("unexpected filename %q", exp.Filename)
		}
		if string(exp.Data) != "note body" {
			t.Errorf("unexpected data %q", exp.Data)
		}
	})

	t.Run("md keeps the raw buffer", func(t *testing.T) {
		exp := e.ExportMD()
		if string(exp.Data) != "<p>note body</p>" {
			t.Errorf("unexpected data %q", exp.Data)
		}
		if !strings.HasSuffix(exp.Filename, ".md") {
			t.Errorf("unexpected filename %q", exp.Filename)
		}
	})

	t.Run("html wraps a full document", func(t *testing.T) {
		exp, err := e.ExportHTML()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc := string(exp.Data)
		if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
			t.Error("expected a standalone document")
		}
		if !strings.Contains(doc, "<p>note body</p>") {
			t.Error("body missing from document")
		}
	})
}

func TestStripTagsMalformed(t *testing.T) {
	if got := stripTags("<b>unclosed"); got != "unclosed" {
		t.Errorf("expected salvaged text, got %q", got)
	}
	if got := stripTags("no tags at all"); got != "no tags at all" {
		t.Errorf("tag-free text altered: %q", got)
	}
}
