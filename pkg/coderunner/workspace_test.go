package coderunner

import (
	"strings"
	"testing"
)

func TestNewWorkspaceSeedsTemplates(t *testing.T) {
	w := NewWorkspace()

	if !strings.Contains(w.HTML(), "Welcome to Code Runner!") {
		t.Error("HTML buffer missing default template")
	}
	if !strings.Contains(w.CSS(), ".container") {
		t.Error("CSS buffer missing default template")
	}
}

func TestReset(t *testing.T) {
	w := NewWorkspace()
	w.SetHTML("<p>mine</p>")
	w.SetCSS("p { color: red; }")

	w.Reset()
	if w.HTML() != DefaultHTML || w.CSS() != DefaultCSS {
		t.Error("Reset did not restore the default templates")
	}
}

func TestCombine(t *testing.T) {
	w := NewWorkspace()
	w.SetHTML("<p>body here</p>")
	w.SetCSS("p { color: blue; }")

	doc := w.Combine()
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("combined document missing doctype")
	}

	styleAt := strings.Index(doc, "p { color: blue; }")
	bodyAt := strings.Index(doc, "<p>body here</p>")
	if styleAt == -1 || bodyAt == -1 {
		t.Fatal("buffers missing from combined document")
	}
	if styleAt > bodyAt {
		t.Error("CSS should be inlined in the head, before the body")
	}
	if !strings.Contains(doc[:bodyAt], "</head>") {
		t.Error("body content leaked into the head")
	}
}

func TestExports(t *testing.T) {
	w := NewWorkspace()

	cases := []struct {
		export   Export
		filename string
		mime     string
	}{
		{w.ExportHTML(), "index.html", "text/html"},
		{w.ExportCSS(), "styles.css", "text/css"},
		{w.ExportCombined(), "complete.html", "text/html"},
	}
	for _, tc := range cases {
		if tc.export.Filename != tc.filename {
			t.Errorf("expected filename %q, got %q", tc.filename, tc.export.Filename)
		}
		if tc.export.MIME != tc.mime {
			t.Errorf("expected MIME %q, got %q", tc.mime, tc.export.MIME)
		}
		if len(tc.export.Data) == 0 {
			t.Errorf("%s export is empty", tc.filename)
		}
	}
}

func TestLanguages(t *testing.T) {
	if !LanguageHTMLCSS.Runnable() {
		t.Error("HTML/CSS should be runnable")
	}
	for _, l := range []Language{LanguagePython, LanguageJava, LanguageCPP} {
		if l.Runnable() {
			t.Errorf("%s should not be runnable yet", l)
		}
		if PlaceholderCode(l) == "" {
			t.Errorf("%s has no placeholder", l)
		}
	}
}

func TestHighlight(t *testing.T) {
	src := "body { color: red; }"
	out := Highlight(src, "css")
	if !strings.Contains(out, "body") {
		t.Errorf("highlighted output lost the source text")
	}

	// Unknown language degrades to something containing the source.
	out = Highlight("plain words", "nonexistent-language")
	if !strings.Contains(out, "plain words") {
		t.Error("fallback lost the source text")
	}
}
