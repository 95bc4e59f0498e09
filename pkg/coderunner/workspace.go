// Package coderunner implements the code runner IDE: an HTML/CSS workspace
// with default templates, a combined-document export, and syntax-highlighted
// rendering of the editors. Other languages are placeholders until their
// runtimes land.
package coderunner

import (
	"fmt"
	"strings"
)

// Language is a selectable IDE language.
type Language string

const (
	LanguageHTMLCSS Language = "HTML/CSS"
	LanguagePython  Language = "Python"
	LanguageJava    Language = "Java"
	LanguageCPP     Language = "C/C++"
)

// Languages lists the selector entries in display order.
var Languages = []Language{LanguageHTMLCSS, LanguagePython, LanguageJava, LanguageCPP}

// Runnable reports whether the language has a working IDE. Only HTML/CSS
// runs today; the rest show a placeholder.
func (l Language) Runnable() bool {
	return l == LanguageHTMLCSS
}

// Workspace holds the HTML and CSS buffers. New buffers start from the
// default templates; Reset restores them.
type Workspace struct {
	html string
	css  string
}

// NewWorkspace creates a workspace seeded with the default templates.
func NewWorkspace() *Workspace {
	return &Workspace{html: DefaultHTML, css: DefaultCSS}
}

// HTML returns the HTML buffer.
func (w *Workspace) HTML() string {
	return w.html
}

// SetHTML replaces the HTML buffer.
func (w *Workspace) SetHTML(s string) {
	w.html = s
}

// CSS returns the CSS buffer.
func (w *Workspace) CSS() string {
	return w.css
}

// SetCSS replaces the CSS buffer.
func (w *Workspace) SetCSS(s string) {
	w.css = s
}

// Reset restores both buffers to the default templates.
func (w *Workspace) Reset() {
	w.html = DefaultHTML
	w.css = DefaultCSS
}

// Combine builds the standalone preview document: the CSS inlined into a
// style block, the HTML as the body.
func (w *Workspace) Combine() string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Code Runner Export</title>
    <style>
`)
	b.WriteString(indent(w.css, "        "))
	b.WriteString(`
    </style>
</head>
<body>
`)
	b.WriteString(indent(w.html, "    "))
	b.WriteString(`
</body>
</html>`)
	return b.String()
}

// Export is one downloadable file from the workspace.
type Export struct {
	Filename string
	Data     []byte
	MIME     string
}

// ExportHTML exports the HTML buffer alone.
func (w *Workspace) ExportHTML() Export {
	return Export{Filename: "index.html", Data: []byte(w.html), MIME: "text/html"}
}

// ExportCSS exports the CSS buffer alone.
func (w *Workspace) ExportCSS() Export {
	return Export{Filename: "styles.css", Data: []byte(w.css), MIME: "text/css"}
}

// ExportCombined exports the standalone document.
func (w *Workspace) ExportCombined() Export {
	return Export{Filename: "complete.html", Data: []byte(w.Combine()), MIME: "text/html"}
}

// PlaceholderCode returns the preview snippet shown for languages whose IDE
// is not implemented yet.
func PlaceholderCode(l Language) string {
	switch l {
	case LanguagePython:
		return placeholderPython
	case LanguageJava:
		return placeholderJava
	case LanguageCPP:
		return placeholderCPP
	default:
		return fmt.Sprintf("// %s example coming soon...", l)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
