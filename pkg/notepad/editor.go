// Package notepad implements the smart notepad: one editable buffer with a
// selectable format (plain, markdown, rich text), live word counting, a
// markdown preview, and timestamped exports.
package notepad

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// Format selects how the buffer is interpreted.
type Format string

const (
	FormatPlain    Format = "Plain Text"
	FormatMarkdown Format = "Markdown"
	FormatRich     Format = "Rich Text"
)

// Formats lists the selectable formats in display order.
var Formats = []Format{FormatPlain, FormatMarkdown, FormatRich}

// MarkdownPlaceholder seeds an empty markdown buffer with a feature tour.
const MarkdownPlaceholder = `# Welcome to Markdown Editor

## Features
- **Bold** and *italic* text
- Lists and links
- Code blocks
- Tables
- And much more!

### Example Code Block
` + "```python" + `
def hello_world():
    print("Hello, World!")
` + "```" + `

### Example Table
| Feature | Status |
|---------|--------|
| Bold    | yes    |
| Italic  | yes    |
| Lists   | yes    |

[Learn more about Markdown](https://www.markdownguide.org)
`

// markdown renders the markdown format. GFM gives tables and strikethrough;
// fenced code is core.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Editor is the notepad buffer plus its format. Content survives toggling
// away from the tool; only Clear empties it.
type Editor struct {
	content string
	format  Format
	preview bool

	// now is swapped in tests for deterministic export names.
	now func() time.Time
}

// New creates an empty plain-text editor.
func New() *Editor {
	return &Editor{format: FormatPlain, now: time.Now}
}

// Content returns the buffer.
func (e *Editor) Content() string {
	return e.content
}

// SetContent replaces the buffer.
func (e *Editor) SetContent(s string) {
	e.content = s
}

// Append adds text to the end of the buffer. The markdown toolbar uses this
// to insert formatting snippets.
func (e *Editor) Append(s string) {
	e.content += s
}

// Format returns the active format.
func (e *Editor) Format() Format {
	return e.format
}

// SetFormat switches the interpretation of the buffer. Content is kept;
// the preview flag resets since it only applies to markdown.
func (e *Editor) SetFormat(f Format) {
	e.format = f
	if f != FormatMarkdown {
		e.preview = false
	}
}

// Preview reports whether the markdown split preview is on.
func (e *Editor) Preview() bool {
	return e.preview
}

// TogglePreview flips the markdown preview. No-op outside markdown format.
func (e *Editor) TogglePreview() {
	if e.format == FormatMarkdown {
		e.preview = !e.preview
	}
}

// Clear empties the buffer. Format and preview settings are kept.
func (e *Editor) Clear() {
	e.content = ""
}

// PlainText returns the buffer with any HTML tags stripped, which is what
// the word counter and the TXT export operate on.
func (e *Editor) PlainText() string {
	return stripTags(e.content)
}

// Counts returns the word and character counts of the visible text.
func (e *Editor) Counts() (words, chars int) {
	text := e.PlainText()
	return len(strings.Fields(text)), len(text)
}

// RenderHTML renders the buffer as an HTML fragment: markdown through the
// renderer, rich text as-is, plain text escaped.
func (e *Editor) RenderHTML() (string, error) {
	switch e.format {
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(e.content), &buf); err != nil {
			return "", fmt.Errorf("markdown render: %w", err)
		}
		return buf.String(), nil
	case FormatRich:
		return e.content, nil
	default:
		return html.EscapeString(e.content), nil
	}
}

// Export is a downloadable rendition of the buffer.
type Export struct {
	Filename string
	Data     []byte
	MIME     string
}

// ExportTXT exports the buffer as plain text, tags stripped.
func (e *Editor) ExportTXT() Export {
	return Export{
		Filename: e.exportName("txt"),
		Data:     []byte(e.PlainText()),
		MIME:     "text/plain",
	}
}

// ExportMD exports the raw buffer as markdown.
func (e *Editor) ExportMD() Export {
	return Export{
		Filename: e.exportName("md"),
		Data:     []byte(e.content),
		MIME:     "text/markdown",
	}
}

// ExportHTML exports a standalone styled HTML document.
func (e *Editor) ExportHTML() (Export, error) {
	body, err := e.RenderHTML()
	if err != nil {
		return Export{}, err
	}

	var doc bytes.Buffer
	doc.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Note</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
code { background: #f4f4f4; padding: 2px 6px; border-radius: 3px; }
pre { background: #f4f4f4; padding: 10px; border-radius: 5px; overflow-x: auto; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
</style>
</head>
<body>
`)
	doc.WriteString(body)
	doc.WriteString("\n</body>\n</html>\n")

	return Export{
		Filename: e.exportName("html"),
		Data:     doc.Bytes(),
		MIME:     "text/html",
	}, nil
}

func (e *Editor) exportName(ext string) string {
	return fmt.Sprintf("note_%s.%s", e.now().Format("20060102_150405"), ext)
}

// stripTags removes HTML markup, keeping the text content. Malformed HTML
// degrades to whatever the tokenizer can salvage, never an error.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			return b.String()
		}
		if tt == html.TextToken {
			b.Write(tokenizer.Text())
		}
	}
}
