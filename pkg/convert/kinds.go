// Package convert implements the file converter: a static registry of named
// conversions grouped into categories, each entry declaring its input and
// output kind, an availability flag, and the routine that performs the
// conversion. The registry is built once at startup; availability never
// changes afterwards.
package convert

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Kind names the payload format on either side of a conversion.
type Kind string

const (
	KindCSV      Kind = "csv"
	KindJSON     Kind = "json"
	KindXLSX     Kind = "xlsx"
	KindDOCX     Kind = "docx"
	KindTXT      Kind = "txt"
	KindMarkdown Kind = "md"
	KindYAML     Kind = "yaml"
	KindPNG      Kind = "png"
	KindJPG      Kind = "jpg"
	KindImage    Kind = "image"
	KindBase64   Kind = "base64"
	KindPDF      Kind = "pdf"
	KindHTML     Kind = "html"
)

// IsText reports whether the kind is entered as free-form text rather than
// an uploaded file.
func (k Kind) IsText() bool {
	switch k {
	case KindTXT, KindMarkdown, KindJSON, KindYAML, KindBase64:
		return true
	}
	return false
}

// uploadPatterns maps file-input kinds to the filename globs the converter
// accepts for them.
var uploadPatterns = map[Kind][]string{
	KindCSV:   {"*.csv"},
	KindJSON:  {"*.json"},
	KindXLSX:  {"*.xlsx", "*.xls"},
	KindDOCX:  {"*.docx"},
	KindPNG:   {"*.png"},
	KindJPG:   {"*.jpg", "*.jpeg"},
	KindImage: {"*.png", "*.jpg", "*.jpeg", "*.bmp", "*.gif", "*.tiff"},
}

var compiledPatterns = func() map[Kind][]glob.Glob {
	m := make(map[Kind][]glob.Glob, len(uploadPatterns))
	for kind, patterns := range uploadPatterns {
		globs := make([]glob.Glob, 0, len(patterns))
		for _, p := range patterns {
			globs = append(globs, glob.MustCompile(p))
		}
		m[kind] = globs
	}
	return m
}()

// AcceptsFile reports whether a filename matches the upload patterns for
// this input kind. Text kinds accept no files.
func (k Kind) AcceptsFile(name string) bool {
	globs, ok := compiledPatterns[k]
	if !ok {
		return false
	}
	base := strings.ToLower(filepath.Base(name))
	for _, g := range globs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Payload is the raw input to a conversion: the bytes plus the original
// filename (empty for typed-in text).
type Payload struct {
	Filename string
	Data     []byte
}

// TextPayload wraps typed-in text as a payload.
func TextPayload(text string) Payload {
	return Payload{Data: []byte(text)}
}

// Result is a conversion output: the bytes plus the MIME type and filename
// suffix used when the user downloads it.
type Result struct {
	Data []byte
	MIME string
	Ext  string
	// IsText marks results that render inline as text rather than as a
	// binary download.
	IsText bool
}

// OutputName derives a download filename from the original upload name,
// swapping in the result's suffix. Falls back to "converted.<ext>" when the
// input had no filename.
func (r *Result) OutputName(original string) string {
	if original == "" {
		return "converted." + r.Ext
	}
	base := filepath.Base(original)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base + "." + r.Ext
}
