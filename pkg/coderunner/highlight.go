package coderunner

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlight renders source code with ANSI colors for the editor panes.
// Unknown languages and highlighting failures fall back to the plain
// source, never an error.
func Highlight(source, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return source
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}

	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return source
	}
	return b.String()
}

// HighlightLanguage maps an IDE language to its chroma lexer names for each
// buffer it edits.
func HighlightLanguage(l Language) (html, css string) {
	switch l {
	case LanguageHTMLCSS:
		return "html", "css"
	default:
		return "", ""
	}
}
