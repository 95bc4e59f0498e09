package convert

import (
	"fmt"
	"os/exec"
)

// ConvertFunc performs one conversion. Implementations are pure with
// respect to the registry: they read the payload, produce a result, and
// touch no shared state.
type ConvertFunc func(Payload) (*Result, error)

// Entry is one named conversion. Available is computed once when the
// registry is built; entries whose optional dependency is absent carry a
// Reason and are filtered out of listings.
type Entry struct {
	Name      string
	Input     Kind
	Output    Kind
	Available bool
	Reason    string

	fn ConvertFunc
}

// Category groups related entries under a display name. Order is fixed at
// build time.
type Category struct {
	Name    string
	Entries []Entry
}

// Registry holds the full conversion table and dispatches by entry name.
type Registry struct {
	categories []Category
	byName     map[string]*Entry
}

// settings collects the probes the registry uses to decide availability.
// Tests inject their own lookPath to simulate missing dependencies.
type settings struct {
	lookPath func(file string) (string, error)
}

// Option configures registry construction.
type Option func(*settings)

// WithLookPath overrides the binary probe used for availability checks.
func WithLookPath(fn func(file string) (string, error)) Option {
	return func(s *settings) { s.lookPath = fn }
}

// Category display names, in listing order.
const (
	CategoryDocument = "Document Conversions"
	CategoryData     = "Data Conversions"
	CategoryImage    = "Image Conversions"
	CategoryText     = "Text Conversions"
)

// NewRegistry builds the static conversion table. Availability of entries
// that shell out to optional external tools (DOCX to PDF needs a
// LibreOffice install) is probed exactly once, here.
func NewRegistry(opts ...Option) *Registry {
	cfg := settings{lookPath: exec.LookPath}
	for _, opt := range opts {
		opt(&cfg)
	}

	soffice, sofficeErr := probeSoffice(cfg.lookPath)

	docx := Entry{
		Name:      "DOCX to PDF",
		Input:     KindDOCX,
		Output:    KindPDF,
		Available: sofficeErr == nil,
		fn:        docxToPDF(soffice),
	}
	if sofficeErr != nil {
		docx.Reason = "requires a LibreOffice install (soffice not found)"
	}

	r := &Registry{
		categories: []Category{
			{Name: CategoryDocument, Entries: []Entry{
				docx,
				{Name: "TXT to PDF", Input: KindTXT, Output: KindPDF, Available: true, fn: txtToPDF},
				{Name: "MD to HTML", Input: KindMarkdown, Output: KindHTML, Available: true, fn: markdownToHTML},
			}},
			{Name: CategoryData, Entries: []Entry{
				{Name: "CSV to JSON", Input: KindCSV, Output: KindJSON, Available: true, fn: csvToJSON},
				{Name: "JSON to CSV", Input: KindJSON, Output: KindCSV, Available: true, fn: jsonToCSV},
				{Name: "Excel to CSV", Input: KindXLSX, Output: KindCSV, Available: true, fn: excelToCSV},
				{Name: "CSV to Excel", Input: KindCSV, Output: KindXLSX, Available: true, fn: csvToExcel},
			}},
			{Name: CategoryImage, Entries: []Entry{
				{Name: "PNG to JPG", Input: KindPNG, Output: KindJPG, Available: true, fn: pngToJPG},
				{Name: "JPG to PNG", Input: KindJPG, Output: KindPNG, Available: true, fn: jpgToPNG},
				{Name: "Image to Base64", Input: KindImage, Output: KindBase64, Available: true, fn: imageToBase64},
				{Name: "Base64 to Image", Input: KindBase64, Output: KindPNG, Available: true, fn: base64ToImage},
			}},
			{Name: CategoryText, Entries: []Entry{
				{Name: "JSON to YAML", Input: KindJSON, Output: KindYAML, Available: true, fn: jsonToYAML},
				{Name: "YAML to JSON", Input: KindYAML, Output: KindJSON, Available: true, fn: yamlToJSON},
				{Name: "CSV to HTML Table", Input: KindCSV, Output: KindHTML, Available: true, fn: csvToHTMLTable},
			}},
		},
	}

	r.byName = make(map[string]*Entry)
	for ci := range r.categories {
		for ei := range r.categories[ci].Entries {
			e := &r.categories[ci].Entries[ei]
			r.byName[e.Name] = e
		}
	}
	return r
}

// probeSoffice locates the LibreOffice binary used for DOCX conversion.
func probeSoffice(lookPath func(string) (string, error)) (string, error) {
	for _, name := range []string{"soffice", "libreoffice"} {
		if path, err := lookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("soffice not found in PATH")
}

// Categories returns the category names in listing order.
func (r *Registry) Categories() []string {
	names := make([]string, len(r.categories))
	for i, c := range r.categories {
		names[i] = c.Name
	}
	return names
}

// Entries returns the available entries of a category, in table order.
// Unavailable entries are never offered. Returns ErrEmptyCategory when
// everything in the category is unavailable.
func (r *Registry) Entries(category string) ([]Entry, error) {
	for _, c := range r.categories {
		if c.Name != category {
			continue
		}
		available := make([]Entry, 0, len(c.Entries))
		for _, e := range c.Entries {
			if e.Available {
				available = append(available, e)
			}
		}
		if len(available) == 0 {
			return nil, ErrEmptyCategory
		}
		return available, nil
	}
	return nil, ErrUnknownCategory
}

// Unavailable returns the entries that were disabled at startup, with their
// reasons. The UI surfaces these as dependency warnings.
func (r *Registry) Unavailable() []Entry {
	var out []Entry
	for _, c := range r.categories {
		for _, e := range c.Entries {
			if !e.Available {
				out = append(out, e)
			}
		}
	}
	return out
}

// Resolve returns the entry for a name previously obtained from Entries.
func (r *Registry) Resolve(name string) (Entry, error) {
	e, ok := r.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
	}
	return *e, nil
}

// Convert dispatches the named conversion on the payload. Failures are
// reported as *ConversionError and affect nothing beyond this call.
func (r *Registry) Convert(name string, in Payload) (*Result, error) {
	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
	}
	if !e.Available {
		return nil, convErr(name, "conversion disabled: %s", e.Reason)
	}
	out, err := e.fn(in)
	if err != nil {
		if _, ok := err.(*ConversionError); ok {
			return nil, err
		}
		return nil, &ConversionError{Entry: name, Err: err}
	}
	return out, nil
}
