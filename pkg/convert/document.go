package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	mimePDF = "application/pdf"

	// Plain-text PDF layout: Courier 10pt on A4 with one-inch-ish margins.
	pdfLinesPerPage = 54
	pdfLineWidth    = 90
)

// txtToPDF lays plain text out as a PDF via pdfcpu's create API, one text
// box per page.
func txtToPDF(in Payload) (*Result, error) {
	text := strings.ReplaceAll(string(in.Data), "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty input")
	}

	pages := paginate(text)

	type font struct {
		Name string  `json:"name"`
		Size float64 `json:"size"`
	}
	type textBox struct {
		Value  string `json:"value"`
		Anchor string `json:"anchor"`
		Dx     int    `json:"dx"`
		Dy     int    `json:"dy"`
		Font   font   `json:"font"`
	}
	type content struct {
		Text []textBox `json:"text"`
	}
	type page struct {
		Content content `json:"content"`
	}

	spec := struct {
		Paper string          `json:"paper"`
		Pages map[string]page `json:"pages"`
	}{
		Paper: "A4",
		Pages: make(map[string]page, len(pages)),
	}
	for i, body := range pages {
		spec.Pages[strconv.Itoa(i+1)] = page{Content: content{Text: []textBox{{
			Value:  body,
			Anchor: "tl",
			Dx:     40,
			Dy:     40,
			Font:   font{Name: "Courier", Size: 10},
		}}}}
	}

	specJSON, err := json.Marshal(spec)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(specJSON), &buf, nil); err != nil {
		return nil, fmt.Errorf("pdf creation: %w", err)
	}
	return &Result{Data: buf.Bytes(), MIME: mimePDF, Ext: "pdf"}, nil
}

// paginate wraps long lines and splits the text into page-sized chunks.
func paginate(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		for len(line) > pdfLineWidth {
			lines = append(lines, line[:pdfLineWidth])
			line = line[pdfLineWidth:]
		}
		lines = append(lines, line)
	}

	var pages []string
	for start := 0; start < len(lines); start += pdfLinesPerPage {
		end := start + pdfLinesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, strings.Join(lines[start:end], "\n"))
	}
	if len(pages) == 0 {
		pages = []string{""}
	}
	return pages
}

// docxToPDF returns a converter that shells out to the probed LibreOffice
// binary. The conversion runs in a scratch directory that is removed when
// the call returns.
func docxToPDF(soffice string) ConvertFunc {
	return func(in Payload) (*Result, error) {
		dir, err := os.MkdirTemp("", "devlink-docx-*")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(dir)

		name := in.Filename
		if name == "" || !strings.HasSuffix(strings.ToLower(name), ".docx") {
			name = "upload.docx"
		}
		src := filepath.Join(dir, filepath.Base(name))
		if err := os.WriteFile(src, in.Data, 0600); err != nil {
			return nil, err
		}

		cmd := exec.Command(soffice, "--headless", "--convert-to", "pdf", "--outdir", dir, src)
		if out, err := cmd.CombinedOutput(); err != nil {
			return nil, fmt.Errorf("soffice conversion failed: %v: %s", err, strings.TrimSpace(string(out)))
		}

		pdfPath := strings.TrimSuffix(src, filepath.Ext(src)) + ".pdf"
		data, err := os.ReadFile(pdfPath)
		if err != nil {
			return nil, fmt.Errorf("soffice produced no output: %w", err)
		}
		return &Result{Data: data, MIME: mimePDF, Ext: "pdf"}, nil
	}
}
