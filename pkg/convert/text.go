package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

const (
	mimeYAML = "application/yaml"
	mimeHTML = "text/html"
)

// markdown is the shared goldmark instance. GFM covers the tables and
// strikethrough the original editor advertised; fenced code is core.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// jsonToYAML re-expresses a JSON document as YAML.
func jsonToYAML(in Payload) (*Result, error) {
	var v any
	if err := json.Unmarshal(in.Data, &v); err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Result{Data: out, MIME: mimeYAML, Ext: "yaml", IsText: true}, nil
}

// yamlToJSON re-expresses a YAML document as indented JSON.
func yamlToJSON(in Payload) (*Result, error) {
	var v any
	if err := yaml.Unmarshal(in.Data, &v); err != nil {
		return nil, fmt.Errorf("malformed YAML: %w", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &Result{Data: out, MIME: mimeJSON, Ext: "json", IsText: true}, nil
}

// markdownToHTML renders Markdown into a standalone HTML document.
func markdownToHTML(in Payload) (*Result, error) {
	var body bytes.Buffer
	if err := markdown.Convert(in.Data, &body); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}

	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html><html><head><title>Converted Document</title></head><body>")
	doc.Write(body.Bytes())
	doc.WriteString("</body></html>")

	return &Result{Data: doc.Bytes(), MIME: mimeHTML, Ext: "html", IsText: true}, nil
}

// csvToHTMLTable renders CSV as a styled HTML table, header row first.
func csvToHTMLTable(in Payload) (*Result, error) {
	headers, rows, err := readCSV(in.Data)
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(`<table border="1" style="border-collapse: collapse; width: 100%;">`)

	buf.WriteString(`<tr style="background-color: #f2f2f2;">`)
	for _, h := range headers {
		fmt.Fprintf(&buf, `<th style="padding: 8px;">%s</th>`, html.EscapeString(h))
	}
	buf.WriteString("</tr>")

	for _, row := range rows {
		buf.WriteString("<tr>")
		for i := range headers {
			fmt.Fprintf(&buf, `<td style="padding: 8px;">%s</td>`, html.EscapeString(cellAt(row, i)))
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</table>")

	return &Result{Data: buf.Bytes(), MIME: mimeHTML, Ext: "html", IsText: true}, nil
}
