package convert

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	mimeCSV  = "text/csv"
	mimeJSON = "application/json"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// csvToJSON converts CSV with a header row into a JSON array of one object
// per record. Cell values stay strings; column order is preserved.
func csvToJSON(in Payload) (*Result, error) {
	headers, rows, err := readCSV(in.Data)
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("[")
	for i, row := range rows {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, h := range headers {
			if j > 0 {
				buf.WriteString(", ")
			}
			key, _ := json.Marshal(h)
			val, _ := json.Marshal(cellAt(row, j))
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(val)
		}
		buf.WriteString("}")
	}
	if len(rows) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]")

	return &Result{Data: buf.Bytes(), MIME: mimeJSON, Ext: "json", IsText: true}, nil
}

// jsonToCSV converts a JSON array of objects into CSV. Columns appear in
// first-seen order across the records; missing fields become empty cells.
func jsonToCSV(in Payload) (*Result, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(in.Data, &raws); err != nil {
		return nil, fmt.Errorf("expected a JSON array of objects: %w", err)
	}

	var columns []string
	seen := make(map[string]bool)
	records := make([]map[string]string, 0, len(raws))

	for i, raw := range raws {
		keys, values, err := decodeObjectOrdered(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rec := make(map[string]string, len(keys))
		for j, k := range keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
			rec[k] = values[j]
		}
		records = append(records, rec)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &Result{Data: buf.Bytes(), MIME: mimeCSV, Ext: "csv", IsText: true}, nil
}

// excelToCSV reads the first sheet of an xlsx workbook and writes it as CSV.
func excelToCSV(in Payload) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(in.Data))
	if err != nil {
		return nil, fmt.Errorf("not a readable workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	return &Result{Data: buf.Bytes(), MIME: mimeCSV, Ext: "csv", IsText: true}, nil
}

// csvToExcel writes CSV rows into a single-sheet xlsx workbook.
func csvToExcel(in Payload) (*Result, error) {
	headers, rows, err := readCSV(in.Data)
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	all := append([][]string{headers}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return &Result{Data: buf.Bytes(), MIME: mimeXLSX, Ext: "xlsx"}, nil
}

// readCSV parses CSV bytes into a header row plus data rows. Records may be
// ragged; callers pad with cellAt.
func readCSV(data []byte) (headers []string, rows [][]string, err error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("empty input")
	}
	headers = make([]string, len(all[0]))
	for i, h := range all[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, all[1:], nil
}

// cellAt returns row[i] or "" when the row is short.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// decodeObjectOrdered walks a JSON object's tokens so keys come back in
// document order (a plain map loses it). Values are flattened to the string
// form they take in a CSV cell.
func decodeObjectOrdered(raw json.RawMessage) (keys []string, values []string, err error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("expected an object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected key token %v", keyTok)
		}

		var val any
		if err := dec.Decode(&val); err != nil {
			return nil, nil, err
		}

		keys = append(keys, key)
		values = append(values, flattenJSONValue(val))
	}
	return keys, values, nil
}

// flattenJSONValue renders a decoded JSON value as a CSV cell.
func flattenJSONValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		// Nested arrays/objects keep their JSON form.
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
