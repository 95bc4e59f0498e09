// Package spreadsheet implements the smart spreadsheet: a small editable
// grid of string cells with named columns, seeded with a starter task list,
// exportable as CSV or JSON records.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
)

// Sheet is a columns-plus-rows grid. All cells are strings; every row has
// exactly len(columns) cells.
type Sheet struct {
	columns []string
	rows    [][]string
}

// New creates a sheet seeded with the starter task list.
func New() *Sheet {
	return &Sheet{
		columns: []string{"Task", "Status", "Priority"},
		rows: [][]string{
			{"Initial Setup", "Done", "High"},
			{"Add Features", "In Progress", "Medium"},
		},
	}
}

// Columns returns the column names in order.
func (s *Sheet) Columns() []string {
	return s.columns
}

// Rows returns the row count.
func (s *Sheet) Rows() int {
	return len(s.rows)
}

// Row returns the cells of one row.
func (s *Sheet) Row(i int) ([]string, error) {
	if i < 0 || i >= len(s.rows) {
		return nil, fmt.Errorf("row %d out of range", i)
	}
	return s.rows[i], nil
}

// Cell returns one cell value.
func (s *Sheet) Cell(row, col int) (string, error) {
	if row < 0 || row >= len(s.rows) {
		return "", fmt.Errorf("row %d out of range", row)
	}
	if col < 0 || col >= len(s.columns) {
		return "", fmt.Errorf("column %d out of range", col)
	}
	return s.rows[row][col], nil
}

// SetCell writes one cell value.
func (s *Sheet) SetCell(row, col int, value string) error {
	if row < 0 || row >= len(s.rows) {
		return fmt.Errorf("row %d out of range", row)
	}
	if col < 0 || col >= len(s.columns) {
		return fmt.Errorf("column %d out of range", col)
	}
	s.rows[row][col] = value
	return nil
}

// AddColumn appends a column. An empty name gets the auto name Column_N,
// where N is the new column count. Existing rows gain an empty cell.
func (s *Sheet) AddColumn(name string) string {
	if name == "" {
		name = fmt.Sprintf("Column_%d", len(s.columns)+1)
	}
	s.columns = append(s.columns, name)
	for i := range s.rows {
		s.rows[i] = append(s.rows[i], "")
	}
	return name
}

// AddRow appends an empty row and returns its index.
func (s *Sheet) AddRow() int {
	s.rows = append(s.rows, make([]string, len(s.columns)))
	return len(s.rows) - 1
}

// RemoveRow deletes one row.
func (s *Sheet) RemoveRow(i int) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("row %d out of range", i)
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

// Reset restores the single-row starter grid.
func (s *Sheet) Reset() {
	s.columns = []string{"Task", "Status", "Priority"}
	s.rows = [][]string{{"Initial Setup", "Done", "High"}}
}

// CSV exports the grid with a header row.
func (s *Sheet) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(s.columns); err != nil {
		return nil, err
	}
	for _, row := range s.rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON exports the grid as an array of records, one object per row with
// columns in grid order.
func (s *Sheet) JSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, row := range s.rows {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, col := range s.columns {
			if j > 0 {
				buf.WriteString(", ")
			}
			key, _ := json.Marshal(col)
			val, _ := json.Marshal(row[j])
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(val)
		}
		buf.WriteString("}")
	}
	if len(s.rows) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]")
	return buf.Bytes(), nil
}
