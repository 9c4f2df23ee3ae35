package ui

import (
	"fmt"
	"strings"
)

type TableColumn struct {
	Title string
	Width int
}

// Table is a plain column-aligned renderer for command output. Column
// widths grow to fit the widest cell.
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

func NewTable(columns ...string) *Table {
	cols := make([]TableColumn, len(columns))
	for i, title := range columns {
		cols[i] = TableColumn{Title: title, Width: len(title)}
	}
	return &Table{Columns: cols}
}

func (t *Table) AddRow(cells ...string) {
	for i, cell := range cells {
		if i < len(t.Columns) && len(cell) > t.Columns[i].Width {
			t.Columns[i].Width = len(cell)
		}
	}
	t.Rows = append(t.Rows, cells)
}

func (t *Table) Render() string {
	var b strings.Builder

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = fmt.Sprintf("%-*s", col.Width, col.Title)
	}
	b.WriteString(HeaderStyle.Render(strings.TrimRight(strings.Join(header, "  "), " ")))
	b.WriteByte('\n')

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			width := len(cell)
			if i < len(t.Columns) {
				width = t.Columns[i].Width
			}
			cells[i] = fmt.Sprintf("%-*s", width, cell)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatSize renders a byte count in human-friendly units.
func FormatSize(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	if size < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	}
	if size < 1024*1024*1024 {
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
	return fmt.Sprintf("%.1f GB", float64(size)/(1024*1024*1024))
}
