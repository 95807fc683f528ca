package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table collects rows for a bordered terminal table. Cells may already be
// styled; lipgloss measures them without their escape codes.
type Table struct {
	headers []string
	rows    [][]string
	align   map[int]lipgloss.Position
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, align: make(map[int]lipgloss.Position)}
}

// AlignRight right-aligns the given columns (amounts, counts).
func (t *Table) AlignRight(columns ...int) *Table {
	for _, c := range columns {
		t.align[c] = lipgloss.Right
	}
	return t
}

// Row appends a row. Missing trailing cells render empty.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table.
func (t *Table) String() string {
	header := lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(SubtleColor)).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if pos, ok := t.align[col]; ok {
				return cell.Align(pos)
			}
			return cell
		})

	return tbl.String()
}

// Render writes the table followed by a newline.
func (t *Table) Render(w io.Writer) error {
	_, err := io.WriteString(w, t.String()+"\n")
	return err
}
