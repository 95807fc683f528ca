package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/Veraticus/vowsync/internal/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

var columnWidths = map[string]int{
	viewmodel.GuestName:            22,
	viewmodel.GuestEmail:           24,
	viewmodel.GuestPhone:           14,
	viewmodel.GuestType:            8,
	viewmodel.GuestSide:            8,
	viewmodel.GuestRSVP:            10,
	viewmodel.GuestDietary:         12,
	viewmodel.GuestPlusOne:         4,
	viewmodel.GuestTable:           6,
	viewmodel.GuestEventsAttending: 7,
	viewmodel.ItemCategory:         12,
	viewmodel.ItemSupplier:         16,
	viewmodel.ItemUnitCost:         11,
	viewmodel.ItemNotes:            18,
	viewmodel.ItemTotalQuantity:    6,
	viewmodel.ItemTotalCost:        12,
}

// Money columns of the item table.
var currencyColumns = map[string]bool{
	viewmodel.ItemUnitCost:  true,
	viewmodel.ItemTotalCost: true,
}

// displayColumns lays out the schema's base columns followed by one column
// per event showing field.
func displayColumns(schema *viewmodel.Schema, events []model.Event, field string) []displayColumn {
	cols := make([]displayColumn, 0, len(schema.Columns)+len(events))
	for _, c := range schema.Columns {
		w, ok := columnWidths[c.Key]
		if !ok {
			w = 12
		}
		cols = append(cols, displayColumn{Key: c.Key, Title: c.Label, Type: c.Type, Width: w})
	}
	for _, e := range events {
		k := viewmodel.EventColumn(e.ID, field)
		c, ok := schema.Lookup(k)
		if !ok {
			continue
		}
		cols = append(cols, displayColumn{
			Key:   k,
			Title: e.Name,
			Type:  c.Type,
			Width: min(max(lipgloss.Width(e.Name)+3, 6), 14),
		})
	}
	return cols
}

func formatCell(cfg status.Config, col displayColumn, v viewmodel.Value) string {
	switch {
	case v.IsNull():
		return ""
	case v.Type() == viewmodel.CellBool:
		if v.Bool() {
			return "✓"
		}
		return "·"
	case v.Type() == viewmodel.CellNumber && currencyColumns[col.Key]:
		return status.FormatCurrency(cfg, v.Num())
	default:
		return v.Text()
	}
}

func joinLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return "nothing"
	case 1:
		return labels[0]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1]
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading()
	}

	cur := m.current()
	if cur == nil {
		return m.renderError()
	}

	sections := []string{
		m.renderHeader(cur),
		m.renderSearch(cur),
		m.renderFilters(cur),
		m.table.View(),
		m.renderStatus(cur),
		m.help.View(m.keymap),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("💍 Loading wedding..."),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Reading guests and items"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderError() string {
	msg := "no data loaded"
	if m.lastError != nil {
		msg = m.lastError.Error()
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusError.Render("✗ Could not open the browser"),
		"",
		m.theme.Normal.Render(msg),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press q to quit"),
	)
	return m.theme.Box.Render(content)
}

func (m Model) renderHeader(cur *tableView) string {
	tabs := make([]string, 0, len(m.tables))
	for _, t := range []Table{TableGuests, TableItems} {
		if t == m.active {
			tabs = append(tabs, m.theme.Title.Render(t.String()))
		} else {
			tabs = append(tabs, m.theme.Subtitle.Render(t.String()))
		}
	}

	count := fmt.Sprintf("%d of %d", cur.result.FilteredCount, cur.result.TotalCount)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render("💍 "),
		strings.Join(tabs, m.theme.Subtitle.Render(" │ ")),
		m.theme.Subtitle.Render("   "+count),
	)
}

func (m Model) renderSearch(cur *tableView) string {
	if m.searching || cur.query.Search != "" {
		return m.search.View()
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("/ to search")
}

func (m Model) renderFilters(cur *tableView) string {
	if len(cur.query.Filters) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No filters")
	}
	chips := make([]string, 0, len(cur.query.Filters))
	for _, f := range cur.query.Filters {
		label := f.Column
		if c, ok := cur.schema.Lookup(f.Column); ok {
			label = c.Label
		}
		chips = append(chips, m.theme.FilterChip.Render(label+": "+f.Value.Text()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) renderStatus(cur *tableView) string {
	var parts []string

	if cur.query.Sort.IsSorted() {
		title := cur.query.Sort.Column
		for _, c := range cur.columns {
			if c.Key == cur.query.Sort.Column {
				title = c.Title
				break
			}
		}
		parts = append(parts, m.theme.StatusInfo.Render(fmt.Sprintf("Sort: %s %s", title, cur.query.Sort.Direction)))
	} else {
		parts = append(parts, m.theme.StatusInfo.Render("Unsorted"))
	}

	if m.notice != "" {
		parts = append(parts, m.theme.StatusWarning.Render(m.notice))
	}
	if m.lastError != nil {
		parts = append(parts, m.theme.StatusError.Render(m.lastError.Error()))
	}

	return strings.Join(parts, "  ")
}
