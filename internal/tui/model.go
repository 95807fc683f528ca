package tui

import (
	"slices"

	"github.com/Veraticus/vowsync/internal/service"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/Veraticus/vowsync/internal/tui/themes"
	"github.com/Veraticus/vowsync/internal/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Table selects which pivot the browser shows.
type Table int

const (
	TableGuests Table = iota
	TableItems
)

func (t Table) String() string {
	if t == TableItems {
		return "Items"
	}
	return "Guests"
}

// displayColumn is a schema column as laid out on screen. Event columns carry
// the event name as title.
type displayColumn struct {
	Key   string
	Title string
	Type  viewmodel.CellType
	Width int
}

// tableView is one browsable pivot: a pipeline bound to the loaded slices
// and the query the user has built on it. The filter slice is only replaced
// when a filter changes, so search and sort edits reuse the memoized stages.
type tableView struct {
	run       func(viewmodel.Query) viewmodel.Result
	schema    *viewmodel.Schema
	facetPick map[string]string
	result    viewmodel.Result
	query     viewmodel.Query
	facets    []string
	columns   []displayColumn
	column    int
}

// Model holds the main TUI state.
type Model struct {
	lastError error
	storage   service.Storage
	tables    map[Table]*tableView
	theme     themes.Theme
	notice    string
	config    Config
	keymap    KeyMap
	help      help.Model
	search    textinput.Model
	table     table.Model
	height    int
	width     int
	active    Table
	searching bool
	quitting  bool
	ready     bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	keymap := DefaultKeyMap()

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search names"
	search.CharLimit = 64
	search.PromptStyle = cfg.Theme.SearchPrompt

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	t := table.New(
		table.WithFocused(true),
		table.WithKeyMap(table.KeyMap{
			LineUp:       keymap.Up,
			LineDown:     keymap.Down,
			PageUp:       keymap.PageUp,
			PageDown:     keymap.PageDown,
			HalfPageUp:   key.NewBinding(key.WithDisabled()),
			HalfPageDown: key.NewBinding(key.WithDisabled()),
			GotoTop:      keymap.Home,
			GotoBottom:   keymap.End,
		}),
	)
	styles := table.DefaultStyles()
	styles.Header = cfg.Theme.Header
	styles.Selected = cfg.Theme.Selected
	styles.Cell = cfg.Theme.Cell
	t.SetStyles(styles)

	m := Model{
		config:  cfg,
		storage: cfg.Storage,
		theme:   cfg.Theme,
		keymap:  keymap,
		search:  search,
		help:    h,
		table:   t,
		active:  cfg.Table,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	m.resize()
	return m
}

// Init loads the wedding data.
func (m Model) Init() tea.Cmd {
	return loadData(m.storage, m.config.WeddingID)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case dataLoadedMsg:
		m.ready = true
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.tables = buildTables(msg, m.config.Status)
		m.refresh()
		return m, nil

	case errorMsg:
		m.lastError = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) current() *tableView {
	if m.tables == nil {
		return nil
	}
	return m.tables[m.active]
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	cur := m.current()
	if cur == nil {
		return m, nil
	}
	m.notice = ""

	switch {
	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.SwitchTable):
		m.active = (m.active + 1) % Table(len(m.tables))
		m.search.SetValue(m.current().query.Search)
		m.table.SetCursor(0)
		m.refresh()

	case key.Matches(msg, m.keymap.PrevColumn):
		if cur.column > 0 {
			cur.column--
		}
		m.refresh()

	case key.Matches(msg, m.keymap.NextColumn):
		if cur.column < len(cur.columns)-1 {
			cur.column++
		}
		m.refresh()

	case key.Matches(msg, m.keymap.Sort):
		cur.query.Sort = cur.query.Sort.Toggle(cur.columns[cur.column].Key)
		m.refresh()

	case key.Matches(msg, m.keymap.CycleFacet):
		m.cycleFacet(cur)
		m.refresh()

	case key.Matches(msg, m.keymap.ClearFilters):
		cur.query = viewmodel.Query{Sort: cur.query.Sort}
		cur.facetPick = make(map[string]string)
		m.search.SetValue("")
		m.refresh()

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// updateSearch feeds keys to the search box. Every edit re-runs the
// pipeline; Enter keeps the query and Esc clears it.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.current()

	if key.Matches(msg, m.keymap.ExitSearch) {
		m.searching = false
		m.search.Blur()
		if msg.String() == "esc" {
			m.search.SetValue("")
		}
	}

	var cmd tea.Cmd
	if m.searching {
		m.search, cmd = m.search.Update(msg)
	}

	if cur != nil && cur.query.Search != m.search.Value() {
		cur.query.Search = m.search.Value()
		m.table.SetCursor(0)
		m.refresh()
	}
	return m, cmd
}

// cycleFacet steps the filter on the selected column through its facet
// values and back to no filter.
func (m *Model) cycleFacet(cur *tableView) {
	col := cur.columns[cur.column]
	if !slices.Contains(cur.facets, col.Key) {
		labels := make([]string, 0, len(cur.facets))
		for _, f := range cur.facets {
			if c, ok := cur.schema.Lookup(f); ok {
				labels = append(labels, c.Label)
			}
		}
		m.notice = "Filter by " + joinLabels(labels)
		return
	}

	values := cur.result.Facets[col.Key]
	next := ""
	switch i := slices.Index(values, cur.facetPick[col.Key]); {
	case len(values) == 0:
	case cur.facetPick[col.Key] == "" || i < 0:
		next = values[0]
	case i+1 < len(values):
		next = values[i+1]
	}

	if next == "" {
		delete(cur.facetPick, col.Key)
	} else {
		cur.facetPick[col.Key] = next
	}
	cur.query.Filters = cur.facetFilters()
}

func (t *tableView) facetFilters() []viewmodel.ColumnFilter {
	var filters []viewmodel.ColumnFilter
	for _, col := range t.facets {
		if v, ok := t.facetPick[col]; ok {
			filters = append(filters, viewmodel.ColumnFilter{
				Column:   col,
				Operator: viewmodel.OpEquals,
				Value:    viewmodel.StringValue(v),
			})
		}
	}
	return filters
}

// refresh runs the active pipeline and loads its output into the table.
func (m *Model) refresh() {
	cur := m.current()
	if cur == nil {
		return
	}
	cur.result = cur.run(cur.query)

	columns := make([]table.Column, len(cur.columns))
	for i, c := range cur.columns {
		columns[i] = table.Column{Title: m.columnTitle(cur, i), Width: c.Width}
	}

	rows := make([]table.Row, len(cur.result.Rows))
	for i, r := range cur.result.Rows {
		cells := make(table.Row, len(cur.columns))
		for j, c := range cur.columns {
			v, _ := r.Value(c.Key)
			cells[j] = formatCell(m.config.Status, c, v)
		}
		rows[i] = cells
	}

	// Rows must never be wider than the columns while they are swapped.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m Model) columnTitle(cur *tableView, i int) string {
	c := cur.columns[i]
	title := c.Title
	if cur.query.Sort.Column == c.Key {
		if cur.query.Sort.Direction == viewmodel.Descending {
			title += " ↓"
		} else {
			title += " ↑"
		}
	}
	if i == cur.column {
		title = "▸" + title
	}
	return title
}

// resize fits the table between the header and the help footer.
func (m *Model) resize() {
	chrome := 6
	if m.help.ShowAll {
		chrome += 5
	}
	m.table.SetHeight(max(m.height-chrome, 3))
	m.table.SetWidth(m.width)
	m.search.Width = max(m.width-4, 10)
	m.help.Width = m.width
}

func buildTables(msg dataLoadedMsg, cfg status.Config) map[Table]*tableView {
	guests := viewmodel.NewPipeline(viewmodel.GuestSource, cfg.Language)
	items := viewmodel.NewPipeline(viewmodel.ItemSource, cfg.Language)

	return map[Table]*tableView{
		TableGuests: {
			run: func(q viewmodel.Query) viewmodel.Result {
				return guests.Run(msg.guests, msg.guestEvents, q)
			},
			schema:    viewmodel.GuestSchema,
			facets:    viewmodel.GuestSource.FacetColumns,
			columns:   displayColumns(viewmodel.GuestSchema, msg.events, viewmodel.GuestEventAttending),
			facetPick: make(map[string]string),
		},
		TableItems: {
			run: func(q viewmodel.Query) viewmodel.Result {
				return items.Run(msg.items, msg.itemEvents, q)
			},
			schema:    viewmodel.ItemSchema,
			facets:    viewmodel.ItemSource.FacetColumns,
			columns:   displayColumns(viewmodel.ItemSchema, msg.events, viewmodel.ItemEventQuantity),
			facetPick: make(map[string]string),
		},
	}
}
