package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/viewmodel"
	"github.com/spf13/cobra"
)

// listOptions are the search, filter and sort flags shared by the guest and
// item listings.
type listOptions struct {
	search  string
	sort    string
	filters []string
}

func (o *listOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.search, "search", "", "only rows whose name contains this text")
	cmd.Flags().StringArrayVar(&o.filters, "filter", nil,
		"column:operator[:value], repeatable; event columns are event:<event>:<field>")
	cmd.Flags().StringVar(&o.sort, "sort", "", "column[:asc|desc]")
}

func (o *listOptions) query(schema *viewmodel.Schema, events []model.Event) (viewmodel.Query, error) {
	q := viewmodel.Query{Search: o.search}

	for _, expr := range o.filters {
		expr, err := resolveEventRef(expr, events)
		if err != nil {
			return q, err
		}
		f, err := viewmodel.ParseColumnFilter(schema, expr)
		if err != nil {
			return q, common.NewUserError(err.Error(), err)
		}
		q.Filters = append(q.Filters, f)
	}

	expr, err := resolveEventRef(o.sort, events)
	if err != nil {
		return q, err
	}
	q.Sort, err = viewmodel.ParseSortConfig(schema, expr)
	if err != nil {
		return q, common.NewUserError(err.Error(), err)
	}

	return q, nil
}

// resolveEventRef rewrites "event:<name>:..." to use the event's id.
func resolveEventRef(expr string, events []model.Event) (string, error) {
	parts := strings.SplitN(expr, ":", 3)
	if len(parts) < 3 || parts[0] != "event" {
		return expr, nil
	}
	e, err := findEvent(events, parts[1])
	if err != nil {
		return "", err
	}
	return "event:" + e.ID + ":" + parts[2], nil
}

// renderRows prints the pipeline result as a table: the base columns, then
// one column per event showing field.
func renderRows(w io.Writer, sess *session, schema *viewmodel.Schema, events []model.Event,
	field string, moneyColumns map[string]bool, res viewmodel.Result,
) error {
	var keys, headers []string
	var right []int
	for _, c := range schema.Columns {
		if c.Type == viewmodel.CellNumber {
			right = append(right, len(keys))
		}
		keys = append(keys, c.Key)
		headers = append(headers, c.Label)
	}
	for _, e := range events {
		right = append(right, len(keys))
		keys = append(keys, viewmodel.EventColumn(e.ID, field))
		headers = append(headers, e.Name)
	}

	t := cli.NewTable(headers...).AlignRight(right...)
	for _, row := range res.Rows {
		cells := make([]string, len(keys))
		for i, k := range keys {
			v, _ := row.Value(k)
			cells[i] = formatValue(sess, moneyColumns[k], v)
		}
		t.Row(cells...)
	}
	if err := t.Render(w); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d rows", res.TotalCount)
	if res.HasActiveFilters {
		summary = fmt.Sprintf("Showing %d of %d rows", res.FilteredCount, res.TotalCount)
	}
	_, err := fmt.Fprintln(w, cli.SubtleStyle.Render(summary))
	return err
}

func formatValue(sess *session, money bool, v viewmodel.Value) string {
	switch {
	case v.IsNull():
		return ""
	case v.Type() == viewmodel.CellBool:
		if v.Bool() {
			return "✓"
		}
		return "·"
	case money && v.Type() == viewmodel.CellNumber:
		return sess.money(v.Num())
	default:
		return v.Text()
	}
}
