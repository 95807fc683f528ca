package main

import (
	"github.com/Veraticus/vowsync/internal/tui"
	"github.com/spf13/cobra"
)

func (a *app) browseCmd() *cobra.Command {
	var items bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse guests and items interactively",
		Long: `Browse guests and items in a terminal table with one column per event.

Keys: h/l pick a column, s sorts by it, f cycles its filter, / searches by
name, c clears filters, tab switches between guests and items, ? shows help.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			table := tui.TableGuests
			if items {
				table = tui.TableItems
			}

			return tui.Run(ctx,
				tui.WithStorage(sess.store),
				tui.WithWedding(sess.wedding.ID),
				tui.WithStatusConfig(sess.cfg),
				tui.WithTable(table))
		},
	}

	cmd.Flags().BoolVar(&items, "items", false, "start on the item table")

	return cmd
}
