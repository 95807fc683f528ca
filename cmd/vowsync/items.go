package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/viewmodel"
	"github.com/spf13/cobra"
)

var itemMoneyColumns = map[string]bool{
	viewmodel.ItemUnitCost:  true,
	viewmodel.ItemTotalCost: true,
}

func (a *app) itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage items to source and how many each event needs",
	}

	cmd.AddCommand(a.itemsAddCmd())
	cmd.AddCommand(a.itemsNeedCmd())
	cmd.AddCommand(a.itemsListCmd())
	cmd.AddCommand(a.itemsRemoveCmd())

	return cmd
}

func (a *app) itemsAddCmd() *cobra.Command {
	var item model.WeddingItem

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			item.WeddingID = sess.wedding.ID
			item.Name = args[0]
			if err := sess.store.SaveItem(ctx, &item); err != nil {
				return fmt.Errorf("failed to save item: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s (%s)", item.Name, shortID(item.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&item.Category, "category", "", "category, e.g. rentals or decor")
	cmd.Flags().StringVar(&item.Supplier, "supplier", "", "who supplies it")
	cmd.Flags().StringVar(&item.Notes, "notes", "", "free-form notes")
	cmd.Flags().Float64Var(&item.UnitCost, "unit-cost", 0, "cost per unit")

	return cmd
}

func (a *app) itemsNeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "need <item> <event> <quantity>",
		Short: "Set how many of an item an event needs; 0 removes it from the event",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			qty, err := strconv.Atoi(args[2])
			if err != nil || qty < 0 {
				return fmt.Errorf("quantity must be a whole number, got %q", args[2])
			}

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			items, err := sess.store.ListItems(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}
			item, err := findItem(items, args[0])
			if err != nil {
				return err
			}

			events, err := sess.store.ListEvents(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}
			event, err := findEvent(events, args[1])
			if err != nil {
				return err
			}

			rel := model.ItemEvent{ItemID: item.ID, EventID: event.ID, QuantityNeeded: qty}
			if err := sess.store.SetItemEvent(ctx, rel); err != nil {
				return fmt.Errorf("failed to save quantity: %w", err)
			}

			msg := fmt.Sprintf("%s needs %d × %s", event.Name, qty, item.Name)
			if qty == 0 {
				msg = fmt.Sprintf("%s no longer needs %s", event.Name, item.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg))
			return nil
		},
	}
}

func (a *app) itemsListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items with the quantity each event needs",
		Example: `  vowsync items list --filter category:equals:rentals --sort total_cost:desc
  vowsync items list --filter event:Reception:quantity:gte:50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			events, err := sess.store.ListEvents(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}
			items, err := sess.store.ListItems(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}
			relations, err := sess.store.ListItemEvents(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list item quantities: %w", err)
			}

			q, err := opts.query(viewmodel.ItemSchema, events)
			if err != nil {
				return err
			}

			res := viewmodel.NewPipeline(viewmodel.ItemSource, sess.cfg.Language).Run(items, relations, q)
			if err := renderRows(cmd.OutOrStdout(), sess, viewmodel.ItemSchema, events,
				viewmodel.ItemEventQuantity, itemMoneyColumns, res); err != nil {
				return err
			}

			var total float64
			for _, row := range res.Rows {
				if v, _ := row.Value(viewmodel.ItemTotalCost); v.Type() == viewmodel.CellNumber {
					total += v.Num()
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.BoldStyle.Render("Total: "+sess.money(total)))
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}

func (a *app) itemsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <item>",
		Aliases: []string{"rm"},
		Short:   "Remove an item and its per-event quantities",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			items, err := sess.store.ListItems(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}
			item, err := findItem(items, args[0])
			if err != nil {
				return err
			}

			if err := sess.store.DeleteItem(ctx, item.ID); err != nil {
				return fmt.Errorf("failed to remove item: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Removed "+item.Name))
			return nil
		},
	}
}

// findItem resolves an item by name or id prefix.
func findItem(items []model.WeddingItem, ref string) (model.WeddingItem, error) {
	for _, i := range items {
		if strings.EqualFold(i.Name, ref) {
			return i, nil
		}
	}
	return matchID(items, func(i model.WeddingItem) string { return i.ID }, ref)
}
