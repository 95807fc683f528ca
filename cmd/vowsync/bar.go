package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/spf13/cobra"
)

func (a *app) barCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Plan how much to buy for the bar",
	}

	cmd.AddCommand(a.barCreateCmd())
	cmd.AddCommand(a.barAddCmd())
	cmd.AddCommand(a.barShowCmd())

	return cmd
}

func (a *app) barCreateCmd() *cobra.Command {
	var (
		order model.BarOrder
		event string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a bar order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			order.WeddingID = sess.wedding.ID
			order.Name = args[0]

			if event != "" {
				events, err := sess.store.ListEvents(ctx, sess.wedding.ID)
				if err != nil {
					return fmt.Errorf("failed to list events: %w", err)
				}
				e, err := findEvent(events, event)
				if err != nil {
					return err
				}
				order.EventID = e.ID
			}

			if err := sess.store.SaveBarOrder(ctx, &order); err != nil {
				return fmt.Errorf("failed to save bar order: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Created bar order "+order.Name))
			return nil
		},
	}

	cmd.Flags().IntVar(&order.GuestCount, "guests", 0, "number of drinking guests")
	cmd.Flags().Float64Var(&order.EventHours, "hours", 0, "hours the bar is open")
	cmd.Flags().Float64Var(&order.DrinksPerGuestPerHour, "rate", 1, "drinks per guest per hour")
	cmd.Flags().StringVar(&event, "event", "", "event the bar serves")

	return cmd
}

func (a *app) barAddCmd() *cobra.Command {
	var item model.BarOrderItem

	cmd := &cobra.Command{
		Use:   "add <order> <drink> <percentage>",
		Short: "Add a drink to a bar order as a share of all servings",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pct, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
			if err != nil {
				return fmt.Errorf("invalid percentage %q", args[2])
			}

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			order, err := findBarOrder(cmd, sess, args[0])
			if err != nil {
				return err
			}

			item.BarOrderID = order.ID
			item.Name = args[1]
			item.Percentage = pct
			if err := sess.store.SaveBarOrderItem(ctx, &item); err != nil {
				return fmt.Errorf("failed to save bar item: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s (%s%%) to %s",
				item.Name, strconv.FormatFloat(pct, 'f', -1, 64), order.Name)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&item.ServingsPerUnit, "servings", 1, "servings per unit bought, e.g. 5 glasses per bottle")
	cmd.Flags().Float64Var(&item.UnitCost, "unit-cost", 0, "cost per unit")

	return cmd
}

func (a *app) barShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order>",
		Short: "Show how many units of each drink to buy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			order, err := findBarOrder(cmd, sess, args[0])
			if err != nil {
				return err
			}
			items, err := sess.store.ListBarOrderItems(ctx, order.ID)
			if err != nil {
				return fmt.Errorf("failed to list bar items: %w", err)
			}

			plan := status.CalculateBarOrder(order, items)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%s %s: %d guests × %s h × %s drinks/h = %s drinks",
				cli.BarIcon, order.Name, order.GuestCount,
				strconv.FormatFloat(order.EventHours, 'f', -1, 64),
				strconv.FormatFloat(order.DrinksPerGuestPerHour, 'f', -1, 64),
				strconv.FormatFloat(plan.TotalDrinks, 'f', -1, 64))))

			t := cli.NewTable("Drink", "Share", "Servings", "Units", "Cost").AlignRight(1, 2, 3, 4)
			for _, l := range plan.Lines {
				t.Row(l.Item.Name,
					status.FormatPercent(l.Item.Percentage),
					strconv.FormatFloat(l.Servings, 'f', 1, 64),
					strconv.Itoa(l.Units),
					sess.money(l.Cost))
			}
			t.Row(cli.BoldStyle.Render("Total"), "", "", strconv.Itoa(plan.TotalUnits), sess.money(plan.TotalCost))
			if err := t.Render(out); err != nil {
				return err
			}

			switch {
			case plan.Check.IsValid:
				fmt.Fprintln(out, cli.FormatSuccess(plan.Check.Message))
			case plan.Check.IsWarning:
				fmt.Fprintln(out, cli.FormatWarning(plan.Check.Message))
			default:
				fmt.Fprintln(out, cli.FormatError(plan.Check.Message))
			}
			return nil
		},
	}
}

func findBarOrder(cmd *cobra.Command, sess *session, ref string) (model.BarOrder, error) {
	orders, err := sess.store.ListBarOrders(cmd.Context(), sess.wedding.ID)
	if err != nil {
		return model.BarOrder{}, fmt.Errorf("failed to list bar orders: %w", err)
	}
	for _, o := range orders {
		if strings.EqualFold(o.Name, ref) {
			return o, nil
		}
	}
	return matchID(orders, func(o model.BarOrder) string { return o.ID }, ref)
}
