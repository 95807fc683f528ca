package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/spf13/cobra"
)

func (a *app) budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Plan the budget by category and see how spending tracks it",
	}

	cmd.AddCommand(a.budgetSetCmd())
	cmd.AddCommand(a.budgetShowCmd())

	return cmd
}

func (a *app) budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <projected>",
		Short: "Create a budget category or change its projected amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			projected, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			categories, err := sess.store.ListBudgetCategories(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list budget categories: %w", err)
			}

			c, found := findBudgetCategory(categories, args[0])
			if !found {
				c = model.BudgetCategory{WeddingID: sess.wedding.ID, Name: args[0]}
			}
			c.Projected = projected

			if err := sess.store.SaveBudgetCategory(ctx, &c); err != nil {
				return fmt.Errorf("failed to save budget category: %w", err)
			}

			verb := "Added"
			if found {
				verb = "Updated"
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s %s: %s", verb, c.Name, sess.money(c.Projected))))
			return nil
		},
	}
}

func (a *app) budgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show projected and actual spend per category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			categories, err := sess.store.ListBudgetCategories(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list budget categories: %w", err)
			}
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No budget categories yet. Use 'vowsync budget set'."))
				return nil
			}

			var projected, actual float64
			t := cli.NewTable("Category", "Projected", "Actual", "Remaining", "Used").AlignRight(1, 2, 3, 4)
			for _, c := range categories {
				bs := status.ClassifyBudget(sess.cfg, c.Actual, c.Projected)
				t.Row(c.Name, sess.money(c.Projected), sess.money(c.Actual), sess.money(bs.Remaining), cli.BudgetBadge(bs))
				projected += c.Projected
				actual += c.Actual
			}

			total := status.ClassifyBudget(sess.cfg, actual, projected)
			t.Row(cli.BoldStyle.Render("Total"), sess.money(projected), sess.money(actual),
				sess.money(total.Remaining), cli.BudgetBadge(total))
			if err := t.Render(cmd.OutOrStdout()); err != nil {
				return err
			}

			if w := sess.wedding; w.Budget > 0 && projected > w.Budget {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(fmt.Sprintf("Categories plan %s against an overall budget of %s",
					sess.money(projected), sess.money(w.Budget))))
			}
			return nil
		},
	}
}
