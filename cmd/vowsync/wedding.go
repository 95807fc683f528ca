package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/spf13/cobra"
)

func (a *app) weddingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wedding",
		Short: "Create and inspect weddings",
	}

	cmd.AddCommand(a.weddingCreateCmd())
	cmd.AddCommand(a.weddingListCmd())
	cmd.AddCommand(a.weddingShowCmd())

	return cmd
}

func (a *app) weddingCreateCmd() *cobra.Command {
	var (
		date     string
		budget   float64
		currency string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a wedding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			w := model.Wedding{
				Name:     args[0],
				Date:     date,
				Budget:   budget,
				Currency: strings.ToUpper(currency),
			}
			if err := store.CreateWedding(ctx, &w); err != nil {
				return fmt.Errorf("failed to create wedding: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Created %s (%s)", w.Name, w.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "wedding date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "overall budget")
	cmd.Flags().StringVar(&currency, "currency", "USD", "ISO currency code")

	return cmd
}

func (a *app) weddingListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List weddings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			weddings, err := store.ListWeddings(ctx)
			if err != nil {
				return fmt.Errorf("failed to list weddings: %w", err)
			}
			if len(weddings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No weddings yet. Use 'vowsync wedding create' to add one."))
				return nil
			}

			t := cli.NewTable("ID", "Name", "Date", "Budget").AlignRight(3)
			for _, w := range weddings {
				cfg, err := a.statusConfig(&w)
				if err != nil {
					return err
				}
				t.Row(w.ID, w.Name, w.Date, status.FormatCurrency(cfg, w.Budget))
			}
			return t.Render(cmd.OutOrStdout())
		},
	}
}

func (a *app) weddingShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Summarize the wedding: countdown, budget, RSVPs and payments needing attention",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			w, cfg, store := sess.wedding, sess.cfg, sess.store
			now := today(cfg)

			guests, err := store.ListGuests(ctx, w.ID)
			if err != nil {
				return fmt.Errorf("failed to list guests: %w", err)
			}
			payments, err := store.ListPayments(ctx, w.ID)
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}

			var lines []string

			if date, err := status.ParseDate(w.Date, cfg.Location); err == nil {
				days := int(date.Sub(now).Round(time.Hour).Hours() / 24)
				if days >= 0 {
					lines = append(lines, fmt.Sprintf("%s %s · %d days to go", cli.RingIcon, w.Date, days))
				} else {
					lines = append(lines, fmt.Sprintf("%s %s", cli.RingIcon, w.Date))
				}
			}

			var paid float64
			var attention []string
			for _, p := range payments {
				if p.IsPaid() {
					paid += p.Amount
					continue
				}
				ds, err := status.ClassifyPayment(cfg, p, now)
				if err != nil {
					continue
				}
				if ds.NeedsAttention() {
					attention = append(attention, fmt.Sprintf("  %s %s %s",
						cli.Badge(ds), p.Description, status.FormatCurrency(cfg, p.Amount)))
				}
			}

			budget := status.ClassifyBudget(cfg, paid, w.Budget)
			lines = append(lines, fmt.Sprintf("%s Spent %s of %s (%s)", cli.MoneyIcon,
				status.FormatCurrency(cfg, paid),
				status.FormatCurrency(cfg, w.Budget),
				cli.BudgetBadge(budget)))

			rsvp := make(map[model.RSVPStatus]int)
			for _, g := range guests {
				rsvp[g.RSVPStatus]++
			}
			lines = append(lines, fmt.Sprintf("Guests: %d · %d accepted · %d pending · %d declined",
				len(guests), rsvp[model.RSVPAccepted], rsvp[model.RSVPPending], rsvp[model.RSVPDeclined]))

			if len(attention) > 0 {
				lines = append(lines, "", cli.WarningStyle.Render("Needs attention:"))
				lines = append(lines, attention...)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(w.Name, strings.Join(lines, "\n")))
			return nil
		},
	}
}
