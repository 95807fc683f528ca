package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/spf13/cobra"
)

func (a *app) paymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payments",
		Aliases: []string{"payment"},
		Short:   "Schedule vendor payments and record them as paid",
	}

	cmd.AddCommand(a.paymentsAddCmd())
	cmd.AddCommand(a.paymentsListCmd())
	cmd.AddCommand(a.paymentsPayCmd())

	return cmd
}

func (a *app) paymentsAddCmd() *cobra.Command {
	var due, description, category string

	cmd := &cobra.Command{
		Use:   "add <vendor> <amount>",
		Short: "Schedule a payment to a vendor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			vendors, err := sess.store.ListVendors(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list vendors: %w", err)
			}
			vendor, err := findVendor(vendors, args[0])
			if err != nil {
				return err
			}

			p := model.Payment{
				WeddingID:   sess.wedding.ID,
				VendorID:    vendor.ID,
				Description: description,
				DueDate:     due,
				Amount:      amount,
				Status:      model.PaymentPending,
			}

			if category != "" {
				categories, err := sess.store.ListBudgetCategories(ctx, sess.wedding.ID)
				if err != nil {
					return fmt.Errorf("failed to list budget categories: %w", err)
				}
				c, ok := findBudgetCategory(categories, category)
				if !ok {
					return common.NewUserError("no budget category named "+strconv.Quote(category), common.ErrNotFound)
				}
				p.CategoryID = &c.ID
			}

			if err := sess.store.SavePayment(ctx, &p); err != nil {
				return fmt.Errorf("failed to save payment: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Scheduled %s to %s (%s)",
				sess.money(p.Amount), vendor.Name, shortID(p.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "what the payment is for, e.g. deposit")
	cmd.Flags().StringVar(&category, "category", "", "budget category the payment counts against")

	return cmd
}

func (a *app) paymentsListCmd() *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments with their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			list := sess.store.ListPayments
			if pendingOnly {
				list = sess.store.ListPendingPayments
			}
			payments, err := list(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}
			if len(payments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No payments scheduled."))
				return nil
			}

			vendors, err := sess.store.ListVendors(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list vendors: %w", err)
			}
			names := make(map[string]string, len(vendors))
			for _, v := range vendors {
				names[v.ID] = v.Name
			}

			now := today(sess.cfg)
			t := cli.NewTable("ID", "Vendor", "Description", "Due", "Amount", "Status").AlignRight(4)
			for _, p := range payments {
				ds, err := status.ClassifyPayment(sess.cfg, p, now)
				if err != nil {
					return fmt.Errorf("payment %s: %w", shortID(p.ID), err)
				}
				t.Row(shortID(p.ID), names[p.VendorID], p.Description, p.DueDate, sess.money(p.Amount), cli.Badge(ds))
			}
			return t.Render(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "only payments not yet paid or cancelled")

	return cmd
}

func (a *app) paymentsPayCmd() *cobra.Command {
	var (
		date string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "pay <payment id>",
		Short: "Record a payment as paid, previewing its effect on the budget category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			payments, err := sess.store.ListPayments(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}
			p, err := matchID(payments, func(p model.Payment) string { return p.ID }, args[0])
			if err != nil {
				return err
			}
			if p.IsPaid() {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Payment "+shortID(p.ID)+" is already paid"))
				return nil
			}

			if date == "" {
				date = today(sess.cfg).Format(dateLayout)
			}

			if p.CategoryID != nil {
				c, err := sess.store.GetBudgetCategory(ctx, *p.CategoryID)
				if err != nil {
					return fmt.Errorf("failed to load budget category: %w", err)
				}
				impact := status.PreviewImpact(sess.cfg, c.Actual, p.Amount, c.Projected)
				printImpact(cmd, sess, c.Name, impact)

				if impact.WillExceedBudget && !yes {
					reader := cli.NewNonBlockingReader(cmd.InOrStdin())
					ok, err := cli.Confirm(ctx, reader, cmd.OutOrStdout(), "Record it anyway?", false)
					if err != nil {
						if errors.Is(err, cli.ErrInputCancelled) {
							return ctx.Err()
						}
						return err
					}
					if !ok {
						fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Nothing recorded"))
						return nil
					}
				}
			}

			if err := sess.store.MarkPaymentPaid(ctx, p.ID, date); err != nil {
				return fmt.Errorf("failed to record payment: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Paid %s on %s", sess.money(p.Amount), date)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date paid (default: today)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "record without asking when the category would go over budget")

	return cmd
}

func printImpact(cmd *cobra.Command, sess *session, category string, impact status.Impact) {
	line := fmt.Sprintf("%s: %s → %s of %s (%s)", category,
		sess.money(impact.CurrentActual),
		sess.money(impact.NewActual),
		sess.money(impact.Projected),
		status.FormatPercent(impact.NewPercentage))

	switch {
	case impact.WillExceedBudget:
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(line+" goes over budget"))
	case impact.WillTriggerWarning:
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(line+" nears the budget"))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo(line))
	}
}
