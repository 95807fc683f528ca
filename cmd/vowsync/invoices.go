package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/status"
	"github.com/spf13/cobra"
)

func (a *app) invoicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "Track vendor invoices",
	}

	cmd.AddCommand(a.invoicesAddCmd())
	cmd.AddCommand(a.invoicesListCmd())

	return cmd
}

func (a *app) invoicesAddCmd() *cobra.Command {
	var (
		inv      model.Invoice
		paidDate string
	)

	cmd := &cobra.Command{
		Use:   "add <vendor> <invoice number> <amount>",
		Short: "Record an invoice from a vendor",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[2])
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

			inv.VendorID = vendor.ID
			inv.InvoiceNumber = args[1]
			inv.Amount = amount
			inv.PaidDate = optionalString(paidDate)
			if inv.PaidDate != nil {
				inv.Status = model.PaymentPaid
			}

			if err := sess.store.SaveInvoice(ctx, &inv); err != nil {
				return fmt.Errorf("failed to save invoice: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Recorded invoice %s from %s for %s",
				inv.InvoiceNumber, vendor.Name, sess.money(inv.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&inv.DueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&inv.AmountPaid, "paid", 0, "amount already paid")
	cmd.Flags().StringVar(&paidDate, "paid-date", "", "date the invoice was settled")

	return cmd
}

func (a *app) invoicesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List invoices with their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			invoices, err := sess.store.ListInvoices(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}
			if len(invoices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No invoices yet."))
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
			t := cli.NewTable("Invoice", "Vendor", "Due", "Amount", "Paid", "Status").AlignRight(3, 4)
			for _, inv := range invoices {
				ds, err := status.ClassifyInvoice(sess.cfg, inv, now)
				if err != nil {
					return err
				}
				t.Row(inv.InvoiceNumber, names[inv.VendorID], inv.DueDate,
					sess.money(inv.Amount), sess.money(inv.AmountPaid), cli.Badge(ds))
			}
			return t.Render(cmd.OutOrStdout())
		},
	}
}
