package main

import (
	"fmt"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) vendorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vendors",
		Aliases: []string{"vendor"},
		Short:   "Manage vendors",
	}

	cmd.AddCommand(a.vendorsAddCmd())
	cmd.AddCommand(a.vendorsListCmd())

	return cmd
}

func (a *app) vendorsAddCmd() *cobra.Command {
	var v model.Vendor

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			v.WeddingID = sess.wedding.ID
			v.Name = args[0]
			if err := sess.store.SaveVendor(ctx, &v); err != nil {
				return fmt.Errorf("failed to save vendor: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s (%s)", v.Name, shortID(v.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Category, "category", "", "what the vendor provides")
	cmd.Flags().StringVar(&v.ContactName, "contact", "", "contact person")
	cmd.Flags().StringVar(&v.Email, "email", "", "email address")
	cmd.Flags().StringVar(&v.Phone, "phone", "", "phone number")

	return cmd
}

func (a *app) vendorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vendors with what is still owed to each",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			vendors, err := sess.store.ListVendors(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list vendors: %w", err)
			}
			if len(vendors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No vendors yet."))
				return nil
			}

			pending, err := sess.store.ListPendingPayments(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list payments: %w", err)
			}
			owed := make(map[string]float64)
			for _, p := range pending {
				owed[p.VendorID] += p.Amount
			}

			t := cli.NewTable("Vendor", "Category", "Contact", "Email", "Phone", "Owed").AlignRight(5)
			for _, v := range vendors {
				t.Row(v.Name, v.Category, v.ContactName, v.Email, v.Phone, sess.money(owed[v.ID]))
			}
			return t.Render(cmd.OutOrStdout())
		},
	}
}
