package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/common"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/ofx"
	"github.com/spf13/cobra"
)

func (a *app) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank statements",
	}

	cmd.AddCommand(a.importOFXCmd())

	return cmd
}

func (a *app) importOFXCmd() *cobra.Command {
	var (
		dryRun bool
		window time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ofx <file>...",
		Short: "Import OFX/QFX statements and mark the vendor payments they settle as paid",
		Long: `Import OFX/QFX statements and mark the vendor payments they settle as paid.

A debit settles a pending payment when the amounts agree to the cent, the
vendor's name appears in the statement line and the date is within --window
of the due date. Statement lines seen before are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := cli.NewInterruptHandler(cmd.ErrOrStderr(), "Import")
			handler.SetHint("Nothing was recorded; run the import again to resume.")
			ctx, stop := handler.HandleInterrupts(cmd.Context())
			defer stop()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			parser := ofx.NewParser()
			var transactions []model.BankTransaction
			for _, path := range args {
				txns, err := parseStatement(ctx, parser, path)
				if err != nil {
					return err
				}
				transactions = append(transactions, txns...)
			}
			if len(transactions) == 0 {
				return common.NewUserError("the statements contain no transactions", common.ErrNoTransactions)
			}

			reconciler := ofx.NewReconciler(sess.store,
				ofx.WithWindow(window),
				ofx.WithLocation(sess.cfg.Location))

			result, err := reconciler.Match(ctx, sess.wedding.ID, transactions)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Matches) > 0 {
				t := cli.NewTable("Date", "Statement", "Vendor", "Payment", "Due", "Amount").AlignRight(5)
				for _, m := range result.Matches {
					t.Row(m.Transaction.Date.Format(dateLayout), m.Transaction.Payee, m.VendorName,
						m.Payment.Description, m.Payment.DueDate, sess.money(m.Payment.Amount))
				}
				if err := t.Render(out); err != nil {
					return err
				}
			}

			if dryRun {
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Dry run: %d of %d transactions would settle a payment",
					len(result.Matches), len(transactions))))
				return nil
			}

			var progress ofx.Progress
			if len(result.Matches) > 0 {
				progress = cli.NewProgressBar(cmd.ErrOrStderr(), len(result.Matches), "Settling payments")
			}

			inserted, err := reconciler.Apply(ctx, transactions, result.Matches, progress)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d new transactions, settled %d payments",
				inserted, len(result.Matches))))
			if skipped := len(transactions) - inserted; skipped > 0 {
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("%d transactions were already imported", skipped)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show matches without recording anything")
	cmd.Flags().DurationVar(&window, "window", ofx.DefaultMatchWindow, "how far from the due date a payment may clear")

	return cmd
}

func parseStatement(ctx context.Context, parser *ofx.Parser, path string) ([]model.BankTransaction, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, common.NewUserError("could not open "+path, err)
	}
	defer func() { _ = f.Close() }()

	txns, err := parser.ParseFile(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	slog.Debug("Parsed statement", "file", path, "transactions", len(txns))
	return txns, nil
}
