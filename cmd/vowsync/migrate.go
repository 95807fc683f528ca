package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/config"
	"github.com/Veraticus/vowsync/internal/storage"
	"github.com/spf13/cobra"
)

func (a *app) migrateCmd() *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if statusOnly {
				store, err := storage.NewSQLiteStorage(config.DatabasePath(a.v))
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				version, err := store.SchemaVersion(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "Database: %s\n", store.Path())
				fmt.Fprintf(out, "Schema version: %d (current: %d)\n", version, storage.ExpectedSchemaVersion)
				if version < storage.ExpectedSchemaVersion {
					fmt.Fprintln(out, cli.FormatWarning("Run 'vowsync migrate' to upgrade"))
				}
				return nil
			}

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			slog.Info("Database migrated", "path", store.Path())
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Database is at schema version %d", storage.ExpectedSchemaVersion)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status", false, "show the schema version without migrating")

	return cmd
}
