package main

import (
	"fmt"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/spf13/cobra"
)

func (a *app) eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Manage the wedding's events",
	}

	cmd.AddCommand(a.eventsAddCmd())
	cmd.AddCommand(a.eventsListCmd())

	return cmd
}

func (a *app) eventsAddCmd() *cobra.Command {
	var date, venue string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an event; events are listed in the order they were added",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			e := model.Event{
				WeddingID: sess.wedding.ID,
				Name:      args[0],
				Date:      date,
				Venue:     venue,
				SortOrder: len(events) + 1,
			}
			if err := sess.store.SaveEvent(ctx, &e); err != nil {
				return fmt.Errorf("failed to save event: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Added event "+e.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&venue, "venue", "", "venue")

	return cmd
}

func (a *app) eventsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List events in running order",
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
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.InfoStyle.Render("No events yet."))
				return nil
			}

			t := cli.NewTable("#", "Event", "Date", "Venue").AlignRight(0)
			for _, e := range events {
				t.Row(fmt.Sprint(e.SortOrder), e.Name, e.Date, e.Venue)
			}
			return t.Render(cmd.OutOrStdout())
		},
	}
}
