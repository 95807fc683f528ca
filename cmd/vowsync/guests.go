package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/vowsync/internal/cli"
	"github.com/Veraticus/vowsync/internal/model"
	"github.com/Veraticus/vowsync/internal/viewmodel"
	"github.com/spf13/cobra"
)

func (a *app) guestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "guests",
		Aliases: []string{"guest"},
		Short:   "Manage the guest list and who attends which event",
	}

	cmd.AddCommand(a.guestsAddCmd())
	cmd.AddCommand(a.guestsAttendCmd())
	cmd.AddCommand(a.guestsListCmd())
	cmd.AddCommand(a.guestsRemoveCmd())

	return cmd
}

func (a *app) guestsAddCmd() *cobra.Command {
	var (
		g     model.Guest
		table int
		rsvp  string
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "add <first name> [last name]",
		Short: "Add a guest",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			g.WeddingID = sess.wedding.ID
			g.FirstName = args[0]
			if len(args) > 1 {
				g.LastName = args[1]
			}
			g.RSVPStatus = model.RSVPStatus(strings.ToLower(rsvp))
			g.Type = model.GuestType(strings.ToLower(kind))
			if cmd.Flags().Changed("table") {
				g.TableNumber = &table
			}

			if err := sess.store.SaveGuest(ctx, &g); err != nil {
				return fmt.Errorf("failed to save guest: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s (%s)", g.FullName(), shortID(g.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&g.Email, "email", "", "email address")
	cmd.Flags().StringVar(&g.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&g.Side, "side", "", "whose side the guest is on")
	cmd.Flags().StringVar(&g.Dietary, "dietary", "", "dietary requirements")
	cmd.Flags().BoolVar(&g.PlusOne, "plus-one", false, "guest may bring a plus-one")
	cmd.Flags().IntVar(&table, "table", 0, "table number")
	cmd.Flags().StringVar(&rsvp, "rsvp", string(model.RSVPPending), "pending, accepted, declined or not_invited")
	cmd.Flags().StringVar(&kind, "type", string(model.GuestTypeAdult), "adult, child, plus_one or vendor")

	return cmd
}

func (a *app) guestsAttendCmd() *cobra.Command {
	var notAttending, shuttleTo, shuttleFrom bool

	cmd := &cobra.Command{
		Use:   "attend <guest> <event>",
		Short: "Record whether a guest attends an event and needs the shuttle",
		Long: `Record whether a guest attends an event and needs the shuttle.
The guest is given by name or id, the event by name or id.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			guests, err := sess.store.ListGuests(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list guests: %w", err)
			}
			guest, err := findGuest(guests, args[0])
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

			rel := model.GuestEvent{
				GuestID:     guest.ID,
				EventID:     event.ID,
				Attending:   !notAttending,
				ShuttleTo:   shuttleTo,
				ShuttleFrom: shuttleFrom,
			}
			if err := sess.store.SetGuestEvent(ctx, rel); err != nil {
				return fmt.Errorf("failed to save attendance: %w", err)
			}

			verb := "attends"
			if notAttending {
				verb = "does not attend"
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s %s %s", guest.FullName(), verb, event.Name)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&notAttending, "no", false, "guest does not attend")
	cmd.Flags().BoolVar(&shuttleTo, "shuttle-to", false, "guest needs the shuttle to the venue")
	cmd.Flags().BoolVar(&shuttleFrom, "shuttle-from", false, "guest needs the shuttle back")

	return cmd
}

func (a *app) guestsListCmd() *cobra.Command {
	var (
		opts  listOptions
		field string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List guests with one column per event",
		Example: `  vowsync guests list --filter side:equals:bride --sort name
  vowsync guests list --filter rsvp_status:in:pending,accepted
  vowsync guests list --filter event:Reception:attending:equals:true`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			if _, ok := viewmodel.GuestSchema.Lookup(viewmodel.EventColumn("x", field)); !ok {
				return fmt.Errorf("unknown event field %q", field)
			}

			events, err := sess.store.ListEvents(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}
			guests, err := sess.store.ListGuests(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list guests: %w", err)
			}
			relations, err := sess.store.ListGuestEvents(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list attendance: %w", err)
			}

			q, err := opts.query(viewmodel.GuestSchema, events)
			if err != nil {
				return err
			}

			res := viewmodel.NewPipeline(viewmodel.GuestSource, sess.cfg.Language).Run(guests, relations, q)
			return renderRows(cmd.OutOrStdout(), sess, viewmodel.GuestSchema, events, field, nil, res)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&field, "show", viewmodel.GuestEventAttending,
		"event field shown per event: attending, shuttle_to or shuttle_from")

	return cmd
}

func (a *app) guestsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <guest>",
		Aliases: []string{"rm"},
		Short:   "Remove a guest and their attendance",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := a.openSession(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sess.Close() }()

			guests, err := sess.store.ListGuests(ctx, sess.wedding.ID)
			if err != nil {
				return fmt.Errorf("failed to list guests: %w", err)
			}
			guest, err := findGuest(guests, args[0])
			if err != nil {
				return err
			}

			if err := sess.store.DeleteGuest(ctx, guest.ID); err != nil {
				return fmt.Errorf("failed to remove guest: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Removed "+guest.FullName()))
			return nil
		},
	}
}

// findGuest resolves a guest by full name or id prefix.
func findGuest(guests []model.Guest, ref string) (model.Guest, error) {
	for _, g := range guests {
		if strings.EqualFold(g.FullName(), ref) {
			return g, nil
		}
	}
	return matchID(guests, func(g model.Guest) string { return g.ID }, ref)
}
