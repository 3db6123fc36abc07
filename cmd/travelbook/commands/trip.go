package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"travelbook/internal/domain"
)

func tripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage planned trips",
	}
	cmd.AddCommand(
		tripAddCmd(),
		tripEditCmd(),
		tripDeleteCmd(),
		tripListCmd(),
		tripFindCmd(),
	)
	return cmd
}

func tripAddCmd() *cobra.Command {
	var f tripFields
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a trip to the trip book",
		Example: `  travelbook trip add --name "PARIS 2025" --accommodation "Hotel Lutetia" --itinerary "Louvre" --date 2025-06-01 --customer "John Doe"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := f.build()
			if err != nil {
				return err
			}
			if appCtx.Model.HasTrip(t) {
				return errors.New(msgDuplicateTrip)
			}
			if err := appCtx.Model.AddTrip(t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), msgTripAdded+"\n", formatTrip(t))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "", "trip name")
	cmd.Flags().StringVar(&f.accommodation, "accommodation", "", "where the trip stays")
	cmd.Flags().StringVar(&f.itinerary, "itinerary", "", "what the trip does")
	cmd.Flags().StringVar(&f.date, "date", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringArrayVar(&f.customers, "customer", nil, "customer name (repeatable)")
	cmd.Flags().StringVar(&f.note, "note", "", "free-text note")
	for _, required := range []string{"name", "accommodation", "itinerary", "date"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}

func tripEditCmd() *cobra.Command {
	var (
		f              tripFields
		clearCustomers bool
	)
	cmd := &cobra.Command{
		Use:   "edit INDEX",
		Short: "Edit the trip at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			target, err := pick(appCtx.Model.FilteredTripList(), index, msgInvalidTripIndex)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			edited := fieldsOfTrip(target)
			changed := false
			for name, dst := range map[string]*string{
				"name": &edited.name, "accommodation": &edited.accommodation,
				"itinerary": &edited.itinerary, "date": &edited.date, "note": &edited.note,
			} {
				if flags.Changed(name) {
					*dst, _ = flags.GetString(name)
					changed = true
				}
			}
			if clearCustomers {
				edited.customers, changed = nil, true
			}
			if flags.Changed("customer") {
				edited.customers, changed = f.customers, true
			}
			if !changed {
				return errors.New(msgNothingToEdit)
			}

			t, err := edited.build()
			if err != nil {
				return err
			}
			if !target.Same(t) && appCtx.Model.HasTrip(t) {
				return errors.New(msgDuplicateTrip)
			}
			if err := appCtx.Model.SetTrip(target, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), msgTripEdited+"\n", formatTrip(t))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "", "new trip name")
	cmd.Flags().StringVar(&f.accommodation, "accommodation", "", "new accommodation")
	cmd.Flags().StringVar(&f.itinerary, "itinerary", "", "new itinerary")
	cmd.Flags().StringVar(&f.date, "date", "", "new date, YYYY-MM-DD")
	cmd.Flags().StringArrayVar(&f.customers, "customer", nil, "replace customers (repeatable)")
	cmd.Flags().BoolVar(&clearCustomers, "clear-customers", false, "remove all customers")
	cmd.Flags().StringVar(&f.note, "note", "", "new note")
	return cmd
}

func tripDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the trip at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			target, err := pick(appCtx.Model.FilteredTripList(), index, msgInvalidTripIndex)
			if err != nil {
				return err
			}
			if err := appCtx.Model.DeleteTrip(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), msgTripDeleted+"\n", formatTrip(target))
			return nil
		},
	}
}

func tripListCmd() *cobra.Command {
	var customer string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trips, optionally only those booking a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.Filter{Kind: domain.FilterAll}
			if customer = strings.TrimSpace(customer); customer != "" {
				filter = domain.Filter{Kind: domain.FilterCustomer, Args: []string{customer}}
			}
			if err := appCtx.FilterTrips(filter); err != nil {
				return err
			}
			printTrips(cmd, appCtx.Model.FilteredTripList())
			return nil
		},
	}
	cmd.Flags().StringVar(&customer, "customer", "", "only trips booking this customer")
	return cmd
}

func tripFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD...",
		Short: "Find trips whose name contains any keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.FilterTrips(domain.Filter{Kind: domain.FilterKeywords, Args: args}); err != nil {
				return err
			}
			list := appCtx.Model.FilteredTripList()
			printTrips(cmd, list)
			fmt.Fprintf(cmd.OutOrStdout(), msgTripsListed+"\n", list.Len())
			return nil
		},
	}
}

func printTrips(cmd *cobra.Command, list domain.ReadOnlyList[domain.Trip]) {
	out := cmd.OutOrStdout()
	for i, t := range list.All() {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatTrip(t))
	}
}
