package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelbook/internal/book"
)

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every contact and trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Model.SetAddressBook(book.NewAddressBook()); err != nil {
				return err
			}
			if err := appCtx.Model.SetTripBook(book.NewTripBook()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msgCleared)
			return nil
		},
	}
}
