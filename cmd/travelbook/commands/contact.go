package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"travelbook/internal/domain"
	"travelbook/internal/domain/types"
)

func contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage customers and service providers",
	}
	cmd.AddCommand(
		contactAddCmd(),
		contactEditCmd(),
		contactDeleteCmd(),
		contactListCmd(),
		contactFindCmd(),
	)
	return cmd
}

func contactAddCmd() *cobra.Command {
	var f contactFields
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a contact to the address book",
		Example: `  travelbook contact add --name "John Doe" --phone 98765432 --email johnd@example.com --address "311, Clementi Ave 2" --tag customer`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.build()
			if err != nil {
				return err
			}
			if appCtx.Model.HasContact(c) {
				return errors.New(msgDuplicateContact)
			}
			if err := appCtx.Model.AddContact(c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), msgContactAdded+"\n", formatContact(c))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "", "contact name")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.address, "address", "", "postal address")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "customer or service (repeatable)")
	cmd.Flags().StringVar(&f.note, "note", "", "free-text note")
	for _, required := range []string{"name", "phone", "email", "address"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}

func contactEditCmd() *cobra.Command {
	var (
		f         contactFields
		clearTags bool
	)
	cmd := &cobra.Command{
		Use:   "edit INDEX",
		Short: "Edit the contact at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			target, err := pick(appCtx.Model.FilteredContactList(), index, msgInvalidContactIndex)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			edited := fieldsOfContact(target)
			changed := false
			for name, dst := range map[string]*string{
				"name": &edited.name, "phone": &edited.phone, "email": &edited.email,
				"address": &edited.address, "note": &edited.note,
			} {
				if flags.Changed(name) {
					*dst, _ = flags.GetString(name)
					changed = true
				}
			}
			if clearTags {
				edited.tags, changed = nil, true
			}
			if flags.Changed("tag") {
				edited.tags, changed = f.tags, true
			}
			if !changed {
				return errors.New(msgNothingToEdit)
			}

			c, err := edited.build()
			if err != nil {
				return err
			}
			if !target.Same(c) && appCtx.Model.HasContact(c) {
				return errors.New(msgDuplicateContact)
			}
			if err := appCtx.Model.SetContact(target, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), msgContactEdited+"\n", formatContact(c))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.name, "name", "", "new name")
	cmd.Flags().StringVar(&f.phone, "phone", "", "new phone number")
	cmd.Flags().StringVar(&f.email, "email", "", "new email address")
	cmd.Flags().StringVar(&f.address, "address", "", "new postal address")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "replace tags (repeatable)")
	cmd.Flags().BoolVar(&clearTags, "clear-tags", false, "remove all tags")
	cmd.Flags().StringVar(&f.note, "note", "", "new note")
	return cmd
}

func contactDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the contact at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			target, err := pick(appCtx.Model.FilteredContactList(), index, msgInvalidContactIndex)
			if err != nil {
				return err
			}
			if err := appCtx.Model.DeleteContact(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), msgContactDeleted+"\n", formatContact(target))
			return nil
		},
	}
}

func contactListCmd() *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts, optionally only those with a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.Filter{Kind: domain.FilterAll}
			if tag != "" {
				t, err := types.NewTag(tag)
				if err != nil {
					return err
				}
				filter = domain.Filter{Kind: domain.FilterTag, Args: []string{t.Value()}}
			}
			if err := appCtx.FilterContacts(filter); err != nil {
				return err
			}
			printContacts(cmd, appCtx.Model.FilteredContactList())
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only contacts tagged customer or service")
	return cmd
}

func contactFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD...",
		Short: "Find contacts whose name contains any keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.FilterContacts(domain.Filter{Kind: domain.FilterKeywords, Args: args}); err != nil {
				return err
			}
			list := appCtx.Model.FilteredContactList()
			printContacts(cmd, list)
			fmt.Fprintf(cmd.OutOrStdout(), msgContactsListed+"\n", list.Len())
			return nil
		},
	}
}

func printContacts(cmd *cobra.Command, list domain.ReadOnlyList[domain.Contact]) {
	out := cmd.OutOrStdout()
	for i, c := range list.All() {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatContact(c))
	}
}
