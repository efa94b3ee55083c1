package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/aide/internal/platform"
	"github.com/aretw0/aide/pkg/contacts"
)

var contactEmail string

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage contacts",
}

var contactAddCmd = &cobra.Command{
	Use:   "add [name] [phone]",
	Short: "Add a contact",
	Args:  cobra.ExactArgs(2),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		c, err := ws.Contacts.Add(cmd.Context(), args[0], args[1], contactEmail)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Contact #%d added.\n", c.ID)
		return nil
	}),
}

var contactEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change fields of a contact",
	Args:  cobra.ExactArgs(1),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := ws.Contacts.Update(cmd.Context(), id, contacts.Update{
			Name:  changed(cmd, "name"),
			Phone: changed(cmd, "phone"),
			Email: changed(cmd, "email"),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Contact #%d updated.\n", c.ID)
		return nil
	}),
}

var contactSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find contacts by name (case-insensitive) or phone",
	Args:  cobra.ExactArgs(1),
	RunE: withWorkspace(func(cmd *cobra.Command, ws *platform.Workspace, args []string) error {
		found, err := ws.Contacts.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), found, renderContact)
	}),
}

func renderContact(w io.Writer, c *contacts.Contact) {
	fmt.Fprintf(w, "#%d %s  %s", c.ID, headerColor.Sprint(c.Name), c.Phone)
	if c.Email != "" {
		fmt.Fprintf(w, "  <%s>", c.Email)
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(contactsCmd)
	contactsCmd.AddCommand(contactAddCmd, contactEditCmd, contactSearchCmd)
	contactsCmd.AddCommand(collectionCommands(func(ws *platform.Workspace) collection[*contacts.Contact] {
		return ws.Contacts
	}, renderContact)...)

	contactAddCmd.Flags().StringVarP(&contactEmail, "email", "e", "", "E-mail address")

	contactEditCmd.Flags().String("name", "", "New name")
	contactEditCmd.Flags().String("phone", "", "New phone")
	contactEditCmd.Flags().StringP("email", "e", "", "New e-mail, empty to clear")
}
