package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jesses-code-adventures/cms/internal/models"
	"github.com/jesses-code-adventures/cms/internal/utils"
)

func newClientsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage clients",
		Long:  "Commands for listing, adding and deleting clients.",
	}

	cmd.AddCommand(newClientsListCmd(a))
	cmd.AddCommand(newClientsAddCmd(a))
	cmd.AddCommand(newClientsDeleteCmd(a))

	return cmd
}

func newClientsListCmd(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := a.svc.ListClients(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}

			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}

			fmt.Println("Clients:")
			for _, client := range clients {
				if verbose {
					fmt.Printf("\nClient: %s (ID: %s)\n", client.Name, client.ID)
					fmt.Printf("  Contact: %s\n", orDash(client.ContactPerson))
					fmt.Printf("  Phone:   %s\n", orDash(client.Phone))
					fmt.Printf("  Email:   %s\n", orDash(client.Email))
					fmt.Printf("  Address: %s\n", orDash(client.Address))
					fmt.Printf("  Type:    %s\n", orDash(client.ClientType))
				} else {
					fmt.Printf("%s - %s - %s\n", client.ID, client.Name, orDash(client.ContactPerson))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show contact details")
	return cmd
}

func newClientsAddCmd(a *app) *cobra.Command {
	var name, contact, phone, email, address, clientType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, o := a.svc.AddClient(cmd.Context(), &models.Client{
				Name:          name,
				ContactPerson: utils.ToPtrNil(contact),
				Phone:         utils.ToPtrNil(phone),
				Email:         utils.ToPtrNil(email),
				Address:       utils.ToPtrNil(address),
				ClientType:    utils.ToPtrNil(clientType),
			})
			if err := outcomeErr(o); err != nil {
				return err
			}
			fmt.Printf("%s (ID: %s)\n", o.Message, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Client name")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact person")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")
	cmd.Flags().StringVar(&clientType, "type", "", "Client type, e.g. Residential or Commercial")
	return cmd
}

func newClientsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <client-id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := a.svc.DeleteClient(cmd.Context(), args[0])
			if err := outcomeErr(o); err != nil {
				return err
			}
			fmt.Println(o.Message)
			return nil
		},
	}
}
