package main

import (
	"fmt"
	"strings"

	"patientor/internal/client"

	"github.com/spf13/cobra"
)

func patientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "Query patients through the API",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List patients (no SSN)",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, _ := cmd.Flags().GetString("server")

			c, err := client.New(server, client.DefaultTimeout)
			if err != nil {
				return err
			}
			list, err := c.ListPatients(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Gender, p.Occupation)
			}
			return nil
		},
	}
	listCmd.Flags().String("server", "http://localhost:3001", "API base URL")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show a patient with its entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, _ := cmd.Flags().GetString("server")
			id, _ := cmd.Flags().GetString("id")
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("--id is required")
			}

			c, err := client.New(server, client.DefaultTimeout)
			if err != nil {
				return err
			}
			p, err := c.GetPatient(cmd.Context(), id)
			if client.IsNotFound(err) {
				return fmt.Errorf("patient %s not found", id)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.DateOfBirth, p.SSN, p.Gender, p.Occupation)
			for _, e := range p.Entries {
				printEntry(out, e)
			}
			return nil
		},
	}
	getCmd.Flags().String("server", "http://localhost:3001", "API base URL")
	getCmd.Flags().String("id", "", "Patient ID")

	cmd.AddCommand(listCmd)
	cmd.AddCommand(getCmd)
	return cmd
}

func diagnosesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnoses",
		Short: "Query the diagnosis catalog through the API",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List diagnosis codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, _ := cmd.Flags().GetString("server")

			c, err := client.New(server, client.DefaultTimeout)
			if err != nil {
				return err
			}
			list, err := c.Diagnoses(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.Code, d.Name, d.Latin)
			}
			return nil
		},
	}
	listCmd.Flags().String("server", "http://localhost:3001", "API base URL")

	cmd.AddCommand(listCmd)
	return cmd
}
