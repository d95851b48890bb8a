package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"patientor/internal/client"
	"patientor/internal/domain/entries"
	"patientor/internal/export"

	"github.com/spf13/cobra"
)

func entriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Validate and submit entries",
	}

	// entries check
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate an entry payload offline",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			data, err := readPayload(cmd, file)
			if err != nil {
				return err
			}

			var raw any
			if err := json.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("invalid json: %w", err)
			}

			e, err := entries.Validate(raw)
			if err != nil {
				return err
			}
			printEntry(cmd.OutOrStdout(), e)
			return nil
		},
	}
	checkCmd.Flags().String("file", "-", "JSON payload file (- for stdin)")

	// entries add
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Append an entry to a patient through the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, _ := cmd.Flags().GetString("server")
			patientID, _ := cmd.Flags().GetString("patient")
			file, _ := cmd.Flags().GetString("file")

			if strings.TrimSpace(patientID) == "" {
				return fmt.Errorf("--patient is required")
			}
			data, err := readPayload(cmd, file)
			if err != nil {
				return err
			}

			c, err := client.New(server, client.DefaultTimeout)
			if err != nil {
				return err
			}
			e, err := c.AddEntry(cmd.Context(), patientID, json.RawMessage(data))
			if err != nil {
				return err
			}
			printEntry(cmd.OutOrStdout(), e)
			return nil
		},
	}
	addCmd.Flags().String("server", "http://localhost:3001", "API base URL")
	addCmd.Flags().String("patient", "", "Patient ID")
	addCmd.Flags().String("file", "-", "JSON payload file (- for stdin)")

	cmd.AddCommand(checkCmd)
	cmd.AddCommand(addCmd)
	return cmd
}

func readPayload(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(file)
}

func printEntry(w io.Writer, e entries.Entry) {
	b := e.Base()
	id := b.ID
	if id == "" {
		id = "-"
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id, e.Type(), b.Date, export.Details(e))
}
