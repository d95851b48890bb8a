package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Patientor API
// @version 1.0
// @description Pacientes y entries clínicas (Hospital, OccupationalHealthcare, HealthCheck).
// @BasePath /api
func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "patientor",
		Short:         "Patientor API server and tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(serveCmd())
	root.AddCommand(entriesCmd())
	root.AddCommand(patientsCmd())
	root.AddCommand(diagnosesCmd())
	return root
}
