package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

var cleanupDays int

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Clean up old data",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Cleaning up data older than %d days...\n", cleanupDays)
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.sync.Cleanup(cmd.Context(), cleanupDays, domain.SyncTriggerCLI)
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}

		fmt.Printf("Cleanup completed: %d problems kept\n", result.TotalProblems)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().IntVar(&cleanupDays, "days", 365, "Days of data to keep")
	rootCmd.AddCommand(cleanupCmd)
}
