package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current synchronization status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		status, err := a.sync.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}

		fmt.Println("=== LeetSync Engine Status ===")
		fmt.Println("\nConnections:")
		fmt.Printf("  LeetCode:      %s\n", passFail(status.Connections.LeetCode))
		fmt.Printf("  Google Sheets: %s\n", passFail(status.Connections.GoogleSheets))

		fmt.Println("\nLast Sync:")
		if status.LastRun == nil {
			fmt.Println("  Never")
		} else {
			run := status.LastRun
			fmt.Printf("  Mode:           %s (%s)\n", run.Mode, run.Trigger)
			fmt.Printf("  Status:         %s\n", run.Status)
			fmt.Printf("  Total Problems: %d\n", run.TotalProblems)
			fmt.Printf("  New Problems:   %d\n", run.NewProblems)
			fmt.Printf("  Errors:         %d\n", run.Errors)
			fmt.Printf("  Started At:     %s\n", run.StartedAt.Format("2006-01-02 15:04:05"))
		}

		fmt.Printf("\nStored Snapshot: %d problems\n", status.SnapshotCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
