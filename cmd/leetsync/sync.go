package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
	"github.com/mbonetti/leetsync-engine/internal/core/services"
)

var (
	syncForceFull   bool
	syncIncremental bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize LeetCode data to Google Sheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		// --force-full wins when both flags are given.
		var result *services.SyncResult
		if syncIncremental && !syncForceFull {
			fmt.Println("Performing incremental synchronization...")
			result, err = a.sync.IncrementalSync(cmd.Context(), domain.SyncTriggerCLI)
		} else {
			fmt.Println("Performing full synchronization...")
			result, err = a.sync.FullSync(cmd.Context(), domain.SyncTriggerCLI)
		}
		if err != nil {
			return fmt.Errorf("synchronization failed: %w", err)
		}

		fmt.Println("Synchronization completed successfully!")
		fmt.Printf("  Total Problems: %d\n", result.TotalProblems)
		fmt.Printf("  New Problems:   %d\n", result.NewProblems)
		fmt.Printf("  Fetch Errors:   %d\n", result.Errors)
		fmt.Printf("  Duration:       %.2fs\n", result.Duration.Seconds())
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncForceFull, "force-full", false, "Force full synchronization")
	syncCmd.Flags().BoolVar(&syncIncremental, "incremental", false, "Perform incremental sync only")
	rootCmd.AddCommand(syncCmd)
}
