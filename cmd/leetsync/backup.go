package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

var backupPath string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a backup of current data",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Creating data backup...")
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		written, err := a.sync.Backup(cmd.Context(), backupPath)
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}

		fmt.Printf("Backup created successfully at %s\n", written)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Restore data from backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Restoring data from backup: %s\n", args[0])
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.sync.Restore(cmd.Context(), args[0], domain.SyncTriggerCLI)
		if err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}

		fmt.Printf("Data restored successfully: %d problems\n", result.TotalProblems)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupPath, "path", "", "Backup file path")
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
