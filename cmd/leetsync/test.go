package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connections to LeetCode and Google Sheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Testing connections...")
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		status := a.sync.TestConnections(cmd.Context())

		fmt.Println("\n=== Connection Test Results ===")
		fmt.Printf("LeetCode:      %s\n", passFail(status.LeetCode))
		fmt.Printf("Google Sheets: %s\n", passFail(status.GoogleSheets))

		if !status.Healthy() {
			return fmt.Errorf("some connections failed, please check your configuration")
		}
		fmt.Println("\nAll connections successful!")
		return nil
	},
}

func passFail(ok bool) string {
	if ok {
		return "PASSED"
	}
	return "FAILED"
}

func init() {
	rootCmd.AddCommand(testCmd)
}
