package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leetsync",
	Short: "Sync LeetCode progress to Google Sheets with analytics",
	Long: `LeetSync Engine fetches your solved LeetCode problems, computes
topic, streak and difficulty analytics and publishes everything to a
Google Sheets dashboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
