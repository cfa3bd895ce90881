package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbonetti/leetsync-engine/internal/config"
	"github.com/mbonetti/leetsync-engine/internal/core/services"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.Server.APISecret == "" {
			return fmt.Errorf("API_SECRET is required to mint tokens")
		}

		tokenService := services.NewTokenService(cfg.Server.APISecret, tokenIssuer, tokenTTL)
		token, err := tokenService.GenerateToken(tokenSubject)
		if err != nil {
			return err
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "operator", "Token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
