package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adapterHTTP "github.com/mbonetti/leetsync-engine/internal/adapters/handler/http"
	"github.com/mbonetti/leetsync-engine/internal/core/services"
)

const tokenIssuer = "leetsync-engine"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if a.cfg.Server.APISecret == "" {
			return fmt.Errorf("API_SECRET is required to run the server")
		}

		tokenService := services.NewTokenService(a.cfg.Server.APISecret, tokenIssuer, 24*time.Hour)

		router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
			SyncHandler:      adapterHTTP.NewSyncHandler(a.sync),
			StatusHandler:    adapterHTTP.NewStatusHandler(a.sync),
			AnalyticsHandler: adapterHTTP.NewAnalyticsHandler(a.snapshots, a.engine),
			TokenService:     tokenService,
			DB:               a.db,
			Redis:            a.rdb,
			StartTime:        startTime,
		})

		srv := &http.Server{
			Addr:         ":" + a.cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Minute,
			IdleTimeout:  120 * time.Second,
		}

		go func() {
			log.Printf("LeetSync Engine running on http://localhost:%s", a.cfg.Server.Port)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Critical server error: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Stop signal received. Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("forced shutdown error: %w", err)
		}

		log.Println("Server stopped gracefully.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
