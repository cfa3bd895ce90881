package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const envTemplate = `# LeetSync Engine Environment Variables

# LeetCode Configuration
LEETCODE_USERNAME=your_username_here
LEETCODE_SESSION_ID=your_session_id_here  # Optional
LEETCODE_CSRF_TOKEN=your_csrf_token_here  # Optional

# Google Sheets Configuration
GOOGLE_SHEETS_ID=your_spreadsheet_id_here
GOOGLE_CREDENTIALS_PATH=path/to/service_account.json  # Use this OR GOOGLE_CREDENTIALS_JSON
GOOGLE_CREDENTIALS_JSON=  # Inline service account JSON, alternative to the path above

# Synchronization Configuration
SYNC_INTERVAL=daily  # hourly, daily, weekly
MAX_RETRIES=3
TIMEOUT=30
FETCH_LIMIT=2000
FETCH_WORKERS=5

# Topic Mapping (semicolon-separated raw=Category pairs)
TOPIC_MAPPING=Array=Arrays & Strings;Dynamic Programming=Dynamic Programming

# Backup Configuration
BACKUP_ENABLED=true
BACKUP_PATH=./backups
BACKUP_RETENTION_DAYS=30

# Postgres (optional, persists snapshots and sync history)
DB_HOST=localhost
DB_PORT=5432
DB_USER=
DB_PASSWORD=
DB_NAME=

# Redis (optional, caches problem details and backs the API rate limiter)
REDIS_HOST=localhost
REDIS_PORT=6379
REDIS_PASSWORD=
REDIS_DB=0
CATALOG_CACHE_TTL_MIN=720

# HTTP API
PORT=8080
API_SECRET=change_me

# Copy this file to .env and fill in your actual values
`

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create environment template file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.WriteFile(".env.example", []byte(envTemplate), 0o644); err != nil {
			return fmt.Errorf("failed to write template: %w", err)
		}
		fmt.Println("Environment template created at .env.example")
		fmt.Println("Copy .env.example to .env and fill in your values")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
