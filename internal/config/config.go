package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mbonetti/leetsync-engine/internal/core/analytics"
)

type LeetCodeConfig struct {
	Username  string
	SessionID string
	CSRFToken string
}

type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsPath string
	CredentialsJSON string
}

type SyncConfig struct {
	Interval   string
	MaxRetries int
	TimeoutSec int
	FetchLimit int
	Workers    int
}

type BackupConfig struct {
	Enabled       bool
	Path          string
	RetentionDays int
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTLMin   int
}

type ServerConfig struct {
	Port      string
	APISecret string
}

type Config struct {
	LeetCode LeetCodeConfig
	Sheets   SheetsConfig
	Sync     SyncConfig
	Backup   BackupConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Server   ServerConfig

	TopicRules []analytics.TopicRule
}

var validIntervals = map[string]bool{"hourly": true, "daily": true, "weekly": true}

// Load reads .env (when present) and the process environment, applies
// defaults and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := &Config{
		LeetCode: LeetCodeConfig{
			Username:  os.Getenv("LEETCODE_USERNAME"),
			SessionID: os.Getenv("LEETCODE_SESSION_ID"),
			CSRFToken: os.Getenv("LEETCODE_CSRF_TOKEN"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   os.Getenv("GOOGLE_SHEETS_ID"),
			CredentialsPath: os.Getenv("GOOGLE_CREDENTIALS_PATH"),
			CredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		},
		Sync: SyncConfig{
			Interval:   getEnv("SYNC_INTERVAL", "daily"),
			MaxRetries: getEnvInt("MAX_RETRIES", 3),
			TimeoutSec: getEnvInt("TIMEOUT", 30),
			FetchLimit: getEnvInt("FETCH_LIMIT", 2000),
			Workers:    getEnvInt("FETCH_WORKERS", 5),
		},
		Backup: BackupConfig{
			Enabled:       getEnvBool("BACKUP_ENABLED", true),
			Path:          getEnv("BACKUP_PATH", "./backups"),
			RetentionDays: getEnvInt("BACKUP_RETENTION_DAYS", 30),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			TTLMin:   getEnvInt("CATALOG_CACHE_TTL_MIN", 720),
		},
		Server: ServerConfig{
			Port:      getEnv("PORT", "8080"),
			APISecret: os.Getenv("API_SECRET"),
		},
		TopicRules: ParseTopicRules(os.Getenv("TOPIC_MAPPING")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var problems []string

	if c.LeetCode.Username == "" {
		problems = append(problems, "LEETCODE_USERNAME is required")
	}
	if c.Sheets.SpreadsheetID == "" {
		problems = append(problems, "GOOGLE_SHEETS_ID is required")
	}
	if c.Sheets.CredentialsPath == "" && c.Sheets.CredentialsJSON == "" {
		problems = append(problems, "either GOOGLE_CREDENTIALS_PATH or GOOGLE_CREDENTIALS_JSON is required")
	}
	if !validIntervals[c.Sync.Interval] {
		problems = append(problems, "SYNC_INTERVAL must be one of: hourly, daily, weekly")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// DSN builds the Postgres connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// ParseTopicRules parses the TOPIC_MAPPING value, a semicolon-separated list
// of "raw=Category" pairs. Declaration order is preserved: it is the
// tie-break order for substring matches.
func ParseTopicRules(raw string) []analytics.TopicRule {
	var rules []analytics.TopicRule
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		match, category, ok := strings.Cut(pair, "=")
		match, category = strings.TrimSpace(match), strings.TrimSpace(category)
		if !ok || match == "" || category == "" {
			log.Printf("config: ignoring malformed topic mapping entry %q", pair)
			continue
		}
		rules = append(rules, analytics.TopicRule{Match: match, Category: category})
	}
	return rules
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.ToLower(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v == "true" || v == "1" || v == "yes"
}
