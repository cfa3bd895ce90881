package main

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/mbonetti/leetsync-engine/internal/adapters/cache"
	"github.com/mbonetti/leetsync-engine/internal/adapters/leetcode"
	"github.com/mbonetti/leetsync-engine/internal/adapters/repository"
	"github.com/mbonetti/leetsync-engine/internal/adapters/sheets"
	"github.com/mbonetti/leetsync-engine/internal/config"
	"github.com/mbonetti/leetsync-engine/internal/core/analytics"
	"github.com/mbonetti/leetsync-engine/internal/core/domain"
	"github.com/mbonetti/leetsync-engine/internal/core/services"
)

// app wires the adapters behind the sync service. Postgres and Redis are
// optional at the CLI: when either is unreachable the engine falls back to
// in-memory run history and uncached detail fetches.
type app struct {
	cfg       *config.Config
	db        *sqlx.DB
	rdb       *redis.Client
	source    domain.ProblemSource
	writer    domain.SheetWriter
	snapshots domain.SnapshotRepository
	runs      domain.SyncRunRepository
	engine    *analytics.Engine
	sync      *services.SyncService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	opts := []leetcode.Option{
		leetcode.WithMaxRetries(cfg.Sync.MaxRetries),
		leetcode.WithTimeout(time.Duration(cfg.Sync.TimeoutSec) * time.Second),
	}
	if cfg.LeetCode.SessionID != "" && cfg.LeetCode.CSRFToken != "" {
		opts = append(opts, leetcode.WithSession(cfg.LeetCode.SessionID, cfg.LeetCode.CSRFToken))
	}
	var source domain.ProblemSource = leetcode.NewClient(cfg.LeetCode.Username, opts...)

	writer, err := sheets.NewClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsPath, cfg.Sheets.CredentialsJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	a := &app{cfg: cfg, writer: writer}

	rdb, err := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("Redis unavailable, problem details will not be cached: %v", err)
	} else {
		a.rdb = rdb
		source = leetcode.NewCachedSource(source, rdb, time.Duration(cfg.Redis.TTLMin)*time.Minute)
	}
	a.source = source

	if cfg.Postgres.User != "" && cfg.Postgres.Name != "" {
		db, err := sqlx.Connect("pgx", cfg.Postgres.DSN())
		if err != nil {
			log.Printf("Postgres unavailable, sync history will not persist: %v", err)
		} else {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(5 * time.Minute)
			a.db = db
		}
	}
	if a.db != nil {
		a.snapshots = repository.NewPostgresSnapshotRepository(a.db)
		a.runs = repository.NewPostgresSyncRunRepository(a.db)
	} else {
		a.snapshots = repository.NewInMemorySnapshotRepository()
		a.runs = repository.NewInMemorySyncRunRepository()
	}

	a.engine = analytics.NewEngine(cfg.TopicRules)
	a.sync = services.NewSyncService(a.source, a.writer, a.snapshots, a.runs, a.engine, cfg.Sync.FetchLimit, cfg.Sync.Workers)

	return a, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.rdb != nil {
		a.rdb.Close()
	}
}
