package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	httpadapter "newworld/internal/adapter/http"
	metricsinmem "newworld/internal/adapter/metrics/inmemory"
	gormrepo "newworld/internal/adapter/repo/gorm"
	"newworld/internal/adapter/repo/memory"
	"newworld/internal/adapter/scenario/yamlfile"
	"newworld/internal/adapter/world/generator"
	"newworld/internal/app/battle"
	"newworld/internal/app/observe"
	"newworld/internal/app/ports"
	"newworld/internal/app/replay"
	"newworld/internal/app/route"
	"newworld/internal/app/setup"
	"newworld/internal/app/status"
	"newworld/internal/platform/config"
	"newworld/internal/platform/logging"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.uber.org/zap"
)

type repos struct {
	games   ports.GameRepository
	battles ports.BattleRepository
	tx      ports.TxManager
	chunks  generator.ChunkStore
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	r := mustBuildRepos(cfg, logger)
	kpiRecorder := metricsinmem.NewRecorder()
	scenarios := yamlfile.Loader{Root: resolveScenarioRoot(cfg.ScenarioRoot)}

	setupUC := setup.UseCase{
		Games:     r.games,
		Generator: generator.New(generator.Config{ChunkStore: r.chunks}),
		Scenarios: scenarios,
		Now:       time.Now,
	}
	if name := strings.TrimSpace(cfg.Scenario); name != "" {
		resp, err := setupUC.Execute(context.Background(), setup.Request{Scenario: name})
		if err != nil {
			logger.Fatal("load startup scenario", zap.String("scenario", name), zap.Error(err))
		}
		logger.Info("startup scenario loaded", zap.String("scenario", name), zap.String("game_id", resp.GameID))
	}

	h := httpadapter.Handler{
		SetupUC: setupUC,
		RouteUC: route.UseCase{Games: r.games, Metrics: kpiRecorder, MaxTurns: cfg.MaxSearchTurns},
		BattleUC: battle.UseCase{
			TxManager: r.tx,
			Games:     r.games,
			Battles:   r.battles,
			Metrics:   kpiRecorder,
			Logger:    logger,
			Now:       time.Now,
		},
		OddsUC:     battle.OddsUseCase{Games: r.games},
		ReplayUC:   replay.UseCase{Battles: r.battles},
		StatusUC:   status.UseCase{Games: r.games},
		ObserveUC:  observe.UseCase{Games: r.games},
		Scenarios:  scenarios,
		KPI:        kpiRecorder,
		Limiter:    httpadapter.NewIPLimiter(cfg.RateLimit, cfg.RateBurst),
		CORSOrigin: cfg.CORSOrigin,
		Logger:     logger,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	logger.Info("newworld server listening", zap.String("addr", cfg.HTTPAddr), zap.Bool("postgres", cfg.DBDSN != ""))
	s.Spin()
}

// mustBuildRepos uses postgres when a DSN is configured and keeps games in
// memory otherwise.
func mustBuildRepos(cfg config.Config, logger *zap.Logger) repos {
	if strings.TrimSpace(cfg.DBDSN) == "" {
		store := memory.NewStore()
		return repos{
			games:   memory.NewGameRepo(store),
			battles: memory.NewBattleRepo(store),
			tx:      memory.NewTxManager(store),
		}
	}
	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		logger.Fatal("open postgres", zap.Error(err))
	}
	applied, err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir)
	if err != nil {
		logger.Fatal("apply migrations", zap.String("dir", cfg.MigrationsDir), zap.Error(err))
	}
	if len(applied) > 0 {
		logger.Info("migrations applied", zap.Strings("versions", applied))
	}
	return repos{
		games:   gormrepo.NewGameRepo(db),
		battles: gormrepo.NewBattleRepo(db),
		tx:      gormrepo.NewTxManager(db),
		chunks:  generator.NewGormChunkStore(db),
	}
}

func resolveScenarioRoot(configured string) string {
	if root := strings.TrimSpace(configured); root != "" {
		return root
	}
	candidates := []string{
		"./scenarios",
		"../../scenarios",
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c
		}
	}
	return filepath.Clean("./scenarios")
}
