package main

import (
	"context"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/app/server"

	httpadapter "manorfall/internal/adapter/http"
	metricsinmem "manorfall/internal/adapter/metrics/inmemory"
	gormrepo "manorfall/internal/adapter/repo/gorm"
	"manorfall/internal/adapter/repo/memory"
	"manorfall/internal/app/game"
	"manorfall/internal/app/observe"
	"manorfall/internal/app/ports"
	"manorfall/internal/app/session"
	"manorfall/internal/domain/manor"
)

type config struct {
	Addr          string `env:"MANORFALL_ADDR" envDefault:":8080"`
	DatabaseDSN   string `env:"MANORFALL_DB_DSN"`
	MigrationsDir string `env:"MANORFALL_MIGRATIONS_DIR" envDefault:"./migrations"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	states, dispatches, txManager := buildRepos(cfg)

	content := manor.DefaultContent()
	engine := game.NewEngine(content, game.DefaultBehaviors(), game.DefaultRuntime())
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		SessionUC: session.UseCase{
			TxManager:  txManager,
			States:     states,
			Dispatches: dispatches,
			Metrics:    kpiRecorder,
			Engine:     engine,
		},
		ObserveUC: observe.UseCase{
			States:  states,
			Content: content,
			Now:     engine.Runtime.Now,
		},
		KPI: kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	log.Printf("manorfall server listening on %s", cfg.Addr)
	s.Spin()
}

func buildRepos(cfg config) (ports.GameStateRepository, ports.DispatchRepository, ports.TxManager) {
	if cfg.DatabaseDSN == "" {
		log.Println("MANORFALL_DB_DSN empty, using in-memory store")
		store := memory.NewStore()
		return memory.NewGameStateRepo(store), memory.NewDispatchRepo(store), memory.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewGameStateRepo(db), gormrepo.NewDispatchRepo(db), gormrepo.NewTxManager(db)
}
