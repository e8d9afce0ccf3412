package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/supply-chain-dashboard/internal/alerts"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/config"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/db"
	httpapi "github.com/rogerio-castellano/supply-chain-dashboard/internal/http"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/supply-chain-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/kpi"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/logger"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/supply-chain-dashboard/internal/repo"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	handlers.SetLogger(log)

	ctx := context.Background()

	manager := db.NewManager(db.Config{
		Host:           cfg.DB.Host,
		Port:           cfg.DB.Port,
		Name:           cfg.DB.Name,
		User:           cfg.DB.User,
		Password:       cfg.DB.Password,
		ConnectTimeout: cfg.DB.ConnectTimeout,
	}, log)
	if err := manager.Connect(ctx); err != nil {
		// The executor reconnects on demand, so a cold database at boot is
		// not fatal.
		log.Warn("initial database connect failed", "error", err)
	}
	defer manager.Close(ctx)

	exec := db.NewExecutor(manager, log)

	handlers.SetWarehouseRepo(repo.NewPostgresWarehouseRepository(exec))
	handlers.SetSKURepo(repo.NewPostgresSKURepository(exec))
	handlers.SetInventoryRepo(repo.NewPostgresInventoryRepository(exec))
	handlers.SetOrderRepo(repo.NewPostgresOrderRepository(exec))
	handlers.SetCustomerRepo(repo.NewPostgresCustomerRepository(exec))
	handlers.SetSupplierRepo(repo.NewPostgresSupplierRepository(exec))

	handlers.SetKPIProvider(kpi.NewService(exec, log))
	handlers.SetAlertSource(alerts.NewGenerator(exec, log))

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			defer rdb.Close()
			handlers.SetSnapshotCache(redissvc.NewRedisService(rdb), cfg.Redis.TTL)
		}
	}

	go rl.StartVisitorCleanupLoop()

	r := httpapi.NewRouter(cfg.Metrics.Enabled)
	log.Info("server listening", "addr", cfg.HTTP.Addr)
	if err := http.ListenAndServe(cfg.HTTP.Addr, r); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
