package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "petclinic/internal/adapters/storage/postgres"
	"petclinic/internal/adapters/storage/redisstore"
	"petclinic/internal/config"
	"petclinic/internal/platform/logger"
	"petclinic/internal/router"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// @title PetClinic API
// @version 1.0
// @description API JSON de la clínica veterinaria (veterinarios y health check).
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "petclinic: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sqlx.DB
	if cfg.DB.DSN != "" {
		db, err = pg.Open(cfg.DB.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.DB.Migrate {
			if err := pg.Migrate(db); err != nil {
				return err
			}
		}
		log.Info("using postgres", nil)
	} else {
		log.Info("DB_DSN not set, using in-memory store with sample data", nil)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			// Redis es opcional: sin él, cache y flash quedan en memoria.
			log.Warn("redis unavailable", map[string]any{"err": err})
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	h, err := router.NewRouter(router.Options{
		DB:       db,
		Redis:    rdb,
		Log:      log,
		PageSize: cfg.Web.PageSize,
		CacheTTL: cfg.Redis.CacheTTL,
		FlashTTL: cfg.Web.FlashTTL,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      h,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.App.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
