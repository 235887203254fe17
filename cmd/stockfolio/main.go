package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockfolio/auth"
	"stockfolio/config"
	"stockfolio/httpapi"
	"stockfolio/repository"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func main() {
	cfg := config.Load()
	cfg.MustValidate()

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := repository.CreateSchema(ctx, db); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}

	repo := repository.NewManager(db)
	repo.MustValidate()

	provider := auth.NewUserProvider(repo.Users())
	auther := auth.NewAuthenticator(provider, repo.Users(), cfg)

	app := httpapi.NewRouter(httpapi.Deps{
		Auther:   auther,
		Provider: provider,
		Repo:     repo,
	})

	go func() {
		if err := app.Listen(cfg.Address); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
