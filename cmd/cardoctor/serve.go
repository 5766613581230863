package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cardoctor/internal/config"
	"cardoctor/internal/logger"
	"cardoctor/internal/metrics"
	"cardoctor/internal/mongo"
	"cardoctor/internal/mysql"
	"cardoctor/internal/routing"
	"cardoctor/pkg/booking"
	"cardoctor/pkg/carservice"
	"cardoctor/pkg/session"
	"cardoctor/pkg/user"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load() // load env var from .env
	if err != nil {
		return err
	}

	log := logger.Load(cfg.LogLevel)

	client, mongoDB, err := mongo.LoadDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("mongo disconnect", "error", err)
		}
	}()

	var credentials user.Verifier
	if cfg.CredentialsEnabled() {
		db, err := mysql.LoadDB(ctx, cfg.MySQLDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		credentials = user.NewService(user.NewMySQLRepo(db))
		log.Info("login credentials are checked against MySQL")
	}

	manager, err := session.NewManager(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("session manager: %w", err)
	}

	router := routing.NewRouter(routing.Deps{
		Issuer:         manager,
		Verifier:       manager,
		Credentials:    credentials,
		Services:       carservice.NewMongoRepo(mongoDB),
		Bookings:       booking.NewService(booking.NewMongoRepo(mongoDB)),
		Metrics:        metrics.New(),
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	return routing.StartServer(ctx, cfg.Addr(), router, log)
}
