package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"shoestore_be/config"
	"shoestore_be/helper/atdb"
	"shoestore_be/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.RequireServe(); err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectPostgres(cfg)
	if err != nil {
		return err
	}
	defer atdb.Close(db)

	mdb, err := config.ConnectMongo(ctx, cfg)
	if err != nil {
		log.Println("[WARN] orphan image ledger disabled:", err)
		mdb = nil
	}
	if mdb != nil {
		defer func() {
			if err := mdb.Client().Disconnect(context.Background()); err != nil {
				log.Println("[WARN] failed to disconnect MongoDB:", err)
			}
		}()
	}

	events := newPublisher(cfg)
	defer events.Close()

	router := routes.InitializeRoutes(buildHandlers(ctx, cfg, db, mdb, events))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Server is running on port %s", cfg.Port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Println("[INFO] shutting down")
	return srv.Shutdown(shutdownCtx)
}
