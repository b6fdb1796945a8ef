package main

import (
	"context"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/akaver/beautycase/internal/api"
	"github.com/akaver/beautycase/internal/auth"
	"github.com/akaver/beautycase/internal/config"
	"github.com/akaver/beautycase/internal/db"
	"github.com/akaver/beautycase/internal/metrics"
	"github.com/akaver/beautycase/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			snapshots := db.NewSnapshotStore(database, db.StorageKey)
			beautyStore := store.New(snapshots)

			// Keep the entity gauges current on every state change.
			beautyStore.Subscribe(metrics.SetEntityCounts)
			beautyStore.Load(context.Background())

			router := api.NewRouter(api.Deps{
				Bearer:     auth.NewBearerMiddleware(cfg.APIToken),
				Store:      beautyStore,
				AppState:   cfg.App.State,
				SupportURL: cfg.App.SupportURL,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
