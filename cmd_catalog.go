package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"educonnect/fixtures"
	"educonnect/storage"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the PostgreSQL housing catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Replace the PostgreSQL catalog with the bundled listings",
		Long: `Creates the housing_listings table if needed and replaces its rows with
the listings bundled into the binary. Afterwards LISTING_SOURCE=postgres
serves the same catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rows, err := fixtures.Housing()
			if err != nil {
				return err
			}

			pc, err := storage.NewPostgresCatalog(ctx, a.cfg.DSN(), a.retry())
			if err != nil {
				a.logger.Error("[catalog] Failed to connect to PostgreSQL: %v", err)
				return err
			}
			defer pc.Close()

			if err := pc.Seed(ctx, rows); err != nil {
				a.logger.Error("[catalog] Seed failed: %v", err)
				return err
			}
			a.logger.Info("[catalog] Seeded %d listings", len(rows))
			fmt.Fprintf(out(cmd), "Seeded %d listings into housing_listings.\n", len(rows))
			return nil
		},
	})
	return cmd
}
