package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"honnef.co/go/venn/internal/webd"
)

func newServeCmd(a *app) *cobra.Command {
	defaults := webd.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve region catalogs over HTTP",
		Long: `Serve the diagrams of the descriptor file. Catalogs are built on first
request and kept in memory.

  GET /diagrams                          list diagrams
  GET /diagrams/{name}                   region paths of a diagram
  GET /diagrams/{name}/regions/{index}   a single region
  GET /diagrams/{name}/geojson           regions as a GeoJSON FeatureCollection`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadDiagrams()
			if err != nil {
				return err
			}
			server, err := webd.NewWebDaemon(&webd.Config{
				Address:   a.v.GetString("address"),
				CacheSize: a.v.GetInt("cache-size"),
				Catalog:   a.catalogOptions(),
			}, c)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx)
		},
	}
	flags := cmd.Flags()
	flags.String("address", defaults.Address, "HTTP address to listen on")
	flags.Int("cache-size", defaults.CacheSize, "number of catalogs kept in memory")
	return cmd
}
