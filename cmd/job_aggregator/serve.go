package main

import (
	"log"

	"github.com/jonathan/job-aggregator/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start an HTTP server that exposes GET /api/jobs?skill= and serves the static front end.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(servePort)
	if err != nil {
		return err
	}

	mode := "concurrent"
	if cfg.Sequential {
		mode = "sequential"
	}
	log.Printf("Provider calls: %s, timeout %v; static files from %s", mode, cfg.ProviderTimeout, cfg.StaticDir)

	agg := newAggregator(cfg)
	srv := server.New(*cfg, agg)
	log.Printf("Listening on %s; providers in order: %v", srv.Addr(), agg.Sources())
	return srv.Start()
}
