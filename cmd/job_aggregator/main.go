// Package main provides the entry point for the job aggregator HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_aggregator",
	Short: "Job listing aggregator",
	Long: `Job Aggregator searches Remotive, Adzuna, Arbeitnow and Findwork for a skill
and returns one combined list. Run without a subcommand to start the HTTP server.`,
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
