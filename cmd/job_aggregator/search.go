package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/job-aggregator/internal/observability"
	"github.com/jonathan/job-aggregator/internal/types"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <skill>",
	Short: "Search all providers once and print the results",
	Long: `Run a single aggregation for a skill without starting the server.

By default a summary and the first listings per source are printed. With --json the
combined list is written exactly as GET /api/jobs would return it.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var (
	searchJSON bool
)

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print the raw JSON array")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	req := types.SearchRequest{Skill: args[0]}
	if err := req.Validate(); err != nil {
		return errors.New("skill is required")
	}

	cfg, err := loadConfig(0)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listings, err := newAggregator(cfg).Search(ctx, req.Skill)
	if err != nil {
		return fmt.Errorf("error fetching jobs: %w", err)
	}

	out := cmd.OutOrStdout()
	if searchJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	}

	printer := observability.NewPrinter(out)
	printer.PrintSummary(req.Skill, listings)
	printer.PrintListings(listings)
	return nil
}
