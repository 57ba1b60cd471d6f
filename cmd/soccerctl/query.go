package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/brazilian-soccer/internal/app"
	"github.com/riskibarqy/brazilian-soccer/internal/config"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/teamname"
	"github.com/riskibarqy/brazilian-soccer/internal/usecase"
)

var (
	statsSeason     int
	standingsSeason int
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <name>",
	Short: "Show how a raw team name normalizes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd.OutOrStdout(), teamname.NewNormalizer(nil).Describe(args[0]))
	},
}

var h2hCmd = &cobra.Command{
	Use:   "h2h <team1> <team2>",
	Short: "Head-to-head record between two teams",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newQueryService(cmd.Context())
		if err != nil {
			return err
		}
		report, err := svc.HeadToHead(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"stats":          report.Stats,
			"recent_matches": len(report.RecentMatches),
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <team>",
	Short: "Aggregate statistics for a team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newQueryService(cmd.Context())
		if err != nil {
			return err
		}
		out, err := svc.TeamStatistics(cmd.Context(), args[0], statsSeason)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings <competition>",
	Short: "Standings table for a competition season",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newQueryService(cmd.Context())
		if err != nil {
			return err
		}
		out, err := svc.Standings(cmd.Context(), args[0], standingsSeason)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsSeason, "season", 0, "restrict to one season (0 for all)")
	standingsCmd.Flags().IntVar(&standingsSeason, "season", 0, "season year (required)")
	_ = standingsCmd.MarkFlagRequired("season")

	rootCmd.AddCommand(normalizeCmd, h2hCmd, statsCmd, standingsCmd)
}

func newQueryService(ctx context.Context) (*usecase.QueryService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	engine, err := app.NewEngine(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewQueryService(engine, usecase.QueryConfig{MaxLimit: cfg.QueryMaxLimit}), nil
}
