package main

import (
	"context"
	"fmt"
	"midcar/internal/config"
	"midcar/internal/insurance"
	"midcar/pkg/logger"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// policiesCommand groups the insurance helpers run by the office staff.
func policiesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policies",
		Short: "Insurance policy tools",
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Imports policies from an insurer spreadsheet (.xlsx or .csv)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			insurer, _ := cmd.Flags().GetString("insurer")

			f, err := os.Open(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not open spreadsheet", zap.String("path", args[0]), zap.Error(err))
			}
			defer f.Close()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			report, err := insurance.New(strg, time.Now).Import(ctx, filepath.Base(args[0]), f, insurer)
			if err != nil {
				logger.Fatal(ctx, "could not import policies", zap.Error(err))
			}

			logger.Info(ctx, "policies imported",
				zap.Int("total", report.Total),
				zap.Int("imported", report.Imported),
				zap.Int("updated", report.Updated),
				zap.Int("skipped", len(report.Skipped)),
				zap.Int("matchedVehicles", report.MatchedVehicles),
			)
			if len(report.Skipped) == 0 {
				return
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "LINE\tREASON")
			for _, s := range report.Skipped {
				_, _ = fmt.Fprintf(w, "%d\t%s\n", s.Line, s.Reason)
			}
			_ = w.Flush()
		},
	}
	importCmd.Flags().String("insurer", "", "Insurer of the rows without one")

	expiringCmd := &cobra.Command{
		Use:   "expiring",
		Short: "Lists the policies ending soon",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			days, _ := cmd.Flags().GetInt("days")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			policies, err := insurance.New(strg, time.Now).ExpiringPolicies(ctx, days)
			if err != nil {
				logger.Fatal(ctx, "could not list expiring policies", zap.Error(err))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "END\tINSURER\tPOLICY\tHOLDER\tPLATE")
			for _, p := range policies {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.EndDate.Format(time.DateOnly), p.Insurer, p.PolicyNumber, p.HolderName, p.LicensePlate)
			}
			_ = w.Flush()
		},
	}
	expiringCmd.Flags().Int("days", 30, "Window in days starting today")

	cmd.AddCommand(importCmd, expiringCmd)

	return cmd
}
