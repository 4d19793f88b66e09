// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/voicedesk/dashboard-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd, func(ctx context.Context, provider *goose.Provider) error {
			results, err := provider.Up(ctx)
			if err != nil {
				return err
			}
			for _, r := range results {
				cmd.Printf("applied %s\n", r.Source.Path)
			}
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [version]",
	Short: "Roll back the last migration, or down to a version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd, func(ctx context.Context, provider *goose.Provider) error {
			if len(args) == 0 {
				result, err := provider.Down(ctx)
				if err != nil {
					return err
				}
				cmd.Printf("rolled back %s\n", result.Source.Path)
				return nil
			}

			version, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || version < 0 {
				return fmt.Errorf("invalid version number: %q", args[0])
			}

			results, err := provider.DownTo(ctx, version)
			if err != nil {
				return err
			}
			for _, r := range results {
				cmd.Printf("rolled back %s\n", r.Source.Path)
			}
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of every migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd, func(ctx context.Context, provider *goose.Provider) error {
			statuses, err := provider.Status(ctx)
			if err != nil {
				return err
			}
			for _, s := range statuses {
				appliedAt := "pending"
				if s.State == goose.StateApplied {
					appliedAt = s.AppliedAt.Format(time.RFC3339)
				}
				cmd.Printf("%-24s %s\n", appliedAt, s.Source.Path)
			}
			return nil
		})
	},
}

// migrateCheckCmd exits non-zero when migrations are pending, so it can
// gate a deploy.
var migrateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail if migrations are pending",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProvider(cmd, func(ctx context.Context, provider *goose.Provider) error {
			hasPending, err := provider.HasPending(ctx)
			if err != nil {
				return fmt.Errorf("failed to check pending migrations: %w", err)
			}
			if hasPending {
				return fmt.Errorf("migrations are pending")
			}

			version, err := provider.GetDBVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to get current version: %w", err)
			}
			cmd.Printf("database is up to date (version %d)\n", version)
			return nil
		})
	},
}

func init() {
	migrateCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN connection string")
	_ = migrateCmd.MarkPersistentFlagRequired("dsn")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateCheckCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withProvider(cmd *cobra.Command, run func(ctx context.Context, provider *goose.Provider) error) error {
	dsn, _ := cmd.Flags().GetString("dsn")

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("invalid dsn: %w", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	if err := db.PingContext(cmd.Context()); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	return run(cmd.Context(), provider)
}
