// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command biombti-admin runs offline maintenance on the participation store.
//
//	biombti-admin cleanup-duplicates --dry-run
//	biombti-admin cleanup-duplicates --window 10s
//	biombti-admin clear-results --yes
//
// The database is chosen with --db-type/--db-url, falling back to
// DATABASE_TYPE/DATABASE_URL from the environment or .env.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/bio-mbti/maintenance"
	"github.com/danielhkuo/bio-mbti/store"
)

func main() {
	// Missing .env is fine
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type dbFlags struct {
	dbType string
	dbURL  string
}

func newRootCmd() *cobra.Command {
	flags := &dbFlags{}

	root := &cobra.Command{
		Use:          "biombti-admin",
		Short:        "Maintenance tools for Bio-MBTI participation records",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.dbType, "db-type", os.Getenv("DATABASE_TYPE"), "Database type (postgres or sqlite)")
	root.PersistentFlags().StringVar(&flags.dbURL, "db-url", os.Getenv("DATABASE_URL"), "Database URL")

	root.AddCommand(newCleanupCmd(flags), newClearCmd(flags))
	return root
}

func newCleanupCmd(flags *dbFlags) *cobra.Command {
	var opts maintenance.Options

	cmd := &cobra.Command{
		Use:   "cleanup-duplicates",
		Short: "Delete repeat records of the same client and type code",
		Long: `Groups records by fingerprint and type code. In each group the oldest record
is kept and every record saved within --window of it is deleted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, closeStore, err := openStore(flags)
			if err != nil {
				return err
			}
			defer closeStore()

			report, err := maintenance.CleanupDuplicates(cmd.Context(), s, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "records scanned: %d\n", report.Total)
			fmt.Fprintf(out, "duplicates found: %d\n", report.Duplicates)
			if opts.DryRun {
				for _, id := range report.DuplicateIDs {
					fmt.Fprintf(out, "  would delete %s\n", id)
				}
				fmt.Fprintln(out, "dry run: nothing deleted")
				return nil
			}
			fmt.Fprintf(out, "deleted: %d\n", report.Deleted)
			fmt.Fprintf(out, "remaining: %d\n", report.Remaining)
			return nil
		},
	}
	cmd.Flags().DurationVar(&opts.Window, "window", maintenance.DefaultWindow, "Records this close to the kept one are duplicates")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report duplicates without deleting")
	return cmd
}

func newClearCmd(flags *dbFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-results",
		Short: "Delete every participation record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete every record without --yes")
			}

			s, closeStore, err := openStore(flags)
			if err != nil {
				return err
			}
			defer closeStore()

			n, err := maintenance.ClearAll(cmd.Context(), s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted: %d\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion of all records")
	return cmd
}

func openStore(flags *dbFlags) (store.Store, func() error, error) {
	switch flags.dbType {
	case "":
		return nil, nil, errors.New("no database configured (use --db-type or DATABASE_TYPE)")
	case store.TypeMemory:
		return nil, nil, errors.New("memory storage has nothing to maintain")
	}
	return store.Open(flags.dbType, flags.dbURL)
}
