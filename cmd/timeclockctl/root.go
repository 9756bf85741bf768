package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/protomem/timeclock/internal/database"
	"github.com/protomem/timeclock/internal/env"
	"github.com/protomem/timeclock/internal/tracker"
	"github.com/protomem/timeclock/internal/version"
	"github.com/spf13/cobra"
)

// cli holds what every subcommand shares once the root has set it up.
type cli struct {
	cfgFile string
	verbose bool

	logger  *slog.Logger
	db      *database.DB
	tracker *tracker.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "timeclockctl",
		Short: "Administer the timeclock store",
		Long: `timeclockctl runs maintenance tasks against the timeclock database:
apply migrations, rebuild total time from the session log and inspect
summaries and sessions.`,
		Version:       version.Get(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return c.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.cfgFile, "cfg", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log store queries")

	rootCmd.AddCommand(
		newMigrateCmd(c),
		newRecomputeCmd(c),
		newSummaryCmd(c),
		newSessionsCmd(c),
	)

	return rootCmd
}

func (c *cli) open() error {
	if c.cfgFile != "" {
		if err := env.Load(c.cfgFile); err != nil {
			return err
		}
	}

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	dialect, err := database.ParseDialect(env.GetString("DB_DRIVER", "postgres"))
	if err != nil {
		return err
	}

	c.db, err = database.New(c.logger, database.Options{
		Dialect: dialect,
		DSN:     env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres"),
		Timeout: env.GetDuration("STORE_TIMEOUT", 3*time.Second),
	})
	if err != nil {
		return err
	}

	c.tracker = tracker.New(c.logger, database.NewTimeRecordStore(c.logger, c.db))

	return nil
}

func (c *cli) close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
