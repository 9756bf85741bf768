package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/protomem/timeclock/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const _recomputeParallelism = 4

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.db.Migrate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newRecomputeCmd(c *cli) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "recompute [person-id...]",
		Short: "Rebuild total time from the session log",
		Long: `Rebuild total time from the session log.

Examples:
  timeclockctl recompute 3 7   # Recompute two persons
  timeclockctl recompute --all # Recompute everyone`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) > 0) {
				return fmt.Errorf("pass person ids or --all, not both or neither")
			}

			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			if all {
				summaries, err := c.tracker.ListSummaries(ctx)
				if err != nil {
					return err
				}
				for _, s := range summaries {
					ids = append(ids, s.PersonID)
				}
			}

			var (
				mu      sync.Mutex
				results = make([]model.TotalTime, 0, len(ids))
			)

			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(_recomputeParallelism)
			for _, id := range ids {
				g.Go(func() error {
					total, err := c.tracker.Recompute(gctx, id)
					if err != nil {
						return fmt.Errorf("person %d: %w", id, err)
					}
					mu.Lock()
					results = append(results, total)
					mu.Unlock()
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "recomputed %d person(s)\n", len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "recompute every person")

	return cmd
}

func newSummaryCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "summary [person-id]",
		Short: "Show total time for one person or everyone",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				summaries, err := c.tracker.ListSummaries(cmd.Context())
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), output, summaries)
			}

			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			total, err := c.tracker.GetSummary(cmd.Context(), ids[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, total)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}

func newSessionsCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sessions <person-id>",
		Short: "List a person's sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			sessions, err := c.tracker.ListPersonSessions(cmd.Context(), ids[0])
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), output, sessionRows(sessions))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")

	return cmd
}

// sessionRow is the printable form of a session.
type sessionRow struct {
	ID       model.ID `json:"id" yaml:"id"`
	Start    string   `json:"dateTimeStart" yaml:"dateTimeStart"`
	Stop     string   `json:"dateTimeStop,omitempty" yaml:"dateTimeStop,omitempty"`
	Duration int64    `json:"durationSeconds" yaml:"durationSeconds"`
}

func sessionRows(sessions []model.Session) []sessionRow {
	rows := make([]sessionRow, 0, len(sessions))
	for _, s := range sessions {
		row := sessionRow{
			ID:       s.ID,
			Start:    s.Start.Format(model.TimeLayout),
			Duration: s.Duration(),
		}
		if s.Stop != nil {
			row.Stop = s.Stop.Format(model.TimeLayout)
		}
		rows = append(rows, row)
	}
	return rows
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func parseIDs(args []string) ([]model.ID, error) {
	ids := make([]model.ID, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid person id %q", arg)
		}
		ids = append(ids, model.ID(id))
	}
	return ids, nil
}
