// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/termgames/hackerman/internal/store"
)

func newScoresCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show recent game results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(filepath.Join(cfg.DataDir, "scores.db"))
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			ctx := cmd.Context()
			results, err := st.Recent(ctx, limit)
			if err != nil {
				return err
			}
			tally, err := st.Tally(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "no results recorded yet")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PLAYED\tPLAYER\tGAME\tBITS\tOUTCOME\tTIME LEFT")
			for _, r := range results {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%.2fs\n",
					r.PlayedAt.Local().Format(time.DateTime),
					r.Player, r.Game, r.Bits, r.Outcome, r.TimeLeft,
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\ntotal: %d correct, %d incorrect, %d timed out\n",
				tally["correct"], tally["incorrect"], tally["timeout"])
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of results to show")
	return cmd
}
