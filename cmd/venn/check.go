package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"honnef.co/go/venn"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [diagram...]",
		Short: "Check that every region of a diagram is non-empty",
		Long: `Check decomposes each named diagram, or every diagram of the descriptor file
if none are named, and reports regions that came out empty along with a
summary of region areas. It fails if any diagram has an empty region.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadDiagrams()
			if err != nil {
				return err
			}
			keys := args
			if len(keys) == 0 {
				keys = c.Keys()
			}
			opts := a.catalogOptions()
			opts.AllowEmpty = true

			out := cmd.OutOrStdout()
			failed := 0
			for _, key := range keys {
				desc, ok := c.Lookup(key)
				if !ok {
					return fmt.Errorf("no diagram %q", key)
				}
				d, err := desc.Diagram()
				if err != nil {
					return err
				}
				start := time.Now()
				cat, err := venn.BuildCatalog(d, &opts)
				if err != nil {
					return err
				}
				elapsed := time.Since(start)

				empty := cat.EmptyRegions()
				status := "ok"
				if len(empty) > 0 {
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(out, "%s\t%s: %s regions, %d empty (%s)\n",
					status, desc.Key, humanize.Comma(int64(cat.Len())), len(empty), elapsed.Round(time.Millisecond))
				for _, index := range empty {
					e, _ := cat.Entry(index)
					fmt.Fprintf(out, "\tregion %d %s is empty\n", index, e.Membership)
				}
				if st, err := cat.AreaStats(); err == nil {
					fmt.Fprintf(out, "\tarea total %s, min %s, max %s, mean %s, stddev %s\n",
						humanize.FtoaWithDigits(st.Sum, 4),
						humanize.FtoaWithDigits(st.Min, 4),
						humanize.FtoaWithDigits(st.Max, 4),
						humanize.FtoaWithDigits(st.Mean, 4),
						humanize.FtoaWithDigits(st.StdDev, 4))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d diagrams have empty regions", failed, len(keys))
			}
			return nil
		},
	}
}
