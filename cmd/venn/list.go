package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the diagrams of the descriptor file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadDiagrams()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tCURVES\tREGIONS\tENCODING")
			for _, d := range c.Descriptors {
				enc := "-"
				if len(d.Code) > 0 {
					enc = "valid"
					if err := d.Code.Validate(d.N); err != nil {
						enc = "invalid"
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", d.Key, d.Name, d.N, humanize.Comma(int64(1)<<d.N-1), enc)
			}
			return tw.Flush()
		},
	}
}
