package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"honnef.co/go/venn"
)

func newRegionsCmd(a *app) *cobra.Command {
	var format, output string
	var allowEmpty bool
	cmd := &cobra.Command{
		Use:   "regions <diagram>",
		Short: "Compute the regions of a diagram",
		Long: `Compute the regions of a diagram and write them in one of these formats:

  json     {"name", "n", "regions"}, where regions[i] is the SVG path of
           region i and regions[0] is empty
  geojson  a FeatureCollection with one polygon feature per region
  svg      an SVG document with one path per region`,
		Example: `  venn regions --diagrams diagrams.json victoria
  venn regions --format svg --precision 3 -o victoria.svg victoria`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json", "geojson", "svg":
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			d, err := a.lookupDiagram(args[0])
			if err != nil {
				return err
			}
			opts := a.catalogOptions()
			opts.AllowEmpty = allowEmpty
			cat, err := venn.BuildCatalog(d, &opts)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return writeCatalog(cmd.OutOrStdout(), cat, format)
			}
			p, err := homedir.Expand(output)
			if err != nil {
				return err
			}
			f, err := os.Create(p)
			if err != nil {
				return err
			}
			if err := writeCatalog(f, cat, format); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&format, "format", "json", "output format (json, geojson, svg)")
	flags.StringVarP(&output, "output", "o", "", "file to write to (default stdout)")
	flags.BoolVar(&allowEmpty, "allow-empty", false, "mark empty regions instead of failing")
	return cmd
}

type catalogJSON struct {
	Name    string   `json:"name"`
	N       int      `json:"n"`
	Regions []string `json:"regions"`
}

func writeCatalog(w io.Writer, cat *venn.Catalog, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", " ")
		return enc.Encode(catalogJSON{Name: cat.Name, N: cat.N, Regions: cat.Paths()})
	case "geojson":
		return json.NewEncoder(w).Encode(cat.FeatureCollection())
	case "svg":
		return writeSVG(w, cat)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeSVG(w io.Writer, cat *venn.Catalog) error {
	var b orb.Bound
	first := true
	for _, e := range cat.Entries {
		if e.Empty {
			continue
		}
		if first {
			b = e.Polygon.Bound()
			first = false
		} else {
			b = b.Union(e.Polygon.Bound())
		}
	}
	b = b.Pad(0.02 * max(b.Right()-b.Left(), b.Top()-b.Bottom()))
	// SVG's y axis points down; flip so the diagram isn't mirrored.
	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`+"\n"+`<g transform="scale(1,-1)" fill-rule="evenodd" stroke="black" stroke-width="%g">`+"\n",
		b.Left(), -b.Top(), b.Right()-b.Left(), b.Top()-b.Bottom(), 0.002*(b.Right()-b.Left())); err != nil {
		return err
	}
	for _, e := range cat.Entries {
		if e.Empty {
			continue
		}
		if _, err := fmt.Fprintf(w, `<path data-index="%d" data-membership="%s" fill-opacity="%.3f" d="%s"/>`+"\n",
			e.Index, e.Membership, float64(e.Popcount)/float64(cat.N), e.Path); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</g>\n</svg>\n")
	return err
}
