package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"honnef.co/go/venn"
	"honnef.co/go/venn/descriptor"
)

// app holds the configuration shared by all commands.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "venn",
		Short: "Decompose symmetric Venn diagrams into regions",
		Long: `venn rotates a diagram's base curve n times about the origin and computes
the 2^n-1 regions of the resulting Venn diagram as SVG paths.

Diagrams are read from a descriptor file (--diagrams). Every flag can also be
set in the config file or through a VENN_ environment variable, for example
VENN_TOLERANCE=0.01.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(cmd); err != nil {
				return err
			}
			return a.setDefaultSlog()
		},
	}

	defaults := venn.DefaultCatalogOptions
	pFlags := rootCmd.PersistentFlags()
	pFlags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.venn.yaml)")
	pFlags.String("log-level", "warn", "log level (debug, info, warn, error)")
	pFlags.String("diagrams", "diagrams.json", "descriptor file to read diagrams from")
	pFlags.Float64("tolerance", defaults.Tolerance, "maximum distance between a curve and its polygon")
	pFlags.Float64("epsilon", defaults.Epsilon, "distance below which points are considered identical")
	pFlags.Int("parallel", 0, "regions computed concurrently (0 uses all CPUs)")
	pFlags.Int("precision", defaults.Precision, "maximum decimals per coordinate (0 for full precision)")
	pFlags.Float64("simplify", 0, "Douglas-Peucker threshold applied to region polygons")

	rootCmd.AddCommand(
		newListCmd(a),
		newRegionsCmd(a),
		newCheckCmd(a),
		newServeCmd(a),
	)
	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		p, err := homedir.Expand(a.cfgFile)
		if err != nil {
			return err
		}
		a.v.SetConfigFile(p)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(".venn")
	}
	a.v.SetEnvPrefix("venn")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := a.v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	return bindErr
}

// setDefaultSlog installs a text handler on stderr at the configured level
// and hands it to the venn package.
func (a *app) setDefaultSlog() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	venn.SetLogger(logger)
	return nil
}

func (a *app) catalogOptions() venn.CatalogOptions {
	return venn.CatalogOptions{
		Tolerance: a.v.GetFloat64("tolerance"),
		Epsilon:   a.v.GetFloat64("epsilon"),
		Parallel:  a.parallel(),
		Simplify:  a.v.GetFloat64("simplify"),
		Precision: a.v.GetInt("precision"),
	}
}

func (a *app) parallel() int {
	if n := a.v.GetInt("parallel"); n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

func (a *app) loadDiagrams() (*descriptor.Collection, error) {
	return descriptor.Load(a.v.GetString("diagrams"))
}

// lookupDiagram resolves a diagram by key or name.
func (a *app) lookupDiagram(name string) (venn.Diagram, error) {
	c, err := a.loadDiagrams()
	if err != nil {
		return venn.Diagram{}, err
	}
	desc, ok := c.Lookup(name)
	if !ok {
		return venn.Diagram{}, fmt.Errorf("no diagram %q in %s (have %s)", name, a.v.GetString("diagrams"), strings.Join(c.Keys(), ", "))
	}
	return desc.Diagram()
}
