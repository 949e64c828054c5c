package main

import (
	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/grafana/zipgen/internal/config"
)

// options holds the flags shared by every subcommand.
type options struct {
	configPath string
	minArity   int
	maxArity   int
	targets    []string
	shapes     []string
	emitMode   string
	outDir     string
	listingOut string
	verbose    bool
}

func (o *options) register(flags *pflag.FlagSet) {
	def := config.Default()

	flags.StringVarP(&o.configPath, "config", "c", "", "hujson file to read the configuration from")
	flags.IntVar(&o.minArity, "min-arity", def.MinArity, "smallest arity to generate")
	flags.IntVar(&o.maxArity, "max-arity", def.MaxArity, "largest arity to generate")
	flags.StringSliceVar(&o.targets, "target", def.Targets, "combinator target to generate (can be repeated)")
	flags.StringSliceVar(&o.shapes, "shape", def.Shapes, "combinator shape to generate (can be repeated)")
	flags.StringVar(&o.emitMode, "emit-mode", def.EmitMode, `where combinators go: "files" or "listing"`)
	flags.StringVarP(&o.outDir, "out-dir", "o", def.OutDir, "directory generated files are written below")
	flags.StringVar(&o.listingOut, "listing-out", "", "file the listing is written to instead of stdout")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose log output")
}

// load returns the configuration: the defaults, overridden by the config
// file if any, overridden by the flags set on the command line.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		log.Debugf("reading config file from %s", o.configPath)
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("min-arity") {
		cfg.MinArity = o.minArity
	}
	if flags.Changed("max-arity") {
		cfg.MaxArity = o.maxArity
	}
	if flags.Changed("target") {
		cfg.Targets = o.targets
	}
	if flags.Changed("shape") {
		cfg.Shapes = o.shapes
	}
	if flags.Changed("emit-mode") {
		cfg.EmitMode = o.emitMode
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = o.outDir
	}
	return cfg, nil
}
