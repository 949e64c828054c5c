package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/grafana/zipgen/internal/codejen"
	"github.com/grafana/zipgen/internal/config"
	"github.com/grafana/zipgen/internal/driver"
	"github.com/grafana/zipgen/internal/family"
)

// errStale is returned by verify when the files on disk are out of date.
var errStale = errors.New("generated code is out of date, run zipgen generate")

func generateSubcommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Writes the finisher declarations and the combinators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out, err := driver.Run(cfg, family.Defaults())
			if err != nil {
				return err
			}
			if err := out.FS.Write(cmd.Context(), cfg.OutDir); err != nil {
				return err
			}
			log.Infof("wrote %d files below %s", out.FS.Len(), cfg.OutDir)
			if cfg.Mode() == config.Listing {
				return writeListing(cmd, opts.listingOut, out.Listing)
			}
			return nil
		},
	}
}

func verifySubcommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Checks that the generated files on disk are current",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out, err := driver.Run(cfg, family.Defaults())
			if err != nil {
				return err
			}
			err = out.FS.Verify(cmd.Context(), cfg.OutDir)
			var merr *multierror.Error
			if !errors.As(err, &merr) {
				return err
			}
			for _, stale := range merr.Errors {
				var differ *codejen.ContentsDifferErr
				var missing *codejen.ShouldExistErr
				switch {
				case errors.As(stale, &differ):
					fmt.Fprint(cmd.OutOrStdout(), differ.Diff)
				case errors.As(stale, &missing):
					log.Warnf("%s is missing", missing.Path)
				default:
					return stale
				}
			}
			return errStale
		},
	}
}

func listingSubcommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "listing",
		Short: "Prints every combinator as one listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			cfg.EmitMode = string(config.Listing)
			out, err := driver.Run(cfg, family.Defaults())
			if err != nil {
				return err
			}
			return writeListing(cmd, opts.listingOut, out.Listing)
		},
	}
}

func writeListing(cmd *cobra.Command, path string, listing []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(listing)
		return err
	}
	log.Debugf("writing listing to %s", path)
	return os.WriteFile(path, listing, 0o644)
}
