// Command zipgen generates the FinisherN interfaces and the ZipN and
// ParZipN combinators of the result, program and fiber packages.
//
// Usage:
//
//	zipgen generate [flags]   write the generated files
//	zipgen verify [flags]     fail if the files on disk are stale
//	zipgen listing [flags]    print every combinator as one listing
package main

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		log.WithError(err).Fatal("zipgen failed")
	}
}

func rootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "zipgen",
		Short:         "Generates arity-expanded finishers and zip combinators",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			log.SetHandler(cli.Default)
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	opts.register(root.PersistentFlags())

	root.AddCommand(generateSubcommand(opts))
	root.AddCommand(verifySubcommand(opts))
	root.AddCommand(listingSubcommand(opts))
	return root
}
