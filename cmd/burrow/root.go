package main

import (
	"github.com/spf13/cobra"
)

type options struct {
	file         string
	experimental bool
	unfold       bool
	layout       string
	profile      string
	metrics      string
	dump         bool
	verbose      bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "burrow [file]",
		Short: "Find the least energy required to organize the amphipods",
		Long: `burrow reads a burrow diagram and prints the minimum total energy
needed to move every amphipod into its own room.

With --unfold the two extra rows of part two are inserted and the deeper
burrow is solved as well.

Use - as the file to read the diagram from stdin.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.file = args[0]
			}
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "input.txt", "Input file, - for stdin")
	f.BoolVarP(&opts.experimental, "experimental", "e", false, "Order the search with a lower bound of the remaining energy")
	f.BoolVar(&opts.unfold, "unfold", false, "Also solve the unfolded diagram (part two)")
	f.StringVar(&opts.layout, "layout", "", "YAML file describing the burrow geometry")
	f.StringVar(&opts.profile, "profile", "", "Write a wall-clock profile to this file")
	f.StringVar(&opts.metrics, "metrics", "", "Write Prometheus metrics to this textfile")
	f.BoolVar(&opts.dump, "dump", false, "Print the parsed starting configuration")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}
