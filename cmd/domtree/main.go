// Command domtree compiles JSON node descriptions into SVG or HTML markup and
// reconstructs node descriptions from existing markup.
package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

var traceKeys = []string{"domtree.tree", "domtree.dom", "domtree.style"}

func main() {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "domtree",
		Short: "Compile declarative node trees into markup",
		Long: `domtree turns JSON node descriptions into SVG or HTML markup.

A node description is an object with keys tag, id, options, value,
persist and children (or the short forms _id, opt, val, sav, sub).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := tracing.LevelError
			if verbose {
				level = tracing.LevelDebug
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Trace compilation steps")

	rootCmd.AddCommand(
		compileCmd(),
		analyzeCmd(),
		findCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// readInput reads a file, or stdin for "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
