package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/domtree/tree"
	"github.com/spf13/cobra"
)

func findCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <description.json> <selector>",
		Short: "Print the node matching an identifier or path",
		Long: `Search a node description for a node by identifier or by path
from the root (e.g. /main/series) and print it as JSON.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd.OutOrStdout(), args[0], args[1])
		},
	}
	return cmd
}

func runFind(w io.Writer, input string, selector string) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	root, err := tree.ParseJSON(data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	var n *tree.Node
	switch m := tree.New(root).Find(selector, nil).Match(); m {
	case m.Just(&n):
		return writeJSON(w, n)
	}
	return fmt.Errorf("no node matches %q", selector)
}
