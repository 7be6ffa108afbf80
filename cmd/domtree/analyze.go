package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/tree"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "analyze <document.html>",
		Short: "Reconstruct a node description from markup",
		Long: `Parse an HTML document, locate an element by CSS selector and print
the node description reconstructed from it as JSON.

Examples:
  domtree analyze page.html
  domtree analyze --select '#chart-wrapper > svg' page.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.OutOrStdout(), args[0], selector)
		},
	}

	cmd.Flags().StringVar(&selector, "select", "svg", "CSS selector of the element to analyze")

	return cmd
}

func runAnalyze(w io.Writer, input string, selector string) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	doc, err := dom.ParseDocument(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	el, err := dom.QuerySelector(doc, selector)
	if err != nil {
		return err
	}
	t := tree.FromElement(el, tree.Namespace(dom.NamespaceURI(el)))
	return writeJSON(w, t.Root())
}

func writeJSON(w io.Writer, n *tree.Node) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err = json.Indent(&out, b, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}
