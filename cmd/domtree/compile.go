package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/dom/domdbg"
	"github.com/npillmayer/domtree/tree"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

type compileOptions struct {
	html     bool
	dot      bool
	document string
	selector string
}

func compileCmd() *cobra.Command {
	var opts compileOptions

	cmd := &cobra.Command{
		Use:   "compile <description.json>",
		Short: "Compile a node description into markup",
		Long: `Compile a JSON node description into markup and print it.

Elements are created in the SVG namespace unless --html is given.
With --into, the compiled tree is mounted into an HTML document at the
first element matching --select, and the whole document is printed.

Examples:
  domtree compile chart.json
  domtree compile --dot chart.json | dot -Tsvg > chart-tree.svg
  domtree compile --into page.html --select '#chart-wrapper' chart.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Create elements in the HTML namespace")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "Print the element tree in GraphViz DOT format")
	cmd.Flags().StringVar(&opts.document, "into", "", "HTML document to mount the compiled tree into")
	cmd.Flags().StringVar(&opts.selector, "select", "body", "CSS selector of the mount point (with --into)")

	return cmd
}

func runCompile(w io.Writer, input string, opts compileOptions) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	root, err := tree.ParseJSON(data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	var treeOpts []tree.Option
	if opts.html {
		treeOpts = append(treeOpts, tree.Namespace(tree.NamespaceHTML))
	}
	t := tree.New(root, treeOpts...)

	var out *html.Node
	if opts.document != "" {
		doc, err := readInput(opts.document)
		if err != nil {
			return err
		}
		out, err = dom.ParseDocument(bytes.NewReader(doc))
		if err != nil {
			return fmt.Errorf("%s: %w", opts.document, err)
		}
		var mountErr error
		switch m := t.Mount(out, opts.selector).Match(); m {
		case m.Err(&mountErr):
			return mountErr
		}
	} else {
		el, ok := t.Compile(nil, nil).Get()
		if !ok {
			return fmt.Errorf("%s: %w", input, tree.ErrEmptyNode)
		}
		out = el
	}

	if opts.dot {
		return domdbg.ToGraphViz(out, w)
	}
	if err := dom.Render(w, out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
