package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// TreeCmd implements the 'tree' command.
type TreeCmd struct {
	Sidebar string `arg:"" optional:"" help:"Sidebar to print (all when omitted)"`
	Format  string `short:"f" help:"Output format: text, json" default:"text" enum:"text,json"`
}

// Run executes the tree command.
func (t *TreeCmd) Run(g *Global, root *CLI) error {
	s, err := root.loadSite(g, metrics.NoopRecorder{})
	if err != nil {
		return err
	}

	var trees []*nav.Tree
	if t.Sidebar != "" {
		tree, err := s.Sidebar(t.Sidebar)
		if err != nil {
			return err
		}
		trees = append(trees, tree)
	} else {
		for _, name := range s.Sidebars.Names() {
			tree, _ := s.Sidebars.Get(name)
			trees = append(trees, tree)
		}
	}

	if t.Format == "json" {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		if t.Sidebar != "" {
			return enc.Encode(trees[0])
		}
		return enc.Encode(s.Sidebars)
	}

	for _, tree := range trees {
		if err := renderTree(g.Out, tree); err != nil {
			return err
		}
	}
	return nil
}

// renderTree prints one node per line, indented by depth.
func renderTree(w io.Writer, tree *nav.Tree) error {
	if _, err := fmt.Fprintln(w, tree.ID()); err != nil {
		return err
	}
	return tree.Walk(func(n nav.Node, depth int) error {
		indent := strings.Repeat("  ", depth)
		var err error
		switch n := n.(type) {
		case *nav.Entry:
			if n.Label() != "" {
				_, err = fmt.Fprintf(w, "%s%s %q\n", indent, n.ID(), n.Label())
			} else {
				_, err = fmt.Fprintf(w, "%s%s\n", indent, n.ID())
			}
		case *nav.Category:
			state := "expanded"
			if n.Collapsed() {
				state = "collapsed"
			}
			_, err = fmt.Fprintf(w, "%s%s/ (%s)\n", indent, n.Label(), state)
		}
		return err
	})
}
