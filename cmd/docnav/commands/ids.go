package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// IDsCmd implements the 'ids' command.
type IDsCmd struct {
	Sidebar string `arg:"" help:"Sidebar whose document ids to print"`
}

// Run executes the ids command.
func (c *IDsCmd) Run(g *Global, root *CLI) error {
	s, err := root.loadSite(g, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	tree, err := s.Sidebar(c.Sidebar)
	if err != nil {
		return err
	}
	for _, id := range tree.IDs() {
		if _, err := fmt.Fprintln(g.Out, id); err != nil {
			return err
		}
	}
	return nil
}
