package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/site"
	"git.home.luguber.info/inful/docnav/internal/watch"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Watch           bool          `short:"w" help:"Revalidate whenever the configuration changes"`
	Debounce        time.Duration `help:"Quiet period before revalidating in watch mode" default:"300ms"`
	MetricsTextfile string        `name:"metrics-textfile" help:"Write Prometheus metrics to this file (node_exporter textfile format)" type:"path"`
}

// Run executes the validate command.
func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	reg := prom.NewRegistry()
	var rec metrics.Recorder = metrics.NoopRecorder{}
	if v.MetricsTextfile != "" {
		rec = metrics.NewPrometheusRecorder(reg)
	}

	if !v.Watch {
		return v.validateOnce(g, root, rec, reg)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return v.watch(ctx, g, root, rec, reg)
}

// watch validates once, then again on every configuration change until ctx
// is done. Validation failures are logged, never returned.
func (v *ValidateCmd) watch(ctx context.Context, g *Global, root *CLI, rec metrics.Recorder, reg *prom.Registry) error {
	if err := v.validateOnce(g, root, rec, reg); err != nil {
		g.log().Error("Validation failed", logfields.Error(err))
	}

	w, err := watch.New(root.Config, func(_ context.Context, runID string) {
		if err := v.validateOnce(g, root, rec, reg); err != nil {
			g.log().Error("Validation failed", logfields.RunID(runID), logfields.Error(err))
		}
	}, watch.WithDebounce(v.Debounce))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	w.Wait(ctx)
	slog.Info("Stopped watching")
	return nil
}

func (v *ValidateCmd) validateOnce(g *Global, root *CLI, rec metrics.Recorder, reg *prom.Registry) error {
	start := time.Now()
	s, err := root.loadSite(g, rec)
	if v.MetricsTextfile != "" {
		if werr := metrics.WriteTextfile(v.MetricsTextfile, reg); werr != nil {
			slog.Warn("Could not write metrics", logfields.Path(v.MetricsTextfile), logfields.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	summarize(g, s, time.Since(start))
	return nil
}

func summarize(g *Global, s *site.Site, elapsed time.Duration) {
	for _, name := range s.Sidebars.Names() {
		tree, _ := s.Sidebars.Get(name)
		st := tree.Stats()
		slog.Info("Sidebar OK",
			logfields.Sidebar(name),
			logfields.Count(st.Entries),
			slog.Int("categories", st.Categories))
	}
	slog.Info("Navigation valid",
		slog.Int("sidebars", s.Sidebars.Len()),
		slog.Int("navbar_items", len(s.Navbar)),
		slog.Int("link_groups", len(s.Footer.Groups)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	fmt.Fprintf(g.Out, "OK: %d sidebar(s), %d navbar item(s), %d footer group(s)\n",
		s.Sidebars.Len(), len(s.Navbar), len(s.Footer.Groups))
}
