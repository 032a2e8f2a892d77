package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// Global is shared state passed to every command.
type Global struct {
	Logger *slog.Logger
	// Out receives command output.
	Out io.Writer
	// Err receives logs; stderr when nil.
	Err io.Writer
}

func (g *Global) log() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) logOutput() io.Writer {
	if g.Err == nil {
		return os.Stderr
	}
	return g.Err
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Env     string           `short:"e" help:"Environment overlay to apply from the configuration"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" default:"1" help:"Validate sidebars, navbar and footer links"`
	Tree     TreeCmd     `cmd:"" help:"Print validated sidebars"`
	IDs      IDsCmd      `cmd:"" name:"ids" help:"Print the document ids of a sidebar, one per line"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.logOutput(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	if g.Out == nil {
		g.Out = os.Stdout
	}
	return nil
}

// applyLogging switches the default logger to the configured level and
// format. --verbose keeps debug logging regardless of the file.
func (c *CLI) applyLogging(g *Global, cfg config.LoggingConfig) {
	level := cfg.Level.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(g.logOutput(), opts)
	if cfg.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(g.logOutput(), opts)
	}
	g.Logger = slog.New(handler)
	slog.SetDefault(g.Logger)
}

// loadSite loads the configuration and builds the site from it.
func (c *CLI) loadSite(g *Global, rec metrics.Recorder) (*site.Site, error) {
	cfg, err := config.Load(c.Config, c.Env)
	if err != nil {
		rec.IncValidationOutcome(metrics.OutcomeError)
		return nil, err
	}
	c.applyLogging(g, cfg.Logging)

	slog.Debug("Configuration loaded", logfields.ConfigPath(c.Config), logfields.Env(cfg.Environment))
	return site.Build(cfg, site.WithRecorder(rec))
}
