package site

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// Section names used as error context.
const (
	SectionSidebars = "sidebars"
	SectionNavbar   = "navbar"
	SectionFooter   = "footer"
)

// Site is the validated navigation handed to the rendering host. It is
// read-only once built.
type Site struct {
	Meta        config.SiteConfig
	Environment string
	Sidebars    nav.Sidebars
	Navbar      []nav.NavbarItem
	Footer      Footer
}

// Footer carries the footer style and its validated link groups.
type Footer struct {
	Style  config.FooterStyle
	Groups []nav.LinkGroup
}

// UnknownSidebarError reports a navbar item pointing at a sidebar that is
// not configured.
type UnknownSidebarError struct {
	Index     int
	SidebarID string
}

func (e *UnknownSidebarError) Error() string {
	return fmt.Sprintf("navbar item %d references unknown sidebar %q", e.Index, e.SidebarID)
}

type options struct {
	recorder metrics.Recorder
	navOpts  []nav.Option
}

// Option configures Build.
type Option func(*options)

// WithRecorder reports build metrics to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithNavOptions passes extra options to the navigation builder. They are
// applied after the ones derived from the configuration.
func WithNavOptions(opts ...nav.Option) Option {
	return func(o *options) {
		o.navOpts = append(o.navOpts, opts...)
	}
}

// Build validates the navigation sections of cfg.
func Build(cfg *config.Config, opts ...Option) (*Site, error) {
	if cfg == nil {
		return nil, errors.InternalError("nil configuration").Build()
	}

	o := options{recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	s, err := build(cfg, o)
	o.recorder.ObserveBuildDuration(time.Since(start))
	if err != nil {
		o.recorder.IncValidationOutcome(outcomeFor(err))
		return nil, err
	}
	o.recorder.IncValidationOutcome(metrics.OutcomeSuccess)
	record(o.recorder, s)
	return s, nil
}

func build(cfg *config.Config, o options) (*Site, error) {
	builder := nav.NewBuilder(append([]nav.Option{nav.WithMaxDepth(cfg.Build.MaxDepth)}, o.navOpts...)...)

	sidebars, err := builder.BuildSidebars(cfg.Sidebars)
	if err != nil {
		return nil, wrap(err, SectionSidebars)
	}

	navbar, err := builder.BuildNavbar(cfg.Navbar.Items)
	if err != nil {
		return nil, wrap(err, SectionNavbar)
	}
	for i, item := range navbar {
		if item.Kind() != nav.NavbarDocSidebar {
			continue
		}
		if _, ok := sidebars.Get(item.SidebarID()); !ok {
			return nil, wrap(&UnknownSidebarError{Index: i, SidebarID: item.SidebarID()}, SectionNavbar)
		}
	}

	groups, err := builder.BuildLinkGroups(cfg.Footer.Links)
	if err != nil {
		return nil, wrap(err, SectionFooter)
	}

	return &Site{
		Meta:        cfg.Site,
		Environment: cfg.Environment,
		Sidebars:    sidebars,
		Navbar:      navbar,
		Footer:      Footer{Style: cfg.Footer.Style, Groups: groups},
	}, nil
}

func wrap(err error, section string) error {
	b := errors.WrapError(err, errors.CategoryValidation, "invalid navigation").
		Fatal().
		WithRetry(errors.RetryNever).
		WithContext("section", section)
	attrs := []any{logfields.Section(section), logfields.Error(err)}
	if p := errorPath(err); p != "" {
		b = b.WithContext("path", p)
		attrs = append(attrs, logfields.Path(p))
	}
	var dup *nav.DuplicateIDError
	if stderrors.As(err, &dup) {
		b = b.WithContext("doc_id", dup.ID)
		attrs = append(attrs, logfields.DocID(dup.ID))
	}
	slog.Debug("Navigation rejected", attrs...)
	return b.Build()
}

func errorPath(err error) string {
	switch e := err.(type) {
	case *nav.DuplicateIDError:
		return e.Path
	case *nav.EmptyCategoryError:
		return e.Path
	case *nav.MalformedEntryError:
		return e.Path
	}
	return ""
}

func outcomeFor(err error) metrics.OutcomeLabel {
	if errors.HasCategory(err, errors.CategoryValidation) {
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}

func record(r metrics.Recorder, s *Site) {
	r.ResetSidebarNodes()
	for _, name := range s.Sidebars.Names() {
		tree, _ := s.Sidebars.Get(name)
		st := tree.Stats()
		r.SetSidebarNodes(name, st.Entries, st.Categories)
		slog.Debug("Sidebar validated",
			logfields.Sidebar(name),
			logfields.Count(st.Entries),
			slog.Int("categories", st.Categories),
			slog.Int("max_depth", st.MaxDepth))
	}
	r.SetLinkGroups(len(s.Footer.Groups))
}

// Sidebar returns the named sidebar tree.
func (s *Site) Sidebar(id string) (*nav.Tree, error) {
	tree, ok := s.Sidebars.Get(id)
	if !ok {
		return nil, errors.NotFoundError("unknown sidebar").
			WithContext("sidebar", id).
			WithContext("available", s.Sidebars.Names()).
			Build()
	}
	return tree, nil
}
