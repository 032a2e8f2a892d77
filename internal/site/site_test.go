package site

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

type testRecorder struct {
	durations int
	outcomes  map[metrics.OutcomeLabel]int
	entries   map[string]int
	groups    int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{outcomes: map[metrics.OutcomeLabel]int{}, entries: map[string]int{}}
}

func (r *testRecorder) ObserveBuildDuration(time.Duration)             { r.durations++ }
func (r *testRecorder) IncValidationOutcome(o metrics.OutcomeLabel)    { r.outcomes[o]++ }
func (r *testRecorder) ResetSidebarNodes()                             { r.entries = map[string]int{} }
func (r *testRecorder) SetSidebarNodes(sidebar string, entries, _ int) { r.entries[sidebar] = entries }
func (r *testRecorder) SetLinkGroups(n int)                            { r.groups = n }

func validConfig() *config.Config {
	cfg := config.ExampleConfig()
	_, _ = config.NormalizeConfig(cfg)
	return cfg
}

func TestBuild_ExampleConfig(t *testing.T) {
	rec := newTestRecorder()
	s, err := Build(validConfig(), WithRecorder(rec))
	require.NoError(t, err)

	assert.Equal(t, "DeepSeek MCP Client", s.Meta.Title)
	assert.Equal(t, []string{"tutorialSidebar"}, s.Sidebars.Names())
	require.Len(t, s.Navbar, 2)
	assert.Equal(t, nav.NavbarDocSidebar, s.Navbar[0].Kind())
	assert.Equal(t, config.FooterStyleDark, s.Footer.Style)
	require.Len(t, s.Footer.Groups, 2)
	assert.Equal(t, "Getting Started", s.Footer.Groups[0].Title())

	tree, err := s.Sidebar("tutorialSidebar")
	require.NoError(t, err)
	assert.True(t, tree.Has("quickstart"))

	assert.Equal(t, 1, rec.durations)
	assert.Equal(t, 1, rec.outcomes[metrics.OutcomeSuccess])
	assert.Equal(t, 9, rec.entries["tutorialSidebar"])
	assert.Equal(t, 2, rec.groups)
}

func TestBuild_RecorderForgetsRemovedSidebars(t *testing.T) {
	rec := newTestRecorder()
	cfg := validConfig()
	cfg.Sidebars["apiSidebar"] = []any{"api/overview"}
	_, err := Build(cfg, WithRecorder(rec))
	require.NoError(t, err)
	assert.Contains(t, rec.entries, "apiSidebar")

	_, err = Build(validConfig(), WithRecorder(rec))
	require.NoError(t, err)
	assert.NotContains(t, rec.entries, "apiSidebar")
	assert.Equal(t, 9, rec.entries["tutorialSidebar"])
}

func TestBuild_DuplicateID(t *testing.T) {
	cfg := validConfig()
	cfg.Sidebars = map[string]any{
		"main": []any{"intro", map[string]any{"type": "category", "label": "Guide", "items": []any{"intro"}}},
	}
	rec := newTestRecorder()

	_, err := Build(cfg, WithRecorder(rec))
	require.Error(t, err)

	ce, ok := errors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, errors.CategoryValidation, ce.Category())
	assert.False(t, ce.CanRetry())
	section, _ := ce.Context().GetString("section")
	assert.Equal(t, SectionSidebars, section)
	path, _ := ce.Context().GetString("path")
	assert.Equal(t, "main[1].items[0]", path)
	docID, _ := ce.Context().GetString("doc_id")
	assert.Equal(t, "intro", docID)

	var dup *nav.DuplicateIDError
	require.True(t, stderrors.As(err, &dup))
	assert.Equal(t, "intro", dup.ID)
	assert.Equal(t, 1, rec.outcomes[metrics.OutcomeInvalid])
}

func TestBuild_UnknownNavbarSidebar(t *testing.T) {
	cfg := validConfig()
	cfg.Navbar.Items = []any{
		map[string]any{"type": "docSidebar", "sidebarId": "docsSidebar", "label": "Docs"},
	}

	_, err := Build(cfg)
	require.Error(t, err)

	var unknown *UnknownSidebarError
	require.True(t, stderrors.As(err, &unknown))
	assert.Equal(t, "docsSidebar", unknown.SidebarID)
	assert.Equal(t, 0, unknown.Index)
	ce, _ := errors.AsClassified(err)
	section, _ := ce.Context().GetString("section")
	assert.Equal(t, SectionNavbar, section)
}

func TestBuild_MalformedFooter(t *testing.T) {
	cfg := validConfig()
	cfg.Footer.Links = []any{map[string]any{"title": "Empty", "items": []any{}}}

	_, err := Build(cfg)
	var linkErr *nav.MalformedLinkError
	require.True(t, stderrors.As(err, &linkErr))
	assert.Equal(t, 0, linkErr.Group)
	assert.Equal(t, -1, linkErr.Item)
}

func TestBuild_MaxDepthFromConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Build.MaxDepth = 1
	cfg.Sidebars = map[string]any{
		"main": []any{map[string]any{
			"type":  "category",
			"label": "Outer",
			"items": []any{map[string]any{"type": "category", "label": "Inner", "items": []any{"a"}}},
		}},
	}
	cfg.Navbar.Items = nil

	_, err := Build(cfg)
	var malformed *nav.MalformedEntryError
	require.True(t, stderrors.As(err, &malformed))

	_, err = Build(cfg, WithNavOptions(nav.WithMaxDepth(0)))
	require.NoError(t, err)
}

func TestBuild_EmptySections(t *testing.T) {
	cfg := &config.Config{Version: config.ConfigVersion}
	s, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Sidebars.Len())
	assert.Empty(t, s.Navbar)
	assert.Empty(t, s.Footer.Groups)
}

func TestBuild_NilConfig(t *testing.T) {
	_, err := Build(nil)
	assert.True(t, errors.HasCategory(err, errors.CategoryInternal))
}

func TestSite_SidebarNotFound(t *testing.T) {
	s, err := Build(validConfig())
	require.NoError(t, err)
	_, err = s.Sidebar("nope")
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}
