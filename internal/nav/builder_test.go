package nav

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const tutorialSidebarYAML = `
tutorialSidebar:
  - intro
  - installation
  - quickstart
  - type: category
    label: "⚙️ Configuración"
    collapsed: false
    items:
      - configuration/http-servers
      - configuration/stdio-servers
      - configuration/mixed-configuration
  - type: category
    label: "📝 Logging"
    collapsed: false
    items:
      - logging/enable-logging
      - logging/colored-logging
      - logging/silent-operation
  - type: category
    label: "🚀 Uso Avanzado"
    collapsed: false
    items:
      - advanced-usage/custom-server-config
      - advanced-usage/error-handling
      - advanced-usage/working-with-results
  - type: category
    label: "💼 Casos de Uso"
    collapsed: false
    items:
      - use-cases/database-analysis
      - use-cases/e-commerce-integration
      - use-cases/document-generation
  - type: category
    label: "📚 API Reference"
    collapsed: false
    items:
      - api-reference/deepseek-client
      - api-reference/client-result
      - api-reference/mcp-server-config
  - environment-variables
  - compatible-servers
`

func category(label string, items ...any) map[string]any {
	return map[string]any{"type": "category", "label": label, "items": items}
}

func TestBuild_ShorthandEntries(t *testing.T) {
	tree, err := Build("tutorialSidebar", []any{"intro", "installation"})
	require.NoError(t, err)

	items := tree.Items()
	require.Len(t, items, 2)
	for i, want := range []string{"intro", "installation"} {
		entry, ok := items[i].(*Entry)
		require.True(t, ok, "item %d should be an entry", i)
		assert.Equal(t, want, entry.ID())
		assert.Empty(t, entry.Label())
	}
	assert.Equal(t, []string{"intro", "installation"}, tree.IDs())
	assert.Equal(t, "tutorialSidebar", tree.ID())
}

func TestBuild_DuplicateID(t *testing.T) {
	_, err := Build("docs", []any{category("Config", "a", "a")})
	require.Error(t, err)

	var dup *DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.ID)
	assert.Equal(t, "docs", dup.Sidebar)
	assert.Equal(t, "docs[0].items[1]", dup.Path)
	assert.Equal(t, "docs[0].items[0]", dup.FirstPath)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestBuild_DuplicateAcrossCategories(t *testing.T) {
	raw := []any{
		"intro",
		category("Guides", "setup", category("Deep", "intro")),
	}
	_, err := Build("docs", raw)

	var dup *DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "intro", dup.ID)
	assert.Equal(t, "docs[1].items[1].items[0]", dup.Path)
	assert.Equal(t, "docs[0]", dup.FirstPath)
}

func TestBuild_EmptyCategoryAtAnyDepth(t *testing.T) {
	tests := []struct {
		name string
		raw  []any
		path string
	}{
		{"top level", []any{category("Empty")}, "docs[0]"},
		{"missing items key", []any{map[string]any{"type": "category", "label": "Empty"}}, "docs[0]"},
		{"null items", []any{map[string]any{"type": "category", "label": "Empty", "items": nil}}, "docs[0]"},
		{"depth two", []any{"a", category("Outer", "b", category("Empty"))}, "docs[1].items[1]"},
		{"depth four", []any{category("L1", category("L2", category("L3", category("Empty"))))}, "docs[0].items[0].items[0].items[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build("docs", tt.raw)

			var empty *EmptyCategoryError
			require.ErrorAs(t, err, &empty)
			assert.Equal(t, "Empty", empty.Label)
			assert.Equal(t, tt.path, empty.Path)
		})
	}
}

func TestBuild_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		path   string
		reason string
	}{
		{"sidebar not a list", "intro", "docs", "sidebar must be a list"},
		{"number element", []any{42}, "docs[0]", "expected a document id"},
		{"null element", []any{nil}, "docs[0]", "expected a document id"},
		{"nested list", []any{[]any{"a"}}, "docs[0]", "expected a document id"},
		{"empty id", []any{"  "}, "docs[0]", "document id must not be empty"},
		{"object without type", []any{map[string]any{"label": "X", "items": []any{"a"}}}, "docs[0]", "missing its type"},
		{"non-string type", []any{map[string]any{"type": 3}}, "docs[0]", "type must be a string"},
		{"unsupported type", []any{map[string]any{"type": "link", "href": "https://example.com"}}, "docs[0]", `unsupported type "link"`},
		{"unknown category key", []any{map[string]any{"type": "category", "label": "X", "items": []any{"a"}, "colapsed": true}}, "docs[0]", "unknown key"},
		{"empty label", []any{category("  ", "a")}, "docs[0]", "label must not be empty"},
		{"non-string label", []any{map[string]any{"type": "category", "label": 7, "items": []any{"a"}}}, "docs[0]", "label must be a string"},
		{"collapsed not bool", []any{map[string]any{"type": "category", "label": "X", "collapsed": "no", "items": []any{"a"}}}, "docs[0].collapsed", "collapsed must be a boolean"},
		{"items not list", []any{map[string]any{"type": "category", "label": "X", "items": "a"}}, "docs[0].items", "items must be a list"},
		{"doc without id", []any{map[string]any{"type": "doc", "label": "X"}}, "docs[0]", "document id must not be empty"},
		{"doc id not string", []any{map[string]any{"type": "doc", "id": 1}}, "docs[0]", "doc id must be a string"},
		{"doc blank label", []any{map[string]any{"type": "doc", "id": "a", "label": " "}}, "docs[0]", "label must not be blank"},
		{"malformed deep", []any{category("A", category("B", true))}, "docs[0].items[0].items[0]", "expected a document id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build("docs", tt.raw)

			var malformed *MalformedEntryError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.path, malformed.Path)
			assert.Contains(t, malformed.Reason, tt.reason)
		})
	}
}

func TestBuild_EmptySidebarID(t *testing.T) {
	_, err := Build("", []any{"a"})

	var malformed *MalformedEntryError
	require.ErrorAs(t, err, &malformed)
}

func TestBuild_PreservesOrder(t *testing.T) {
	ids := []string{"zeta", "alpha", "mu", "beta", "omega", "epsilon"}
	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id)
	}
	raw = append(raw, category("Zz", "z2", "z1"), category("Aa", "a9", "a1"))

	tree, err := Build("docs", raw)
	require.NoError(t, err)

	want := append(append([]string{}, ids...), "z2", "z1", "a9", "a1")
	assert.Equal(t, want, tree.IDs())

	items := tree.Items()
	assert.Equal(t, "Zz", items[6].(*Category).Label())
	assert.Equal(t, "Aa", items[7].(*Category).Label())
}

func TestBuild_Idempotent(t *testing.T) {
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(tutorialSidebarYAML), &raw))

	first, err := Build("tutorialSidebar", raw["tutorialSidebar"])
	require.NoError(t, err)
	second, err := Build("tutorialSidebar", raw["tutorialSidebar"])
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_YAMLSidebar(t *testing.T) {
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(tutorialSidebarYAML), &raw))

	tree, err := Build("tutorialSidebar", raw["tutorialSidebar"])
	require.NoError(t, err)

	assert.Equal(t, Stats{Entries: 20, Categories: 5, MaxDepth: 2}, tree.Stats())

	ids := tree.IDs()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		assert.False(t, seen[id], "id %q repeated", id)
		seen[id] = true
	}
	assert.Len(t, seen, len(ids))
	assert.Equal(t, "intro", ids[0])
	assert.Equal(t, "compatible-servers", ids[len(ids)-1])

	cat, ok := tree.Items()[3].(*Category)
	require.True(t, ok)
	assert.Equal(t, "⚙️ Configuración", cat.Label())
	assert.False(t, cat.Collapsed())
	assert.Len(t, cat.Items(), 3)
	assert.True(t, tree.Has("logging/silent-operation"))
	assert.False(t, tree.Has("logging"))
}

func TestBuild_DocObjectAndDefaults(t *testing.T) {
	raw := []any{
		map[string]any{"type": "doc", "id": "intro", "label": "  Welcome "},
		category("Guides", "setup"),
	}

	tree, err := Build("docs", raw)
	require.NoError(t, err)

	items := tree.Items()
	assert.Equal(t, "Welcome", items[0].(*Entry).Label())
	assert.True(t, items[1].(*Category).Collapsed(), "categories start collapsed unless told otherwise")
}

func TestBuild_LabelsAreNFC(t *testing.T) {
	decomposed := "Configuracio\u0301n"
	tree, err := Build("docs", []any{category(decomposed, "a")})
	require.NoError(t, err)

	assert.Equal(t, "Configuraci\u00f3n", tree.Items()[0].(*Category).Label())
}

func TestBuild_MaxDepth(t *testing.T) {
	raw := []any{category("L1", category("L2", category("L3", "leaf")))}

	_, err := NewBuilder(WithMaxDepth(3)).Build("docs", raw)
	require.NoError(t, err)

	_, err = NewBuilder(WithMaxDepth(2)).Build("docs", raw)
	var malformed *MalformedEntryError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "docs[0].items[0].items[0]", malformed.Path)
	assert.Contains(t, malformed.Reason, "limit of 2")

	_, err = NewBuilder(WithMaxDepth(0)).Build("docs", raw)
	require.NoError(t, err)
}

func TestBuild_YAMLNonStringKeys(t *testing.T) {
	raw := []any{map[any]any{"type": "category", "label": "Guides", "items": []any{"a"}}}
	tree, err := Build("docs", raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tree.IDs())

	_, err = Build("docs", []any{map[any]any{1: "x"}})
	var malformed *MalformedEntryError
	require.ErrorAs(t, err, &malformed)
}

func TestTree_JSONRoundTrip(t *testing.T) {
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(tutorialSidebarYAML), &raw))
	raw["tutorialSidebar"] = append(raw["tutorialSidebar"].([]any),
		map[string]any{"type": "doc", "id": "faq", "label": "FAQ"})

	tree, err := Build("tutorialSidebar", raw["tutorialSidebar"])
	require.NoError(t, err)

	data, err := json.Marshal(tree)
	require.NoError(t, err)

	var decoded any
	require.NoError(t, json.Unmarshal(data, &decoded))

	rebuilt, err := Build("tutorialSidebar", decoded)
	require.NoError(t, err)
	assert.Equal(t, tree, rebuilt)
}

func TestTree_ItemsAreCopies(t *testing.T) {
	tree, err := Build("docs", []any{"a", category("C", "b")})
	require.NoError(t, err)

	items := tree.Items()
	items[0] = nil
	ids := tree.IDs()
	ids[0] = "changed"

	assert.NotNil(t, tree.Items()[0])
	assert.Equal(t, []string{"a", "b"}, tree.IDs())
}

func TestTree_Walk(t *testing.T) {
	tree, err := Build("docs", []any{"a", category("C", "b", category("D", "c"))})
	require.NoError(t, err)

	var visited []string
	err = tree.Walk(func(n Node, depth int) error {
		switch n := n.(type) {
		case *Entry:
			visited = append(visited, n.ID())
		case *Category:
			visited = append(visited, n.Label())
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "C", "b", "D", "c"}, visited)
	assert.Equal(t, Stats{Entries: 3, Categories: 2, MaxDepth: 3}, tree.Stats())
}

func TestBuildSidebars(t *testing.T) {
	t.Run("same id in different sidebars", func(t *testing.T) {
		sidebars, err := NewBuilder().BuildSidebars(map[string]any{
			"guides": []any{"intro", "setup"},
			"api":    []any{"intro", "client"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"api", "guides"}, sidebars.Names())
		assert.Equal(t, 2, sidebars.Len())

		api, ok := sidebars.Get("api")
		require.True(t, ok)
		assert.Equal(t, []string{"intro", "client"}, api.IDs())

		_, ok = sidebars.Get("missing")
		assert.False(t, ok)
	})

	t.Run("first failure in name order", func(t *testing.T) {
		_, err := NewBuilder().BuildSidebars(map[string]any{
			"zeta":  []any{"x", "x"},
			"alpha": []any{category("Empty")},
		})

		var empty *EmptyCategoryError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, "alpha[0]", empty.Path)
	})
}
