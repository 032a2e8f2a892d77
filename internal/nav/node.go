package nav

import (
	"slices"
)

// NodeKind discriminates the node variants of a sidebar tree.
type NodeKind string

const (
	KindEntry    NodeKind = "doc"
	KindCategory NodeKind = "category"
)

// Node is either an *Entry or a *Category.
type Node interface {
	Kind() NodeKind
	node()
}

// Entry is a leaf pointing at a single document.
type Entry struct {
	id    string
	label string
}

// NewEntry returns an entry for the document id with an optional label override.
func NewEntry(id, label string) *Entry {
	return &Entry{id: id, label: label}
}

func (*Entry) Kind() NodeKind { return KindEntry }
func (*Entry) node()          {}

// ID returns the document id.
func (e *Entry) ID() string { return e.id }

// Label returns the display override, empty when the host should use the
// document's own title.
func (e *Entry) Label() string { return e.label }

// Category groups further nodes under a collapsible label.
type Category struct {
	label     string
	collapsed bool
	items     []Node
}

func (*Category) Kind() NodeKind { return KindCategory }
func (*Category) node()          {}

// Label returns the category label.
func (c *Category) Label() string { return c.label }

// Collapsed reports whether the category starts collapsed.
func (c *Category) Collapsed() bool { return c.collapsed }

// Items returns a copy of the child nodes in author order.
func (c *Category) Items() []Node { return slices.Clone(c.items) }

// Tree is a validated sidebar.
type Tree struct {
	id    string
	items []Node
	ids   []string
}

// ID returns the sidebar identifier, e.g. "tutorialSidebar".
func (t *Tree) ID() string { return t.id }

// Items returns a copy of the top-level nodes in author order.
func (t *Tree) Items() []Node { return slices.Clone(t.items) }

// IDs returns every document id in the tree in depth-first document order.
// The ids are unique.
func (t *Tree) IDs() []string { return slices.Clone(t.ids) }

// Has reports whether the sidebar links the document id.
func (t *Tree) Has(id string) bool { return slices.Contains(t.ids, id) }

// Walk visits every node depth-first in author order. depth is 1 for
// top-level nodes. Returning an error stops the walk.
func (t *Tree) Walk(fn func(n Node, depth int) error) error {
	return walk(t.items, 1, fn)
}

func walk(items []Node, depth int, fn func(Node, int) error) error {
	for _, n := range items {
		if err := fn(n, depth); err != nil {
			return err
		}
		if c, ok := n.(*Category); ok {
			if err := walk(c.items, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats summarises the shape of a tree.
type Stats struct {
	Entries    int
	Categories int
	MaxDepth   int
}

// Stats counts entries, categories and the deepest nesting level.
func (t *Tree) Stats() Stats {
	var s Stats
	_ = t.Walk(func(n Node, depth int) error {
		switch n.Kind() {
		case KindEntry:
			s.Entries++
		case KindCategory:
			s.Categories++
		}
		s.MaxDepth = max(s.MaxDepth, depth)
		return nil
	})
	return s
}

// Sidebars holds the validated trees of a site keyed by sidebar id.
type Sidebars struct {
	trees map[string]*Tree
}

// Get returns the named sidebar.
func (s Sidebars) Get(id string) (*Tree, bool) {
	t, ok := s.trees[id]
	return t, ok
}

// Names returns the sidebar ids in sorted order.
func (s Sidebars) Names() []string {
	names := make([]string, 0, len(s.trees))
	for name := range s.trees {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of sidebars.
func (s Sidebars) Len() int { return len(s.trees) }
