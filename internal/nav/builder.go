package nav

import (
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/util/sets"
)

const (
	typeCategory = "category"
	typeDoc      = "doc"
)

var (
	categoryKeys = sets.New("type", "label", "collapsed", "items")
	docKeys      = sets.New("type", "id", "label")
)

// Builder validates raw navigation input. The zero value is not usable; use
// NewBuilder.
type Builder struct {
	maxDepth int
}

// Option configures a Builder.
type Option func(*Builder)

// WithMaxDepth limits category nesting. Zero means unbounded.
func WithMaxDepth(depth int) Option {
	return func(b *Builder) {
		b.maxDepth = max(depth, 0)
	}
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build validates a single raw sidebar with the default builder.
func Build(sidebarID string, raw any) (*Tree, error) {
	return NewBuilder().Build(sidebarID, raw)
}

// Build validates raw as the sidebar named sidebarID. raw must be a list
// whose elements are document ids or objects with type "category" or "doc".
func (b *Builder) Build(sidebarID string, raw any) (*Tree, error) {
	if strings.TrimSpace(sidebarID) == "" {
		return nil, &MalformedEntryError{Path: "<sidebar>", Value: sidebarID, Reason: "sidebar id must not be empty"}
	}

	list, ok := asList(raw)
	if !ok {
		return nil, &MalformedEntryError{Path: sidebarID, Value: raw, Reason: "sidebar must be a list"}
	}

	w := &treeWalker{
		builder: b,
		sidebar: sidebarID,
		seen:    make(map[string]string),
	}

	items, err := w.items(sidebarID, list, 1)
	if err != nil {
		return nil, err
	}

	return &Tree{id: sidebarID, items: items, ids: w.ids}, nil
}

// BuildSidebars validates every named sidebar. Names are processed in sorted
// order so the reported failure does not depend on map iteration.
func (b *Builder) BuildSidebars(raw map[string]any) (Sidebars, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)

	trees := make(map[string]*Tree, len(raw))
	for _, name := range names {
		tree, err := b.Build(name, raw[name])
		if err != nil {
			return Sidebars{}, err
		}
		trees[name] = tree
	}

	return Sidebars{trees: trees}, nil
}

type treeWalker struct {
	builder *Builder
	sidebar string
	seen    map[string]string // id -> path of first occurrence
	ids     []string
}

func (w *treeWalker) items(path string, list []any, depth int) ([]Node, error) {
	nodes := make([]Node, 0, len(list))
	for i, raw := range list {
		n, err := w.node(indexPath(path, i), raw, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (w *treeWalker) node(path string, raw any, depth int) (Node, error) {
	if id, ok := raw.(string); ok {
		return w.entry(path, id, "", raw)
	}

	obj, ok := asObject(raw)
	if !ok {
		return nil, &MalformedEntryError{Path: path, Value: raw, Reason: "expected a document id or an object with a type"}
	}

	typ, present, ok := stringField(obj, "type")
	switch {
	case !present:
		return nil, &MalformedEntryError{Path: path, Value: raw, Reason: "object is missing its type"}
	case !ok:
		return nil, &MalformedEntryError{Path: path, Value: obj["type"], Reason: "type must be a string"}
	}

	switch typ {
	case typeCategory:
		return w.category(path, obj, depth)
	case typeDoc:
		return w.docObject(path, obj)
	default:
		return nil, &MalformedEntryError{Path: path, Value: typ, Reason: fmt.Sprintf("unsupported type %q", typ)}
	}
}

func (w *treeWalker) docObject(path string, obj map[string]any) (Node, error) {
	if key, found := unknownKey(obj, docKeys); found {
		return nil, &MalformedEntryError{Path: path, Value: key, Reason: "unknown key in doc entry"}
	}

	id, _, ok := stringField(obj, "id")
	if !ok {
		return nil, &MalformedEntryError{Path: path, Value: obj["id"], Reason: "doc id must be a string"}
	}

	label, present, ok := stringField(obj, "label")
	if !ok {
		return nil, &MalformedEntryError{Path: path, Value: obj["label"], Reason: "label must be a string"}
	}
	if present && strings.TrimSpace(label) == "" {
		return nil, &MalformedEntryError{Path: path, Value: label, Reason: "label must not be blank"}
	}

	return w.entry(path, id, normalizeLabel(label), obj)
}

func (w *treeWalker) entry(path, id, label string, raw any) (Node, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &MalformedEntryError{Path: path, Value: raw, Reason: "document id must not be empty"}
	}

	if first, dup := w.seen[id]; dup {
		return nil, &DuplicateIDError{Sidebar: w.sidebar, ID: id, Path: path, FirstPath: first}
	}
	w.seen[id] = path
	w.ids = append(w.ids, id)

	return &Entry{id: id, label: label}, nil
}

func (w *treeWalker) category(path string, obj map[string]any, depth int) (Node, error) {
	if key, found := unknownKey(obj, categoryKeys); found {
		return nil, &MalformedEntryError{Path: path, Value: key, Reason: "unknown key in category"}
	}

	label, _, ok := stringField(obj, "label")
	if !ok {
		return nil, &MalformedEntryError{Path: path, Value: obj["label"], Reason: "category label must be a string"}
	}
	label = normalizeLabel(label)
	if label == "" {
		return nil, &MalformedEntryError{Path: path, Value: obj, Reason: "category label must not be empty"}
	}

	collapsed := true
	if raw, present := obj["collapsed"]; present {
		b, ok := raw.(bool)
		if !ok {
			return nil, &MalformedEntryError{Path: path + ".collapsed", Value: raw, Reason: "collapsed must be a boolean"}
		}
		collapsed = b
	}

	if limit := w.builder.maxDepth; limit > 0 && depth > limit {
		return nil, &MalformedEntryError{Path: path, Value: label, Reason: fmt.Sprintf("category nesting exceeds the limit of %d", limit)}
	}

	rawItems, present := obj["items"]
	if !present || rawItems == nil {
		return nil, &EmptyCategoryError{Path: path, Label: label}
	}
	list, ok := asList(rawItems)
	if !ok {
		return nil, &MalformedEntryError{Path: path + ".items", Value: rawItems, Reason: "items must be a list"}
	}
	if len(list) == 0 {
		return nil, &EmptyCategoryError{Path: path, Label: label}
	}

	items, err := w.items(path+".items", list, depth+1)
	if err != nil {
		return nil, err
	}

	return &Category{label: label, collapsed: collapsed, items: items}, nil
}
