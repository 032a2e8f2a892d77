package nav

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/util/sets"
)

// TargetKind tells internal document links from external URLs.
type TargetKind string

const (
	TargetInternal TargetKind = "internal"
	TargetExternal TargetKind = "external"
)

var (
	groupKeys = sets.New("title", "items")
	linkKeys  = sets.New("label", "target", "to", "href")
)

// Link is a labelled footer link.
type Link struct {
	label  string
	target string
	kind   TargetKind
}

// NewLink returns a link, classifying target. It panics on an invalid target
// and is meant for hosts assembling links in code.
func NewLink(label, target string) Link {
	kind, reason := classifyTarget(target)
	if reason != "" {
		panic(fmt.Sprintf("nav.NewLink: %s", reason))
	}
	return Link{label: label, target: target, kind: kind}
}

func (l Link) Label() string          { return l.label }
func (l Link) Target() string         { return l.target }
func (l Link) TargetKind() TargetKind { return l.kind }

// IsExternal reports whether the link leaves the site.
func (l Link) IsExternal() bool { return l.kind == TargetExternal }

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	title string
	items []Link
}

func (g LinkGroup) Title() string { return g.title }

// Items returns a copy of the links in author order.
func (g LinkGroup) Items() []Link { return slices.Clone(g.items) }

// BuildLinkGroups validates raw footer link groups with the default builder.
func BuildLinkGroups(raw any) ([]LinkGroup, error) {
	return NewBuilder().BuildLinkGroups(raw)
}

// BuildLinkGroups validates raw as a list of {title, items} groups. Each item
// needs a label and exactly one of target, to (internal path) or href
// (absolute URL).
func (b *Builder) BuildLinkGroups(raw any) ([]LinkGroup, error) {
	if raw == nil {
		return nil, nil
	}

	list, ok := asList(raw)
	if !ok {
		return nil, &MalformedLinkError{Group: -1, Item: -1, Reason: "link groups must be a list"}
	}

	groups := make([]LinkGroup, 0, len(list))
	for gi, rawGroup := range list {
		group, err := buildLinkGroup(gi, rawGroup)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, nil
}

func buildLinkGroup(gi int, raw any) (LinkGroup, error) {
	groupErr := func(format string, a ...any) error {
		return &MalformedLinkError{Group: gi, Item: -1, Reason: fmt.Sprintf(format, a...)}
	}

	obj, ok := asObject(raw)
	if !ok {
		return LinkGroup{}, groupErr("group must be an object with title and items")
	}
	if key, found := unknownKey(obj, groupKeys); found {
		return LinkGroup{}, groupErr("unknown key %q", key)
	}

	title, _, ok := stringField(obj, "title")
	title = normalizeLabel(title)
	if !ok || title == "" {
		return LinkGroup{}, groupErr("title must be a non-empty string")
	}

	items, ok := asList(obj["items"])
	if !ok || len(items) == 0 {
		return LinkGroup{}, groupErr("group %q has no items", title)
	}

	links := make([]Link, 0, len(items))
	for ii, rawItem := range items {
		itemObj, ok := asObject(rawItem)
		if !ok {
			return LinkGroup{}, &MalformedLinkError{Group: gi, Item: ii, Reason: "link must be an object with label and target"}
		}
		if key, found := unknownKey(itemObj, linkKeys); found {
			return LinkGroup{}, &MalformedLinkError{Group: gi, Item: ii, Reason: fmt.Sprintf("unknown key %q", key)}
		}

		link, reason := parseLink(itemObj)
		if reason != "" {
			return LinkGroup{}, &MalformedLinkError{Group: gi, Item: ii, Reason: reason}
		}
		links = append(links, link)
	}

	return LinkGroup{title: title, items: links}, nil
}

// parseLink reads label and target from obj. A non-empty reason means the
// link is invalid.
func parseLink(obj map[string]any) (Link, string) {
	label, _, ok := stringField(obj, "label")
	label = normalizeLabel(label)
	if !ok || label == "" {
		return Link{}, "label must be a non-empty string"
	}

	target, kind, reason := parseTarget(obj)
	if reason != "" {
		return Link{}, reason
	}

	return Link{label: label, target: target, kind: kind}, ""
}

// parseTarget reads exactly one of target, to or href.
func parseTarget(obj map[string]any) (string, TargetKind, string) {
	var keys []string
	for _, k := range []string{"target", "to", "href"} {
		if _, present := obj[k]; present {
			keys = append(keys, k)
		}
	}

	switch len(keys) {
	case 0:
		return "", "", "missing target (one of target, to, href)"
	case 1:
	default:
		return "", "", fmt.Sprintf("only one of target, to, href may be set, got %s", strings.Join(keys, ", "))
	}

	key := keys[0]
	target, _, ok := stringField(obj, key)
	if !ok {
		return "", "", fmt.Sprintf("%s must be a string", key)
	}
	if strings.TrimSpace(target) == "" {
		return "", "", fmt.Sprintf("%s must not be empty", key)
	}

	kind, reason := classifyTarget(target)
	if reason != "" {
		return "", "", fmt.Sprintf("%s %q: %s", key, target, reason)
	}

	switch {
	case key == "href" && kind != TargetExternal:
		return "", "", fmt.Sprintf("href %q must be an absolute URL", target)
	case key == "to" && kind != TargetInternal:
		return "", "", fmt.Sprintf("to %q must be an internal path", target)
	}

	return target, kind, ""
}

// classifyTarget decides whether s is an absolute URL or a relative path /
// document id. A non-empty reason means s is neither.
func classifyTarget(s string) (TargetKind, string) {
	if strings.TrimSpace(s) == "" {
		return "", "target must not be empty"
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return "", "target must not contain whitespace"
	}
	if strings.HasPrefix(s, "//") {
		return "", "protocol-relative URLs are not allowed"
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", "not a valid URL or path"
	}

	if u.Scheme == "" {
		return TargetInternal, ""
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return "", "absolute URL has no host"
		}
	case "mailto":
		if u.Opaque == "" {
			return "", "mailto URL has no address"
		}
	default:
		return "", fmt.Sprintf("unsupported URL scheme %q", u.Scheme)
	}

	return TargetExternal, ""
}
