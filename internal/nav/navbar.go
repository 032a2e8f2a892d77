package nav

import (
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/util/sets"
)

// NavbarKind discriminates navbar items.
type NavbarKind string

const (
	NavbarDocSidebar NavbarKind = "docSidebar"
	NavbarLink       NavbarKind = "link"
)

// Position places a navbar item.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

var (
	navbarSidebarKeys = sets.New("type", "sidebarId", "label", "position")
	navbarLinkKeys    = sets.New("label", "position", "to", "href", "target")
)

// NavbarItem is either a reference to a sidebar or a link.
type NavbarItem struct {
	kind      NavbarKind
	label     string
	position  Position
	sidebarID string
	link      Link
}

func (n NavbarItem) Kind() NavbarKind   { return n.kind }
func (n NavbarItem) Label() string      { return n.label }
func (n NavbarItem) Position() Position { return n.position }

// SidebarID returns the referenced sidebar for NavbarDocSidebar items.
func (n NavbarItem) SidebarID() string { return n.sidebarID }

// Link returns the link for NavbarLink items.
func (n NavbarItem) Link() Link { return n.link }

// BuildNavbar validates raw navbar items with the default builder.
func BuildNavbar(raw any) ([]NavbarItem, error) {
	return NewBuilder().BuildNavbar(raw)
}

// BuildNavbar validates raw as a list of navbar items. Items with type
// "docSidebar" need a sidebarId; items without a type are links. Whether the
// referenced sidebars exist is for the caller to check.
func (b *Builder) BuildNavbar(raw any) ([]NavbarItem, error) {
	if raw == nil {
		return nil, nil
	}

	list, ok := asList(raw)
	if !ok {
		return nil, &MalformedNavbarItemError{Index: -1, Reason: "navbar items must be a list"}
	}

	items := make([]NavbarItem, 0, len(list))
	for i, rawItem := range list {
		item, reason := buildNavbarItem(rawItem)
		if reason != "" {
			return nil, &MalformedNavbarItemError{Index: i, Reason: reason}
		}
		items = append(items, item)
	}

	return items, nil
}

func buildNavbarItem(raw any) (NavbarItem, string) {
	obj, ok := asObject(raw)
	if !ok {
		return NavbarItem{}, "item must be an object"
	}

	position := PositionLeft
	if rawPos, present, ok := stringField(obj, "position"); present {
		switch Position(rawPos) {
		case PositionLeft, PositionRight:
			position = Position(rawPos)
		default:
			if !ok {
				return NavbarItem{}, "position must be a string"
			}
			return NavbarItem{}, fmt.Sprintf("position %q must be left or right", rawPos)
		}
	}

	typ, present, ok := stringField(obj, "type")
	if !ok {
		return NavbarItem{}, "type must be a string"
	}

	switch {
	case present && typ == string(NavbarDocSidebar):
		if key, found := unknownKey(obj, navbarSidebarKeys); found {
			return NavbarItem{}, fmt.Sprintf("unknown key %q", key)
		}
		sidebarID, _, ok := stringField(obj, "sidebarId")
		if !ok || sidebarID == "" {
			return NavbarItem{}, "sidebarId must be a non-empty string"
		}
		label, _, ok := stringField(obj, "label")
		label = normalizeLabel(label)
		if !ok || label == "" {
			return NavbarItem{}, "label must be a non-empty string"
		}
		return NavbarItem{kind: NavbarDocSidebar, label: label, position: position, sidebarID: sidebarID}, ""

	case present:
		return NavbarItem{}, fmt.Sprintf("unsupported type %q", typ)

	default:
		if key, found := unknownKey(obj, navbarLinkKeys); found {
			return NavbarItem{}, fmt.Sprintf("unknown key %q", key)
		}
		link, reason := parseLink(obj)
		if reason != "" {
			return NavbarItem{}, reason
		}
		return NavbarItem{kind: NavbarLink, label: link.label, position: position, link: link}, ""
	}
}
