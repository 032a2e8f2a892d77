package nav

import (
	"fmt"
	"unicode/utf8"
)

// DuplicateIDError reports a document linked twice within one sidebar.
type DuplicateIDError struct {
	Sidebar   string
	ID        string
	Path      string
	FirstPath string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate document id %q at %s (first linked at %s)", e.ID, e.Path, e.FirstPath)
}

// EmptyCategoryError reports a category without items.
type EmptyCategoryError struct {
	Path  string
	Label string
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("category %q at %s has no items", e.Label, e.Path)
}

// MalformedEntryError reports a sidebar element that is neither a document id
// nor a well-formed object.
type MalformedEntryError struct {
	Path   string
	Value  any
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed entry at %s: %s (got %s)", e.Path, e.Reason, describe(e.Value))
}

// MalformedLinkError reports an invalid footer link group or link. Item is -1
// when the group itself is at fault.
type MalformedLinkError struct {
	Group  int
	Item   int
	Reason string
}

func (e *MalformedLinkError) Error() string {
	if e.Group < 0 {
		return fmt.Sprintf("malformed link groups: %s", e.Reason)
	}
	if e.Item < 0 {
		return fmt.Sprintf("malformed link group %d: %s", e.Group, e.Reason)
	}
	return fmt.Sprintf("malformed link at group %d, item %d: %s", e.Group, e.Item, e.Reason)
}

// MalformedNavbarItemError reports an invalid navbar item.
type MalformedNavbarItemError struct {
	Index  int
	Reason string
}

func (e *MalformedNavbarItemError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed navbar: %s", e.Reason)
	}
	return fmt.Sprintf("malformed navbar item %d: %s", e.Index, e.Reason)
}

const maxDescribe = 60

// describe renders an offending value compactly for error messages.
func describe(v any) string {
	var s string
	switch v := v.(type) {
	case nil:
		return "nothing"
	case string:
		s = fmt.Sprintf("%q", v)
	default:
		s = fmt.Sprintf("%T %v", v, v)
	}
	if len(s) > maxDescribe {
		cut := maxDescribe
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}
