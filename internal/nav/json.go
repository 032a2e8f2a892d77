package nav

import "encoding/json"

// The JSON forms mirror the input shapes, so a marshalled tree can be fed
// back into Build.

type entryJSON struct {
	Type  NodeKind `json:"type"`
	ID    string   `json:"id"`
	Label string   `json:"label,omitempty"`
}

type categoryJSON struct {
	Type      NodeKind `json:"type"`
	Label     string   `json:"label"`
	Collapsed bool     `json:"collapsed"`
	Items     []Node   `json:"items"`
}

func (e *Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{Type: KindEntry, ID: e.id, Label: e.label})
}

func (c *Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryJSON{Type: KindCategory, Label: c.label, Collapsed: c.collapsed, Items: c.items})
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	if t.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.items)
}

func (s Sidebars) MarshalJSON() ([]byte, error) {
	if s.trees == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.trees)
}

type linkJSON struct {
	Label string `json:"label"`
	To    string `json:"to,omitempty"`
	Href  string `json:"href,omitempty"`
}

func (l Link) MarshalJSON() ([]byte, error) {
	out := linkJSON{Label: l.label}
	if l.kind == TargetExternal {
		out.Href = l.target
	} else {
		out.To = l.target
	}
	return json.Marshal(out)
}

func (g LinkGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title string `json:"title"`
		Items []Link `json:"items"`
	}{Title: g.title, Items: g.items})
}

func (n NavbarItem) MarshalJSON() ([]byte, error) {
	if n.kind == NavbarDocSidebar {
		return json.Marshal(struct {
			Type      NavbarKind `json:"type"`
			SidebarID string     `json:"sidebarId"`
			Label     string     `json:"label"`
			Position  Position   `json:"position"`
		}{n.kind, n.sidebarID, n.label, n.position})
	}

	out := struct {
		linkJSON
		Position Position `json:"position"`
	}{linkJSON: linkJSON{Label: n.label}, Position: n.position}
	if n.link.kind == TargetExternal {
		out.Href = n.link.target
	} else {
		out.To = n.link.target
	}
	return json.Marshal(out)
}
