package nav

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/docnav/internal/util/sets"
)

// asList accepts the sequence shapes produced by YAML/JSON decoding and by Go
// callers building raw input by hand.
func asList(v any) ([]any, bool) {
	switch v := v.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

// asObject accepts string-keyed maps. yaml.v3 falls back to map[any]any when a
// mapping has non-string keys; those only qualify if every key is a string.
func asObject(v any) (map[string]any, bool) {
	switch v := v.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// unknownKey returns the first key (sorted) of obj not in allowed.
func unknownKey(obj map[string]any, allowed sets.Set[string]) (string, bool) {
	var unknown []string
	for k := range obj {
		if !allowed.Has(k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return "", false
	}
	slices.Sort(unknown)
	return unknown[0], true
}

// stringField reads an optional string field. present is false when the key
// is absent; ok is false when the value is not a string.
func stringField(obj map[string]any, key string) (value string, present, ok bool) {
	raw, present := obj[key]
	if !present {
		return "", false, true
	}
	s, ok := raw.(string)
	return s, true, ok
}

// normalizeLabel trims and NFC-normalizes a display label so composed and
// decomposed spellings of the same text compare equal.
func normalizeLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
