package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyConfigPath = "config_path"
	KeyEnv        = "environment"
	KeySidebar    = "sidebar"
	KeySection    = "section"
	KeyPath       = "path"
	KeyDocID      = "doc_id"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func Env(name string) slog.Attr       { return slog.String(KeyEnv, name) }
func Sidebar(id string) slog.Attr     { return slog.String(KeySidebar, id) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DocID(id string) slog.Attr       { return slog.String(KeyDocID, id) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
