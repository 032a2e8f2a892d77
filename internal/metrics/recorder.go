package metrics

import "time"

// OutcomeLabel enumerates validation run outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	// OutcomeInvalid is a structural error in the navigation input.
	OutcomeInvalid OutcomeLabel = "invalid"
	// OutcomeError is any other failure (config, filesystem).
	OutcomeError OutcomeLabel = "error"
)

// Recorder defines observability hooks for navigation builds. All methods
// must be safe to call on the zero value of an implementation.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncValidationOutcome(outcome OutcomeLabel)
	ResetSidebarNodes()
	SetSidebarNodes(sidebar string, entries, categories int)
	SetLinkGroups(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncValidationOutcome(OutcomeLabel)  {}
func (NoopRecorder) ResetSidebarNodes()                 {}
func (NoopRecorder) SetSidebarNodes(string, int, int)   {}
func (NoopRecorder) SetLinkGroups(int)                  {}
