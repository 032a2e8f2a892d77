package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration      prom.Histogram
	validationOutcomes *prom.CounterVec
	sidebarEntries     *prom.GaugeVec
	sidebarCategories  *prom.GaugeVec
	linkGroups         prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them on reg
// (a fresh registry when nil). Registering twice on one registry panics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "build_duration_seconds",
		Help:      "Duration of a full navigation build",
		Buckets:   prom.DefBuckets,
	})
	pr.validationOutcomes = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "validation_outcomes_total",
		Help:      "Validation runs by outcome",
	}, []string{"outcome"})
	pr.sidebarEntries = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "sidebar_entries",
		Help:      "Document entries per sidebar in the last successful build",
	}, []string{"sidebar"})
	pr.sidebarCategories = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "sidebar_categories",
		Help:      "Categories per sidebar in the last successful build",
	}, []string{"sidebar"})
	pr.linkGroups = prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "footer_link_groups",
		Help:      "Footer link groups in the last successful build",
	})
	reg.MustRegister(pr.buildDuration, pr.validationOutcomes, pr.sidebarEntries, pr.sidebarCategories, pr.linkGroups)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncValidationOutcome(outcome OutcomeLabel) {
	if p == nil || p.validationOutcomes == nil {
		return
	}
	p.validationOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetSidebarNodes(sidebar string, entries, categories int) {
	if p == nil || p.sidebarEntries == nil {
		return
	}
	p.sidebarEntries.WithLabelValues(sidebar).Set(float64(entries))
	p.sidebarCategories.WithLabelValues(sidebar).Set(float64(categories))
}

// ResetSidebarNodes drops the per-sidebar series so sidebars removed since
// the last build stop being reported.
func (p *PrometheusRecorder) ResetSidebarNodes() {
	if p == nil || p.sidebarEntries == nil {
		return
	}
	p.sidebarEntries.Reset()
	p.sidebarCategories.Reset()
}

func (p *PrometheusRecorder) SetLinkGroups(n int) {
	if p == nil || p.linkGroups == nil {
		return
	}
	p.linkGroups.Set(float64(n))
}
