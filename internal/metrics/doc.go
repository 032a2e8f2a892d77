// Package metrics records navigation validation metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so callers never nil-check:
//
//	s, err := site.Build(cfg, site.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// PrometheusRecorder registers its collectors on the supplied registry.
// WriteTextfile dumps a gatherer in the node_exporter textfile format, which
// is how one-shot CLI runs publish their numbers.
package metrics
