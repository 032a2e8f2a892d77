// Package site assembles a validated Site from a loaded configuration.
//
// Build is the only way to obtain a Site. It runs the navigation builders
// over the raw sidebars, navbar and footer sections, checks that navbar
// items reference existing sidebars and reports the outcome to a
// metrics.Recorder. Failures come back as *errors.ClassifiedError values
// whose cause is the typed nav error, reachable with errors.As.
package site
