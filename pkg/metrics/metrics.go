// Package metrics holds settings shared by the service's instruments.
package metrics

// DefaultBuckets are latency buckets in seconds. The upper end covers PDF
// exports and spreadsheet imports.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals
