// Package cli implements the command-line interface for langara-ics.
//
// The cli package provides the Cobra-based CLI that wires the pipeline
// together: page loading, schedule table location, session aggregation,
// calendar generation, and the .ics export. Diagnostic counts from the
// parser are reported as text or JSON.
package cli
