// Package standards collects curriculum standard records from either
// the CPALMS search interface or a CASE framework API, normalizes both
// into one record shape, and persists them with an audit log of every
// collection attempt.
package standards

import "context"

// Record is the normalized standard shared by both sources.
type Record struct {
	StandardId  string
	State       string
	Subject     string
	Grade       string
	Domain      string
	Cluster     string
	Title       string
	Description string
	Keywords    []string
	Url         string
}

// Unit is one batch of work attempted and logged as a whole. In scrape
// mode it is a (subject, grade) pair; in API mode one CASE framework
// document.
type Unit struct {
	Subject string
	Grade   string
	// CASE document identifier, empty in scrape mode
	Document string
}

// Source yields records for the collector one unit at a time.
type Source interface {
	// Units enumerates the work to attempt. An error here is fatal to
	// the whole run, there is no per-unit fallback yet.
	Units(ctx context.Context) ([]Unit, error)
	// Fetch returns the normalized records of one unit. An error
	// affects that unit only.
	Fetch(ctx context.Context, unit Unit) ([]Record, error)
}
