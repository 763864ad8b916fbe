package export

import "context"

// Artifact identifies a generated export file ready for download.
type Artifact struct {
	// ID uniquely identifies this export run.
	ID string

	// Filename is the name offered to the downloading client.
	Filename string

	// Path is the artifact's location on local disk.
	Path string
}

// MonthExporter produces a tabular artifact for one team and month. An
// empty month is not an error: it yields a header-only artifact.
type MonthExporter interface {
	ExportMonth(ctx context.Context, team, monthPrefix string) (*Artifact, error)
}
