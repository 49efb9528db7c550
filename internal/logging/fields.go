// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldPaths  = "paths"
	FieldConfig = "config"

	// Parser fields.
	FieldFlavor      = "flavor"
	FieldBytes       = "bytes"
	FieldNodes       = "nodes"
	FieldLabel       = "label"
	FieldFrontMatter = "front_matter"
	FieldDuration    = "duration"

	// Check fields.
	FieldFilesChecked = "files_checked"
	FieldViolations   = "violations"
	FieldJobs         = "jobs"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
