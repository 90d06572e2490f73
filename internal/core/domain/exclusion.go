package domain

// SkippedFile records a source file excluded from routing and why.
// Skips are expected outcomes, not errors; the file is reported and
// left exactly where it was found.
type SkippedFile struct {
	// File is the base name of the excluded file.
	File string

	// Reason is a human-readable explanation for the exclusion.
	Reason string
}
