// Package domain defines the core business entities for docprep.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Classification: routing metadata derived from a markdown filename
//   - Company: an entry in the big-tech publisher registry
//   - Placement: where one file lands and under what title
//   - MigrationReport / AnalysisReport / FixReport: run outcomes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
