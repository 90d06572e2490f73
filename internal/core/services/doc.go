// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// MigrationService and AnalysisService route markdown files through
// the filename classifier; FixService and WatchService run the MDX
// sanitizer pipeline. All filesystem access goes through the
// DocumentStore driven port.
package services
