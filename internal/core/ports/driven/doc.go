// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentStore: Markdown file listing, reading and writing
//   - ConfigStore: Application configuration
//   - FixPass / FixPipeline: Ordered MDX rewrite passes
//   - FileWatcher: Filesystem change notification for watch mode
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
