// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ReportLoader: Parses an mpvQC report file
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DialogueSource: Loads subtitle dialogue events. Without it, reference
//     lookups render as placeholder lines.
//   - Chooser: Interactive disambiguation of multiple matches. Without it,
//     every candidate reference is emitted.
//   - RevisionLookup: Version-control commit hash. Without it, the commit
//     header line is omitted.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
