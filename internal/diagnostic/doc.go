// Package diagnostic provides structured errors, warnings, and infos
// collected while loading persisted data.
//
// Key capabilities:
//   - Per-row skip reports with file and line context
//   - Unreadable-file errors that do not abort the rest of a load
//   - A combined error view for callers that only care about failure
package diagnostic
