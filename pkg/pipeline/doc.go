// Package pipeline drives StreamSets pipeline lifecycle actions through the
// external "streamsets cli" executable.
//
// The CLI exits with status 0 whether or not the action succeeded, so the
// outcome of an invocation is decided from its combined output alone:
//
//   - output that parses as JSON is a state change (Changed)
//   - output carrying a known no-op error code is a no-op (Skipped)
//   - anything else is an ACTION_EXECUTE error carrying the raw output
//
// In dry-run mode the command line is composed and reported but never run.
package pipeline
