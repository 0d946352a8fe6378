// Package session tracks which document references have already been
// injected in the current interactive session.
//
// The record is monotonic for the session's lifetime: the engine only ever
// checks and marks. Clearing is external housekeeping exposed through the
// CLI, never performed by the engine itself. The SQLite backend persists
// across hook invocations (each prompt submission is a separate process);
// the in-memory backend serves tests and single-process runs.
package session
