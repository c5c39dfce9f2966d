// Package logs reads the krk log file for the `krk logs` command.
//
// Last returns the trailing lines with bounded memory, and Follow polls for
// appended lines until its context is cancelled. Both report the byte offset
// they stopped at so callers can resume.
package logs
