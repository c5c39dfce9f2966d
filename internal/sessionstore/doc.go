// Package sessionstore persists session preferences between chat runs.
//
// Sessions live in a SQLite database under the state directory, keyed by the
// name given at the chat prompt. Schema changes ship as embedded, ordered SQL
// migrations recorded in schema_migrations. An advisory file lock keeps a
// second interactive chat from writing the same database concurrently.
package sessionstore
