// Package main hosts the krk CLI entrypoint and command graph.
//
// Running krk with no subcommand starts the interactive chat. The remaining
// commands expose the same building blocks non-interactively: one-shot
// extraction, catalog queries against saved preferences, vocabulary
// maintenance, configuration scaffolding, and readiness checks.
//
// Configuration resolution, logger setup, and client construction live in
// commandContext so subcommands stay declarative.
package main
