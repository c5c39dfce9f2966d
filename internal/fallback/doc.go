// Package fallback asks a generative model to fill the preference fields
// local inference could not resolve, and parses the assignments it emits.
//
// The model is reached through the Completer capability so any
// text-completion backend can serve. Its output is untrusted: Parse only
// extracts `KEY = "value"` lines and prefs.Merge validates what survives.
package fallback
