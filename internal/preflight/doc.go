// Package preflight provides readiness checks for the files and external
// services krk depends on.
//
// The CLI "krk doctor" command runs every check and prints one line per
// result. Service checks are skipped when the corresponding credential is
// missing or the model fallback is disabled.
package preflight
