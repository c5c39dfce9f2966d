// Package prefs models the five preference fields a conversation resolves
// and the rules for folding per-turn extraction results into the running
// session.
//
// A Result is the partial output of one extraction stage. A Session is the
// fully populated state carried across turns. Merge applies the precedence
// model-output > local inference > current value and never replaces a
// known value with an empty one.
package prefs
