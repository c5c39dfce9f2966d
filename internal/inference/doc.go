// Package inference resolves preference fields from an utterance without
// calling a model.
//
// Actor and genre aliases are tested as substrings longest first, languages
// in vocabulary file order. When no actor or genre alias appears verbatim the
// engine falls back to fuzzy token matching with per-field cutoffs. Era
// phrases are delegated to daterange.
package inference
