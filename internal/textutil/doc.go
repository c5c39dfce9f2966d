// Package textutil provides the string similarity and tokenization primitives
// used by local preference inference.
//
// Similarity is the Ratcliff/Obershelp ratio (2*M/T, where M is the number of
// matched characters and T the combined length) computed by go-difflib over
// rune sequences. CloseMatch applies a cutoff and returns the single best
// candidate, preferring the lexically greater candidate on equal scores.
//
// Tokenizers extract alphabetic words or runs of one or two consecutive words
// from free text; callers are expected to lower-case the text first.
package textutil
