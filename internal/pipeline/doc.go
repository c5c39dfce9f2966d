// Package pipeline runs one utterance through local inference, the optional
// generative fallback, and the preference merge.
package pipeline
