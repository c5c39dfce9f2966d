// Package language normalizes the language values that reach session
// preferences.
//
// Vocabulary files and model output both name languages loosely ("Hindi",
// "hin", "hi"). The catalog only understands ISO 639-1 codes, so every
// language value is funnelled through ToISO2 before it is stored.
package language
