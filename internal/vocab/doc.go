// Package vocab holds the alias tables that map free text to catalog ids.
//
// Each table is a UTF-8 text file with one `alias : id` entry per line.
// Parsing is lenient: lines without a colon, or with an empty alias or id,
// are dropped without error because the files are edited by hand. Aliases
// are lower-cased and keep the position of their first appearance, so
// iteration follows file order even when a later line overrides the id.
package vocab
