// Package daterange resolves free-text era phrases into inclusive ISO date
// ranges.
//
// Patterns are tried in a fixed order and the first match wins: explicit
// two-year ranges ("2000 to 2010"), decade shorthand ("1990s"), qualified
// decades ("early 1980s") and finally a bare four-digit year. Only years in
// the 1900s and 2000s are recognized.
package daterange
