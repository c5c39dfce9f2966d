// Package catalog turns session preferences into a TMDB discovery query and
// ranks the answer for display. It also refreshes the genre vocabulary from
// the catalog's own genre list.
package catalog
