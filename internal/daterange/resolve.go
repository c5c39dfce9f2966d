package daterange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date layout used for every range bound.
const DateLayout = "2006-01-02"

// Kind names the pattern that produced a Range.
type Kind string

const (
	KindYearRange       Kind = "year_range"
	KindDecade          Kind = "decade"
	KindQualifiedDecade Kind = "qualified_decade"
	KindYear            Kind = "year"
)

// Range is an inclusive pair of ISO dates with From <= To.
type Range struct {
	From string
	To   string
	Kind Kind
}

var (
	yearRangePattern       = regexp.MustCompile(`((?:19|20)\d{2})\s*[-to]+\s*((?:19|20)\d{2})`)
	decadePattern          = regexp.MustCompile(`((?:19|20)\d)0s`)
	qualifiedDecadePattern = regexp.MustCompile(`\b(early|mid|late)\s+((?:19|20)\d{2})s`)
	trailingQualifier      = regexp.MustCompile(`\b(?:early|mid|late)\s+$`)
	yearPattern            = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
)

// Resolve scans text for an era phrase. The boolean is false when nothing
// matched.
func Resolve(text string) (Range, bool) {
	text = strings.ToLower(text)

	if m := yearRangePattern.FindStringSubmatch(text); m != nil {
		first, second := atoi(m[1]), atoi(m[2])
		if first > second {
			first, second = second, first
		}
		return span(first, second, KindYearRange), true
	}

	for _, loc := range decadePattern.FindAllStringSubmatchIndex(text, -1) {
		if trailingQualifier.MatchString(text[:loc[0]]) {
			continue
		}
		decade := atoi(text[loc[2]:loc[3]]) * 10
		return span(decade, decade+9, KindDecade), true
	}

	if m := qualifiedDecadePattern.FindStringSubmatch(text); m != nil {
		start := atoi(m[2])
		switch m[1] {
		case "early":
			return span(start, start+4, KindQualifiedDecade), true
		case "mid":
			return span(start+4, start+6, KindQualifiedDecade), true
		default:
			return span(start+6, start+9, KindQualifiedDecade), true
		}
	}

	if m := yearPattern.FindStringSubmatch(text); m != nil {
		year := atoi(m[1])
		return span(year, year, KindYear), true
	}

	return Range{}, false
}

// ParseDate parses an ISO calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// ValidDate reports whether value is a well-formed ISO calendar date.
func ValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// Ordered reports whether both bounds parse and from is not after to.
func Ordered(from, to string) bool {
	start, err := ParseDate(from)
	if err != nil {
		return false
	}
	end, err := ParseDate(to)
	if err != nil {
		return false
	}
	return !start.After(end)
}

func span(fromYear, toYear int, kind Kind) Range {
	return Range{
		From: fmt.Sprintf("%04d-01-01", fromYear),
		To:   fmt.Sprintf("%04d-12-31", toYear),
		Kind: kind,
	}
}

// atoi is only called on regexp captures of decimal digits.
func atoi(digits string) int {
	n, _ := strconv.Atoi(digits)
	return n
}
