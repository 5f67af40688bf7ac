package cra

import (
	"regexp"
	"strconv"
	"strings"
)

// The mapped proposal text uses loosely-structured "Label:** value" lines
// (the labels carry a trailing Markdown-bold marker from the upstream mapping
// step). Each logical field has an ordered list of patterns; extraction is
// strictly first-match-wins, so more specific patterns are listed first.
// A field that matches nothing yields the empty string, which every scorer
// resolves to its documented low-risk default.
var (
	occupationPatterns    = compilePatterns(`Occupation:\*\*\s*(.+?)(?:\n|$)`)
	salaryRangePatterns   = compilePatterns(`Salary Range.*?:\*\*\s*(.+?)(?:\n|$)`)
	premiumPatterns       = compilePatterns(`Total Monthly Premium.*?MUR\s*([\d,.]+)`)
	paymentFreqPatterns   = compilePatterns(`Frequency of Premium Payment:\*\*\s*(.+?)(?:\n|$)`)
	paymentMethodPatterns = compilePatterns(`First Payment Method:\*\*\s*(.+?)(?:\n|$)`)
	planPatterns          = compilePatterns(
		`Plan Proposed:\*\*\s*(.+?)(?:\n|$)`,
		`Plan Name:\*\*\s*(.+?)(?:\n|$)`,
	)
	beneficiaryPatterns = compilePatterns(`Beneficiary:\*\*\s*(.+?)(?:\n|$)`)
	nationalityPatterns = compilePatterns(`Nationality:\*\*\s*(.+?)(?:\n|$)`)
	residencePatterns   = compilePatterns(
		`Residence:\*\*\s*(.+?)(?:\n|$)`,
		`Address:\*\*\s*(.+?)(?:\n|$)`,
	)
	agentPatterns = compilePatterns(
		`Agent.*?:\*\*\s*(.+?)(?:\n|$)`,
		`Intermediary:\*\*\s*(.+?)(?:\n|$)`,
	)
)

func compilePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// extractField returns the first non-empty capture group across the ordered
// patterns, trimmed of whitespace. Extraction is total: no match means "".
func extractField(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m != nil && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// parseAmount strips thousands separators and whitespace from a
// numeric-looking substring and returns its value. Empty or non-numeric
// input yields 0; it never fails.
func parseAmount(text string) float64 {
	if text == "" {
		return 0
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, text)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// containsAny reports whether s contains any of the given substrings.
// Callers lowercase s first; the keyword tables are already lowercase.
func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
