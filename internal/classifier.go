package logtally

import (
	"regexp"
	"strings"
)

const (
	SeverityInfo    = "INFO"
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
)

var (
	// Octets are not range checked: 999.999.999.999 matches.
	addressRegexp = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)

	// Checked in order, first hit wins. Markers match as plain substrings,
	// so "INFORMATION" counts as INFO.
	severityMatchers = []severityMatcher{
		{label: SeverityInfo, marker: "INFO"},
		{label: SeverityError, marker: "ERROR"},
		{label: SeverityWarning, marker: "WARNING"},
	}
)

type severityMatcher struct {
	label  string
	marker string
}

func (m severityMatcher) match(l string) bool {
	return strings.Contains(l, m.marker)
}

type classification struct {
	severity  string
	addresses []string
}

func classifySeverity(l string) (string, bool) {
	for _, m := range severityMatchers {
		if m.match(l) {
			return m.label, true
		}
	}

	return "", false
}

func extractAddresses(l string) []string {
	return addressRegexp.FindAllString(l, -1)
}

func classify(l string) classification {
	s, _ := classifySeverity(l)

	return classification{
		severity:  s,
		addresses: extractAddresses(l),
	}
}
