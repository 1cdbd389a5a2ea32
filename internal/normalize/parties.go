package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Party is one name/advocate pair from a numbered party list.
type Party struct {
	Name     string
	Advocate *string
}

const minPartyNameLen = 3

var (
	entryMarker    = regexp.MustCompile(`(?:^|\s)\d+\s*\)`)
	leadingNumber  = regexp.MustCompile(`^\s*\d+\s*\)\s*`)
	advocateMarker = regexp.MustCompile(`(?i)\badvocates?\s*[-:]?\s*`)
	notAName       = regexp.MustCompile(`^[\d\p{P}\s]+$`)
)

// Parties splits a numbered party string such as
//
//	1) RAM KUMAR Advocate- A.K. SHARMA 2) SITA DEVI Advocate - P. VERMA
//
// into its entries, in source order. Parenthetical annotations are dropped
// from names and advocates. Entries whose name is empty, shorter than three
// characters, or made only of digits and punctuation are discarded.
func Parties(raw string) []Party {
	parties := []Party{}

	text := Clean(raw)
	if IsNull(text) {
		return parties
	}

	for _, entry := range splitEntries(text) {
		entry = leadingNumber.ReplaceAllString(entry, "")

		parts := advocateMarker.Split(entry, 2)
		name := beforeParen(parts[0])
		if !validName(name) {
			continue
		}

		party := Party{Name: name}
		if len(parts) == 2 {
			party.Advocate = Text(beforeParen(parts[1]))
		}
		parties = append(parties, party)
	}

	return parties
}

// splitEntries cuts text in front of every "<digits>)" marker. Anything before
// the first marker is kept as its own entry.
func splitEntries(text string) []string {
	var entries []string
	start := 0
	for _, loc := range entryMarker.FindAllStringIndex(text, -1) {
		if loc[0] > start {
			entries = append(entries, text[start:loc[0]])
		}
		start = loc[0]
	}
	return append(entries, text[start:])
}

func beforeParen(s string) string {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func validName(name string) bool {
	if name == "" || notAName.MatchString(name) {
		return false
	}
	return utf8.RuneCountInString(name) >= minPartyNameLen
}
