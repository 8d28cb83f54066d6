package resume

import (
	"regexp"
	"strings"
)

const maxNameTokens = 4

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	// North-American shaped numbers: optional country code, optional
	// parenthesized area code, then 3-3-4 digits.
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Normalize lower-cases text and collapses every whitespace run to a single space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ExtractName returns the first non-empty line when it has at most four
// whitespace-separated tokens. Longer lines are more likely a title or a
// summary, so UnknownName is returned instead.
func ExtractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if len(strings.Fields(line)) <= maxNameTokens {
			return line
		}
		return UnknownName
	}

	return UnknownName
}

// ExtractEmail returns the first email-like substring or NotFound.
func ExtractEmail(text string) string {
	if match := emailPattern.FindString(text); match != "" {
		return match
	}
	return NotFound
}

// ExtractPhone returns the first phone-like substring or NotFound.
// International formats that do not fit the 3-3-4 grouping are not recognized.
func ExtractPhone(text string) string {
	if match := phonePattern.FindString(text); match != "" {
		return match
	}
	return NotFound
}
