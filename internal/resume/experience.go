package resume

import (
	"regexp"
	"strconv"
)

var (
	yearsPattern        = regexp.MustCompile(`(\d+)\+?\s*years?`)
	calendarYearPattern = regexp.MustCompile(`20\d{2}`)
)

// ExtractExperience estimates years of experience. Explicit "N years"
// statements take precedence over a span inferred from calendar years:
// when any is present, the largest N wins. Otherwise the span between the
// earliest and latest 20xx year is used, provided at least two are found.
// A count too large for an int is ignored but still counts as an explicit
// statement, so when every count overflows the result is 0 and no span is
// considered.
func ExtractExperience(text string) int {
	normalized := Normalize(text)

	if matches := yearsPattern.FindAllStringSubmatch(normalized, -1); len(matches) > 0 {
		longest := 0
		for _, m := range matches {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				// overflow; not a plausible year count
				continue
			}
			if n > longest {
				longest = n
			}
		}
		return longest
	}

	years := calendarYearPattern.FindAllString(normalized, -1)
	if len(years) < 2 {
		return 0
	}

	earliest, latest := 0, 0
	for i, y := range years {
		n, _ := strconv.Atoi(y)
		if i == 0 || n < earliest {
			earliest = n
		}
		if i == 0 || n > latest {
			latest = n
		}
	}

	return latest - earliest
}
