package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spigell/cv-screener/internal/screening"
)

const (
	noneMatched = "None"
	allMatched  = "All required skills matched"
)

// WriteDetails prints the full record of a single candidate.
func WriteDetails(w io.Writer, r screening.Result) error {
	matched := strings.Join(r.Candidate.Skills, listSeparator)
	if matched == "" {
		matched = noneMatched
	}

	missing := strings.Join(r.Score.MissingSkills, listSeparator)
	if missing == "" {
		missing = allMatched
	}

	lines := []string{
		Label(r),
		"  Document:        " + r.Document,
		"  Email:           " + r.Candidate.Email,
		"  Phone:           " + r.Candidate.Phone,
		fmt.Sprintf("  Experience:      %d Years", r.Candidate.YearsExperience),
		fmt.Sprintf("  Skill Match:     %s%%", formatScore(r.Score.SkillMatchPercent)),
		"  Recommendation:  " + r.Score.Recommendation.String(),
		"  Matched Skills:  " + matched,
		"  Missing Skills:  " + missing,
	}

	if r.Warning != "" {
		lines = append(lines, "  Warning:         "+r.Warning)
	}

	if r.Review != nil {
		if r.Review.Error != "" {
			lines = append(lines, "  AI Review:       unavailable ("+r.Review.Error+")")
		} else {
			lines = append(lines, "  AI Review:       "+r.Review.Summary)
			for _, s := range r.Review.Strengths {
				lines = append(lines, "    + "+s)
			}
			for _, c := range r.Review.Concerns {
				lines = append(lines, "    - "+c)
			}
		}
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
