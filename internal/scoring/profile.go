// Package scoring compares candidate records against a requirement profile.
package scoring

import (
	"strings"

	"github.com/spigell/cv-screener/internal/vocabulary"
)

// RequirementProfile holds the hiring criteria a candidate is scored against.
// MinExperience must not be negative; callers validate it upstream.
type RequirementProfile struct {
	RequiredSkills []string `json:"required_skills"`
	MinExperience  int      `json:"min_experience"`
}

// NewProfile normalizes the skills with ParseSkills.
func NewProfile(skills []string, minExperience int) RequirementProfile {
	return RequirementProfile{
		RequiredSkills: ParseSkills(skills),
		MinExperience:  minExperience,
	}
}

// ParseSkills splits every element on commas, lower-cases and trims the
// tokens and drops blanks and duplicates. Order of first appearance is kept.
func ParseSkills(raw []string) []string {
	seen := make(map[string]struct{})
	skills := make([]string, 0, len(raw))

	for _, item := range raw {
		for _, token := range strings.Split(item, ",") {
			skill := vocabulary.Normalize(token)
			if skill == "" {
				continue
			}
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			skills = append(skills, skill)
		}
	}

	return skills
}

// Unknown returns the required skills the vocabulary can never match.
func (p RequirementProfile) Unknown(vocab *vocabulary.Vocabulary) []string {
	var unknown []string
	for _, s := range p.RequiredSkills {
		if !vocab.Contains(s) {
			unknown = append(unknown, s)
		}
	}
	return unknown
}
