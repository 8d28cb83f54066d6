// Package resume derives a structured candidate record from resume text.
package resume

const (
	// UnknownName is reported when no name-like first line exists.
	UnknownName = "Unknown"
	// NotFound is reported for contact fields absent from the text.
	NotFound = "Not Found"
)

// CandidateRecord holds the fields extracted from one resume.
type CandidateRecord struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"`
	YearsExperience int      `json:"years_experience"`
	RawText         string   `json:"-"`
}

// HasSkill reports whether the candidate lists the (normalized) skill.
func (c CandidateRecord) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
