// Package report renders screening results for people and spreadsheets.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spigell/cv-screener/internal/screening"
)

const (
	// DefaultCSVName is the file name suggested for CSV exports.
	DefaultCSVName = "resume_screening_results.csv"

	listSeparator = ", "
)

// Columns of the CSV export, in order.
var Columns = []string{
	"Name",
	"Score",
	"Skill Match %",
	"Experience",
	"Recommendation",
	"Email",
	"Missing Skills",
	"Matched Skills",
}

// Row flattens a result into the CSV column order. Matched Skills lists every
// skill recognized in the resume, not only the required ones.
func Row(r screening.Result) []string {
	return []string{
		r.Candidate.Name,
		formatScore(r.Score.FinalScore),
		formatScore(r.Score.SkillMatchPercent),
		strconv.Itoa(r.Candidate.YearsExperience),
		r.Score.Recommendation.String(),
		r.Candidate.Email,
		strings.Join(r.Score.MissingSkills, listSeparator),
		strings.Join(r.Candidate.Skills, listSeparator),
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// ByRecommendation groups a short description of every result under its band.
func ByRecommendation(results *screening.Results) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for rec, items := range results.ByRecommendation() {
		for _, item := range items {
			report[rec.String()] = append(report[rec.String()], map[string]string{
				"name":     item.Candidate.Name,
				"document": item.Document,
				"score":    formatScore(item.Score.FinalScore),
				"email":    item.Candidate.Email,
				"missing":  strings.Join(item.Score.MissingSkills, listSeparator),
			})
		}
	}
	return report
}

// Label is the one-line title of a result used in menus and detail headers.
func Label(r screening.Result) string {
	return fmt.Sprintf("%s - %s%% (%s)", r.Candidate.Name, formatScore(r.Score.FinalScore), r.Score.Recommendation)
}
