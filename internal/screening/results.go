package screening

import (
	"sort"

	"github.com/spigell/cv-screener/internal/ai"
	"github.com/spigell/cv-screener/internal/document"
	"github.com/spigell/cv-screener/internal/resume"
	"github.com/spigell/cv-screener/internal/scoring"
)

// Result is the outcome of screening a single document.
type Result struct {
	// Index is the position of the document in the submitted batch.
	Index     int                    `json:"index"`
	Document  string                 `json:"document"`
	Format    document.Format        `json:"format"`
	Candidate resume.CandidateRecord `json:"candidate"`
	Score     scoring.ScoreResult    `json:"score"`
	// Warning holds the extraction error, if any. The candidate then carries default values.
	Warning string     `json:"warning,omitempty"`
	Review  *ai.Review `json:"review,omitempty"`
}

type Results struct {
	RunID   string                     `json:"run_id"`
	Profile scoring.RequirementProfile `json:"profile"`
	Items   []Result                   `json:"results"`
}

type Summary struct {
	Total        int     `json:"total"`
	StrongHires  int     `json:"strong_hires"`
	Interviews   int     `json:"interviews"`
	Rejects      int     `json:"rejects"`
	Warnings     int     `json:"warnings"`
	AverageScore float64 `json:"average_score"`
}

func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

// With returns results of the same run holding the given items.
func (r *Results) With(items []Result) *Results {
	return &Results{RunID: r.RunID, Profile: r.Profile, Items: items}
}

// Rank orders results by descending final score. Equal scores keep the
// order in which the documents were submitted.
func (r *Results) Rank() {
	sort.SliceStable(r.Items, func(i, j int) bool {
		a, b := r.Items[i], r.Items[j]
		if a.Score.FinalScore != b.Score.FinalScore {
			return a.Score.FinalScore > b.Score.FinalScore
		}
		return a.Index < b.Index
	})
}

func (r *Results) Summary() Summary {
	var s Summary
	if r == nil {
		return s
	}

	total := 0.0
	for _, item := range r.Items {
		switch item.Score.Recommendation {
		case scoring.StrongHire:
			s.StrongHires++
		case scoring.Interview:
			s.Interviews++
		default:
			s.Rejects++
		}
		if item.Warning != "" {
			s.Warnings++
		}
		total += item.Score.FinalScore
	}

	s.Total = len(r.Items)
	if s.Total > 0 {
		s.AverageScore = scoring.Round1(total / float64(s.Total))
	}

	return s
}

// ByRecommendation groups results by band, preserving their current order.
func (r *Results) ByRecommendation() map[scoring.Recommendation][]Result {
	grouped := make(map[scoring.Recommendation][]Result)
	if r == nil {
		return grouped
	}

	for _, item := range r.Items {
		grouped[item.Score.Recommendation] = append(grouped[item.Score.Recommendation], item)
	}
	return grouped
}

// Find returns the result for the given document name.
func (r *Results) Find(name string) (Result, bool) {
	if r == nil {
		return Result{}, false
	}

	for _, item := range r.Items {
		if item.Document == name {
			return item, true
		}
	}
	return Result{}, false
}
