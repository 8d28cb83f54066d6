// Package ai defines the advisory reviewer used to annotate screened candidates.
// A review never changes the deterministic score.
package ai

import (
	"context"

	"github.com/spigell/cv-screener/internal/resume"
	"github.com/spigell/cv-screener/internal/scoring"
)

type Review struct {
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths,omitempty"`
	Concerns  []string `json:"concerns,omitempty"`
	Raw       string   `json:"-"`
	// Error is set when the review could not be produced.
	Error string `json:"error,omitempty"`
}

type Reviewer interface {
	Review(ctx context.Context, candidate resume.CandidateRecord, score scoring.ScoreResult, profile scoring.RequirementProfile) (*Review, error)
}
