package filtering

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spigell/cv-screener/internal/screening"
)

type minScoreFilter struct {
	enabled   bool
	reason    string
	threshold float64
}

// NewMinScore creates a filter that drops results scoring below threshold.
// A zero threshold disables the filter.
func NewMinScore(threshold float64) Filter {
	f := &minScoreFilter{enabled: threshold > 0, threshold: threshold}
	if !f.enabled {
		f.reason = "no minimum score configured"
	}
	return f
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *minScoreFilter) IsEnabled() bool { return f.enabled }

func (f *minScoreFilter) Validate() error {
	if f.threshold < 0 || f.threshold > 100 {
		return fmt.Errorf("minimum score must be within [0, 100], got %v", f.threshold)
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, r *screening.Results) (*screening.Results, Step, error) {
	next, step := keep(r, func(item screening.Result) bool {
		return item.Score.FinalScore >= f.threshold
	})
	return next, step, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.enabled,
		Reason:  f.reason,
		Details: map[string]string{"min_score": strconv.FormatFloat(f.threshold, 'f', 1, 64)},
	}
}
