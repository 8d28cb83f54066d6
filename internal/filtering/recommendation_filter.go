package filtering

import (
	"context"
	"strings"

	"github.com/spigell/cv-screener/internal/scoring"
	"github.com/spigell/cv-screener/internal/screening"
)

type recommendationFilter struct {
	enabled bool
	reason  string
	keys    []string
	allowed map[scoring.Recommendation]bool
}

// NewRecommendation creates a filter that keeps only the listed recommendation
// bands, given by key ("strong_hire") or display name ("Strong Hire").
// An empty list disables the filter.
func NewRecommendation(keys []string) Filter {
	f := &recommendationFilter{enabled: len(keys) > 0, keys: keys}
	if !f.enabled {
		f.reason = "no recommendations configured"
	}
	return f
}

func (f *recommendationFilter) Name() string { return "recommendation" }

func (f *recommendationFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *recommendationFilter) IsEnabled() bool { return f.enabled }

func (f *recommendationFilter) Validate() error {
	f.allowed = make(map[scoring.Recommendation]bool, len(f.keys))
	for _, key := range f.keys {
		r, err := scoring.ParseRecommendation(strings.TrimSpace(key))
		if err != nil {
			return err
		}
		f.allowed[r] = true
	}
	return nil
}

func (f *recommendationFilter) Apply(_ context.Context, r *screening.Results) (*screening.Results, Step, error) {
	next, step := keep(r, func(item screening.Result) bool {
		return f.allowed[item.Score.Recommendation]
	})
	return next, step, nil
}

func (f *recommendationFilter) Status() Status {
	details := map[string]string{}
	if len(f.keys) > 0 {
		details["recommendations"] = strings.Join(f.keys, ",")
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
