package filtering

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/ai"
	"github.com/spigell/cv-screener/internal/logger"
	"github.com/spigell/cv-screener/internal/screening"
)

type aiReviewFilter struct {
	enabled bool
	reason  string
	config  *AIReviewFilterConfig
	deps    *AIReviewFilterDeps
}

type AIReviewFilterDeps struct {
	Logger   *zap.Logger
	Reviewer ai.Reviewer
}

type AIReviewFilterConfig struct {
	Enabled bool
	Gemini  *AIGeminiConfig
}

type AIGeminiConfig struct {
	Model        string
	MaxRetries   int
	MaxLogLength int
}

// NewAIReview creates the advisory review step. It attaches a review to
// every result and never drops one: the score stays authoritative.
func NewAIReview(cfg *AIReviewFilterConfig, deps *AIReviewFilterDeps) Filter {
	f := &aiReviewFilter{config: cfg, deps: deps}
	if cfg != nil {
		f.enabled = cfg.Enabled
	}
	if !f.enabled {
		f.reason = "ai review is disabled in config"
	}
	return f
}

func (f *aiReviewFilter) Name() string { return "ai_review" }

func (f *aiReviewFilter) Disable(reason string) {
	f.enabled = false
	f.reason = reason
}

func (f *aiReviewFilter) IsEnabled() bool { return f.enabled }

func (f *aiReviewFilter) Validate() error {
	if f.deps == nil || f.deps.Reviewer == nil {
		return fmt.Errorf("deps are not initialized: filter is not usable")
	}
	if f.config == nil || f.config.Gemini == nil {
		return fmt.Errorf("gemini configuration is required when ai review is enabled")
	}
	if strings.TrimSpace(f.config.Gemini.Model) == "" {
		return fmt.Errorf("gemini model is required when ai review is enabled")
	}
	return nil
}

func (f *aiReviewFilter) Apply(ctx context.Context, r *screening.Results) (*screening.Results, Step, error) {
	log := f.deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	items := make([]screening.Result, 0, r.Len())
	reviewed, failed := 0, 0

	for i, item := range r.Items {
		if err := ctx.Err(); err != nil {
			log.Warn("AI review interrupted, remaining candidates left unreviewed",
				zap.Error(err),
				zap.Int("unreviewed", r.Len()-i),
			)
			items = append(items, r.Items[i:]...)
			break
		}

		itemLog := logger.WithFields(log, logger.DocumentFields(item.Document, string(item.Format))...)

		review, err := f.deps.Reviewer.Review(ctx, item.Candidate, item.Score, r.Profile)
		if err != nil {
			itemLog.Warn("AI review failed", zap.Error(err))
			review = &ai.Review{Error: err.Error()}
			failed++
		} else {
			itemLog.Debug("AI review attached", zap.String("summary", review.Summary))
			reviewed++
		}

		item.Review = review
		items = append(items, item)
	}

	log.Info("AI review completed",
		zap.Int("reviewed", reviewed),
		zap.Int("failed", failed),
	)

	return r.With(items), Step{Initial: r.Len(), Dropped: 0, Left: len(items)}, nil
}

func (f *aiReviewFilter) Status() Status {
	details := map[string]string{}
	if f.config != nil && f.config.Gemini != nil {
		details["model"] = f.config.Gemini.Model
		details["max_retries"] = strconv.Itoa(f.config.Gemini.MaxRetries)
		details["max_log_length"] = strconv.Itoa(f.config.Gemini.MaxLogLength)
	}
	return Status{Name: f.Name(), Enabled: f.enabled, Reason: f.reason, Details: details}
}
