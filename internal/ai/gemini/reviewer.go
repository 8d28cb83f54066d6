package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/ai"
	"github.com/spigell/cv-screener/internal/logger"
	"github.com/spigell/cv-screener/internal/resume"
	"github.com/spigell/cv-screener/internal/scoring"
	"github.com/spigell/cv-screener/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type Reviewer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed review.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	maxResumeRunes      = 6000
)

var _ ai.Reviewer = (*Reviewer)(nil)

func NewReviewer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Reviewer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reviewer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

type candidatePayload struct {
	Candidate resume.CandidateRecord `json:"candidate"`
	Score     scoring.ScoreResult    `json:"score"`
}

func (r *Reviewer) Review(ctx context.Context, candidate resume.CandidateRecord, score scoring.ScoreResult, profile scoring.RequirementProfile) (*ai.Review, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile payload: %w", err)
	}

	candidateJSON, err := json.MarshalIndent(candidatePayload{Candidate: candidate, Score: score}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal candidate payload: %w", err)
	}

	prompt := buildPrompt(string(profileJSON), string(candidateJSON), candidate.RawText)

	log := logger.WithFields(r.logger, logger.StringFields(
		logger.StringField{Key: logger.FieldCandidate, Value: candidate.Name},
	)...)

	log.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, r.maxLogLen)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	log.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, r.maxLogLen)),
	)

	review, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	review.Raw = raw
	return review, nil
}

func buildPrompt(profileJSON, candidateJSON, resumeText string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Profile:\n{{PROFILE_JSON}}\n\nCandidate:\n{{CANDIDATE_JSON}}\n\nResume:\n{{RESUME_TEXT}}\n\nJSON Response:"
	}

	resumeText = strings.TrimSpace(resumeText)
	if utf8.RuneCountInString(resumeText) > maxResumeRunes {
		resumeText = string([]rune(resumeText)[:maxResumeRunes])
	}
	if resumeText == "" {
		resumeText = "(no text could be extracted)"
	}

	return strings.NewReplacer(
		"{{PROFILE_JSON}}", profileJSON,
		"{{CANDIDATE_JSON}}", candidateJSON,
		"{{RESUME_TEXT}}", resumeText,
	).Replace(template)
}

type reviewPayload struct {
	Summary   string   `mapstructure:"summary"`
	Strengths []string `mapstructure:"strengths"`
	Concerns  []string `mapstructure:"concerns"`
}

// parseResponse tolerates code fences and loosely typed fields, such as a
// single string where a list is expected.
func parseResponse(raw string) (*ai.Review, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var payload reviewPayload
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &payload,
	})
	if err != nil {
		return nil, fmt.Errorf("create response decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	summary := strings.TrimSpace(payload.Summary)
	if summary == "" {
		return nil, fmt.Errorf("gemini response has no summary")
	}

	return &ai.Review{
		Summary:   summary,
		Strengths: compact(payload.Strengths),
		Concerns:  compact(payload.Concerns),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func compact(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
