// Package screening runs the extraction and scoring pipeline over a batch of documents.
package screening

import (
	"context"
	"errors"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/cv-screener/internal/document"
	"github.com/spigell/cv-screener/internal/logger"
	"github.com/spigell/cv-screener/internal/resume"
	"github.com/spigell/cv-screener/internal/scoring"
)

// Pipeline screens documents against a requirement profile. Documents are
// independent, so they are processed on a bounded pool of workers sharing
// the read-only parser and profile.
type Pipeline struct {
	Extractor *document.Extractor
	Parser    *resume.Parser
	Profile   scoring.RequirementProfile
	// Workers bounds concurrency. Zero means GOMAXPROCS.
	Workers int
	Logger  *zap.Logger
}

// Run screens every document and returns one result per processed document
// in submission order. Extraction failures are attached to their result as a
// warning and never abort the batch. When ctx is done no further documents
// are submitted; results of those already completed are returned along with
// the context error.
func (p *Pipeline) Run(ctx context.Context, docs []document.Document) (*Results, error) {
	runID := uuid.NewString()
	log := logger.WithRunID(p.Logger, runID)

	extractor := p.Extractor
	if extractor == nil {
		extractor = document.NewExtractor(log)
	}
	parser := p.Parser
	if parser == nil {
		parser = resume.NewParser(nil)
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.Info("screening started",
		zap.Int("documents", len(docs)),
		zap.Int("workers", workers),
		zap.Strings("required_skills", p.Profile.RequiredSkills),
		zap.Int("min_experience", p.Profile.MinExperience),
	)

	slots := make([]*Result, len(docs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, doc := range docs {
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			slots[i] = screen(ctx, extractor, parser, p.Profile, log, i, doc)
			return nil
		})
	}

	// workers never return errors; failures travel as warnings
	_ = g.Wait()

	results := &Results{RunID: runID, Profile: p.Profile, Items: make([]Result, 0, len(docs))}
	for _, r := range slots {
		if r != nil {
			results.Items = append(results.Items, *r)
		}
	}

	summary := results.Summary()
	log.Info("screening finished",
		zap.Int("screened", summary.Total),
		zap.Int("strong_hires", summary.StrongHires),
		zap.Int("interviews", summary.Interviews),
		zap.Int("rejects", summary.Rejects),
		zap.Int("warnings", summary.Warnings),
	)

	return results, ctx.Err()
}

// screen returns nil when the document was abandoned because ctx is done.
func screen(ctx context.Context, extractor *document.Extractor, parser *resume.Parser, profile scoring.RequirementProfile, log *zap.Logger, index int, doc document.Document) *Result {
	docLog := logger.WithFields(log, logger.DocumentFields(doc.Filename, string(doc.Format()))...)

	result := &Result{Index: index, Document: doc.Filename, Format: doc.Format()}

	text, err := extractor.Extract(ctx, doc)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}

		docLog.Warn("document extraction failed", zap.Error(err))
		result.Warning = err.Error()
		text = ""
	}

	result.Candidate = parser.Parse(text)
	result.Score = scoring.Score(result.Candidate, profile)

	docLog.Info("document screened",
		zap.String(logger.FieldCandidate, result.Candidate.Name),
		zap.Float64("score", result.Score.FinalScore),
		zap.String("recommendation", result.Score.Recommendation.String()),
	)

	return result
}
