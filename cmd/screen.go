package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/ai"
	"github.com/spigell/cv-screener/internal/ai/gemini"
	"github.com/spigell/cv-screener/internal/document"
	"github.com/spigell/cv-screener/internal/filtering"
	"github.com/spigell/cv-screener/internal/logger"
	"github.com/spigell/cv-screener/internal/report"
	"github.com/spigell/cv-screener/internal/resume"
	"github.com/spigell/cv-screener/internal/scoring"
	"github.com/spigell/cv-screener/internal/screening"
	"github.com/spigell/cv-screener/internal/secrets"
)

const (
	PromptSummary                = "Show summary"
	PromptDetails                = "Show details"
	PromptReportByRecommendation = "Report by recommendation"
	PromptExportCSV              = "Export CSV"
	PromptResultsToFile          = "Dump results to file"
	PromptExit                   = "Exit"
	PromptBack                   = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSummary, PromptDetails, PromptReportByRecommendation, PromptExportCSV, PromptResultsToFile, PromptExit},
}

var screenCmd = &cobra.Command{
	Use:   "screen [files or directories...]",
	Short: "Extract, score and rank resumes against the requirement profile",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		screen(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringSliceP("skills", "s", nil, "required skills, comma-separated")
	screenCmd.Flags().IntP("min-experience", "m", 0, "minimum years of experience")
	screenCmd.Flags().IntP("workers", "w", 0, "documents processed in parallel (default is the number of CPUs)")
	screenCmd.Flags().Float64("min-score", 0, "drop candidates scoring below this value")
	screenCmd.Flags().StringSlice("recommendation", nil, "keep only these recommendations (strong_hire, interview, reject)")
	screenCmd.Flags().StringP("format", "o", "table", "report format: table, csv or json")
	screenCmd.Flags().String("output", "", "write the report to this file instead of stdout")
	screenCmd.Flags().Bool("ai", false, "attach an advisory AI review to every candidate")
	screenCmd.Flags().BoolP("yes", "y", false, "do not ask what to do next, print the report and exit")

	viper.BindPFlag("requirements.skills", screenCmd.Flags().Lookup("skills"))
	viper.BindPFlag("requirements.min-experience", screenCmd.Flags().Lookup("min-experience"))
	viper.BindPFlag("filters.min-score", screenCmd.Flags().Lookup("min-score"))
	viper.BindPFlag("filters.recommendations", screenCmd.Flags().Lookup("recommendation"))
	viper.BindPFlag("output.format", screenCmd.Flags().Lookup("format"))
	viper.BindPFlag("output.file", screenCmd.Flags().Lookup("output"))
	viper.BindPFlag("ai.enabled", screenCmd.Flags().Lookup("ai"))
	viper.BindPFlag("workers", screenCmd.Flags().Lookup("workers"))
}

// screen is the main command for the cli.
func screen(cmd *cobra.Command, paths []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig(viper.GetViper())
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-screener", zap.String("version", resolveVersion()))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	vocab, source, err := buildVocabulary(config.Vocabulary)
	if err != nil {
		logger.Fatal("loading the skill vocabulary", zap.Error(err))
	}
	logger.Info("skill vocabulary loaded", zap.String("source", source), zap.Int("skills", vocab.Len()))

	profile := scoring.NewProfile(config.Requirements.Skills, config.Requirements.MinExperience)
	if unknown := profile.Unknown(vocab); len(unknown) > 0 {
		logger.Warn("required skills are not in the vocabulary and can never match",
			zap.Strings("skills", unknown),
			zap.String("hint", "extend the vocabulary with --vocabulary or vocabulary.skills"),
		)
	}

	docs, err := document.ReadPaths(paths)
	if err != nil {
		logger.Fatal("reading documents", zap.Error(err))
	}

	if len(docs) == 0 {
		logger.Info("exiting", zap.String("reason", "no documents found"))
		return
	}

	pipeline := &screening.Pipeline{
		Extractor: document.NewExtractor(logger),
		Parser:    resume.NewParser(vocab),
		Profile:   profile,
		Workers:   config.Workers,
		Logger:    logger,
	}

	results, err := pipeline.Run(ctx, docs)
	if err != nil {
		logger.Warn("screening interrupted, continuing with completed documents",
			zap.Error(err),
			zap.Int("completed", results.Len()),
			zap.Int("submitted", len(docs)),
		)
	}
	results.Rank()

	filters := prepareFilters(ctx, config, logger)

	results, err = filters.Run(ctx, results)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if results.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	if auto, _ := cmd.Flags().GetBool("yes"); auto || config.Output.File != "" {
		if err := writeOutput(config.Output, results); err != nil {
			logger.Fatal("writing the report", zap.Error(err))
		}
		return
	}

	if err := writeReport(os.Stdout, "table", results); err != nil {
		logger.Fatal("writing the report", zap.Error(err))
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		logger.Info("current list of candidates", zap.Int("count", results.Len()))

		if err := handleAction(action, os.Stdout, logger, config, results); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, out io.Writer, logger *zap.Logger, config *Config, results *screening.Results) error {
	switch action {
	case PromptSummary:
		return report.WriteSummary(out, results.Summary())
	case PromptDetails:
		return showDetails(out, results)
	case PromptReportByRecommendation:
		pretty, _ := json.MarshalIndent(report.ByRecommendation(results), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", results.Len()))
		return nil
	case PromptExportCSV:
		filename := config.Output.File
		if filename == "" {
			filename = report.DefaultCSVName
		}
		if err := writeFile(filename, "csv", results); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		logger.Info("results exported", zap.String("filename", filename))
		return nil
	case PromptResultsToFile:
		filename, err := report.DumpToTmpFile(results)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showDetails(out io.Writer, results *screening.Results) error {
	for {
		items := make([]string, 0, results.Len()+1)
		for _, item := range results.Items {
			items = append(items, item.Document+" | "+report.Label(item))
		}

		detailsPrompt := promptui.Select{
			Label: "Choose a candidate and press ENTER",
			Items: append(items, PromptBack),
			Size:  10,
		}

		_, selected, err := detailsPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		name := strings.SplitN(selected, " | ", 2)[0]
		result, ok := results.Find(name)
		if !ok {
			return fmt.Errorf("there is no such document %s", name)
		}

		if err := report.WriteDetails(out, result); err != nil {
			return err
		}
	}
}

func writeOutput(cfg *OutputConfig, results *screening.Results) error {
	if cfg.File != "" {
		return writeFile(cfg.File, cfg.Format, results)
	}
	return writeReport(os.Stdout, cfg.Format, results)
}

func writeFile(filename, format string, results *screening.Results) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := writeReport(file, format, results); err != nil {
		return err
	}
	return file.Close()
}

func writeReport(w io.Writer, format string, results *screening.Results) error {
	switch format {
	case "csv":
		return report.WriteCSV(w, results)
	case "json":
		return report.WriteJSON(w, results)
	case "table", "":
		if err := report.WriteSummary(w, results.Summary()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return report.WriteTable(w, results)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func prepareFilters(ctx context.Context, config *Config, logger *zap.Logger) *filtering.Filtering {
	aiFilter, err := prepareAIFilter(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping AI review", zap.Error(err))
		aiFilter = filtering.NewAIReview(&filtering.AIReviewFilterConfig{Enabled: false}, nil)
		aiFilter.Disable(err.Error())
	}

	steps := []filtering.Filter{
		filtering.NewMinScore(config.Filters.MinScore),
		filtering.NewRecommendation(config.Filters.Recommendations),
		aiFilter,
	}

	f := filtering.New(steps, logger)
	for _, status := range f.Describe() {
		logger.Debug("filter configured",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	return f
}

func prepareAIFilter(ctx context.Context, config *AIConfig, logger *zap.Logger) (filtering.Filter, error) {
	if config == nil || !config.Enabled {
		return filtering.NewAIReview(&filtering.AIReviewFilterConfig{
			Enabled: false,
		}, nil), nil
	}

	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai review is enabled")
	}

	reviewer, err := newAIReviewer(ctx, config, logger)
	if err != nil {
		return nil, fmt.Errorf("building ai reviewer: %w", err)
	}

	return filtering.NewAIReview(&filtering.AIReviewFilterConfig{
		Enabled: true,
		Gemini: &filtering.AIGeminiConfig{
			Model:        config.Gemini.Model,
			MaxRetries:   config.Gemini.MaxRetries,
			MaxLogLength: config.Gemini.MaxLogLength,
		},
	}, &filtering.AIReviewFilterDeps{
		Logger:   logger,
		Reviewer: reviewer,
	}), nil
}

func newAIReviewer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Reviewer, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewReviewer(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}
