package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/cv-screener/internal/vocabulary"
)

const (
	app = "cv-screener"

	defaultGeminiModel  = "gemini-2.5-pro"
	defaultMaxRetries   = 3
	defaultMaxLogLength = 200
)

type Config struct {
	Requirements *RequirementsConfig `mapstructure:"requirements"`
	Vocabulary   *VocabularyConfig   `mapstructure:"vocabulary"`
	Workers      int                 `mapstructure:"workers" validate:"gte=0"`
	Filters      *FiltersConfig      `mapstructure:"filters"`
	Output       *OutputConfig       `mapstructure:"output"`
	AI           *AIConfig           `mapstructure:"ai"`
}

type RequirementsConfig struct {
	Skills        []string `mapstructure:"skills"`
	MinExperience int      `mapstructure:"min-experience" validate:"gte=0"`
}

type VocabularyConfig struct {
	File string `mapstructure:"file"`
	// Skills accepts the same shapes as a vocabulary file's skills key.
	Skills any `mapstructure:"skills"`
}

type FiltersConfig struct {
	MinScore        float64  `mapstructure:"min-score" validate:"gte=0,lte=100"`
	Recommendations []string `mapstructure:"recommendations"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=table csv json"`
	File   string `mapstructure:"file"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries" validate:"gte=0"`
	MaxLogLength int    `mapstructure:"max-log-length" validate:"gte=0"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-screener extracts candidate details from resumes and ranks them against a job profile",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	setDefaults(viper.GetViper())

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("vocabulary", "", "a file with the skill vocabulary (default is the built-in list)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("vocabulary.file", rootCmd.PersistentFlags().Lookup("vocabulary"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("requirements.skills", []string{})
	v.SetDefault("requirements.min-experience", 0)
	v.SetDefault("vocabulary.file", "")
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("filters.min-score", 0)
	v.SetDefault("filters.recommendations", []string{})
	v.SetDefault("output.format", "table")
	v.SetDefault("output.file", "")
	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.gemini.model", defaultGeminiModel)
	v.SetDefault("ai.gemini.max-retries", defaultMaxRetries)
	v.SetDefault("ai.gemini.max-log-length", defaultMaxLogLength)
}

func initConfig() {
	// Config is needed only for commands working with resumes.
	if screenCmd.CalledAs() == "" && skillsCmd.CalledAs() == "" {
		return
	}

	// .env is optional; it usually carries GEMINI_API_KEY.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("loading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Flags alone are enough when no config file is present.
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		// We can't proceed if the config file parsed with error.
		log.Fatal(err)
	}
}

func getConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		return nil, errors.New("config is empty")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration before anything is screened.
// A negative minimum experience never reaches the scoring engine.
func (c *Config) Validate() error {
	if c.Requirements == nil {
		c.Requirements = &RequirementsConfig{}
	}
	if c.Filters == nil {
		c.Filters = &FiltersConfig{}
	}
	if c.Output == nil {
		c.Output = &OutputConfig{Format: "table"}
	}
	if c.AI == nil {
		c.AI = &AIConfig{}
	}

	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s=%s, got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.AI.Enabled && c.AI.Gemini == nil {
		return errors.New("invalid configuration: ai.gemini is required when ai is enabled")
	}

	return nil
}

// buildVocabulary resolves the skill vocabulary: a file wins over an inline
// list, and the built-in list is used when neither is set.
func buildVocabulary(cfg *VocabularyConfig) (*vocabulary.Vocabulary, string, error) {
	if cfg == nil {
		return vocabulary.Default(), "built-in", nil
	}

	if file := strings.TrimSpace(cfg.File); file != "" {
		vocab, err := vocabulary.Load(file)
		if err != nil {
			return nil, "", err
		}
		return vocab, file, nil
	}

	if cfg.Skills != nil {
		entries, err := vocabulary.Decode(cfg.Skills)
		if err != nil {
			return nil, "", fmt.Errorf("decoding vocabulary.skills: %w", err)
		}
		vocab := vocabulary.New(entries)
		if vocab.Len() == 0 {
			return nil, "", errors.New("vocabulary.skills has no usable entries")
		}
		return vocab, "config", nil
	}

	return vocabulary.Default(), "built-in", nil
}
