package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/cv-screener/internal/vocabulary"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Print the skill vocabulary grouped by category",
	Run: func(_ *cobra.Command, _ []string) {
		config, err := getConfig(viper.GetViper())
		if err != nil {
			log.Fatalf("getting a config: %s", err)
		}

		vocab, source, err := buildVocabulary(config.Vocabulary)
		if err != nil {
			log.Fatalf("loading the skill vocabulary: %s", err)
		}

		if err := printVocabulary(os.Stdout, vocab, source); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}

func printVocabulary(w io.Writer, vocab *vocabulary.Vocabulary, source string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%d skills (%s)\n", vocab.Len(), source)

	order, grouped := vocab.Categories()
	for _, category := range order {
		fmt.Fprintf(tw, "%s\t%s\n", category, strings.Join(grouped[category], ", "))
	}

	return tw.Flush()
}
