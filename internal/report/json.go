package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spigell/cv-screener/internal/screening"
)

type jsonReport struct {
	*screening.Results
	Summary screening.Summary `json:"summary"`
}

func WriteJSON(w io.Writer, results *screening.Results) error {
	if results == nil {
		results = &screening.Results{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{Results: results, Summary: results.Summary()}); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

// DumpToTmpFile writes the JSON report to a new temporary file and returns its name.
func DumpToTmpFile(results *screening.Results) (string, error) {
	file, err := os.CreateTemp("", "screening_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := WriteJSON(file, results); err != nil {
		return "", err
	}
	return file.Name(), nil
}
