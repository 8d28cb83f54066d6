package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spigell/cv-screener/internal/screening"
)

// WriteCSV writes a header row followed by one row per result, in the current order.
func WriteCSV(w io.Writer, results *screening.Results) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	if results != nil {
		for _, item := range results.Items {
			if err := cw.Write(Row(item)); err != nil {
				return fmt.Errorf("write csv row for %s: %w", item.Document, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
