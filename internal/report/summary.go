package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spigell/cv-screener/internal/screening"
)

func WriteSummary(w io.Writer, s screening.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Total Candidates\t%d\n", s.Total)
	fmt.Fprintf(tw, "Strong Hires\t%d\n", s.StrongHires)
	fmt.Fprintf(tw, "Interviews\t%d\n", s.Interviews)
	fmt.Fprintf(tw, "Rejects\t%d\n", s.Rejects)
	fmt.Fprintf(tw, "Average Score\t%s\n", formatScore(s.AverageScore))
	if s.Warnings > 0 {
		fmt.Fprintf(tw, "Unreadable Documents\t%d\n", s.Warnings)
	}

	return tw.Flush()
}
