package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spigell/cv-screener/internal/screening"
)

var tableColumns = Columns[:6]

// WriteTable renders the ranked overview without the skill lists.
func WriteTable(w io.Writer, results *screening.Results) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(tableColumns, "\t"))
	if results != nil {
		for _, item := range results.Items {
			fmt.Fprintln(tw, strings.Join(Row(item)[:len(tableColumns)], "\t"))
		}
	}

	return tw.Flush()
}
