package document

import (
	"fmt"
)

// ExtractionError reports a document whose content could not be decoded.
// It is recoverable: the document's text is treated as empty.
type ExtractionError struct {
	Filename string
	Format   Format
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s text from %q: %v", e.Format, e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
