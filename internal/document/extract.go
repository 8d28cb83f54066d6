package document

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/logger"
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// Extractor turns raw document bytes into plain text.
type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}

	return &Extractor{logger: log}
}

// Extract returns the plain text of the document.
// Unsupported formats yield an empty string and no error. Content that cannot
// be decoded yields an empty string and an *ExtractionError; a panic inside a
// parser is reported the same way and never escapes.
func (e *Extractor) Extract(ctx context.Context, doc Document) (text string, err error) {
	format := doc.Format()
	log := logger.WithFields(e.logger, logger.DocumentFields(doc.Filename, string(format))...)

	if format == FormatUnsupported {
		log.Debug("skipping unsupported document")
		return "", nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{
				Filename: doc.Filename,
				Format:   format,
				Err:      fmt.Errorf("parser panic: %v", r),
			}
		}
	}()

	switch format {
	case FormatPDF:
		text, err = extractPDF(doc.Data)
	case FormatDOCX:
		text, err = extractDOCX(doc.Data)
	case FormatText:
		text, err = extractText(doc.Data)
	}

	if err != nil {
		return "", &ExtractionError{Filename: doc.Filename, Format: format, Err: err}
	}

	log.Debug("document text extracted", zap.Int("text_length", utf8.RuneCountInString(text)))

	return text, nil
}

func extractText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}

	return string(data), nil
}
