package document

import (
	"strings"
)

// Format is a document container format recognized by the extractor.
type Format string

const (
	FormatPDF         Format = "pdf"
	FormatDOCX        Format = "docx"
	FormatText        Format = "txt"
	FormatUnsupported Format = "unsupported"
)

// Document is a single uploaded resume.
type Document struct {
	Filename string
	Data     []byte
}

// FormatOf returns the container format for the filename.
// Matching is by suffix and is case-sensitive: "CV.PDF" is unsupported.
func FormatOf(filename string) Format {
	switch {
	case strings.HasSuffix(filename, ".pdf"):
		return FormatPDF
	case strings.HasSuffix(filename, ".docx"):
		return FormatDOCX
	case strings.HasSuffix(filename, ".txt"):
		return FormatText
	default:
		return FormatUnsupported
	}
}

func (d Document) Format() Format {
	return FormatOf(d.Filename)
}

func (d Document) Supported() bool {
	return d.Format() != FormatUnsupported
}
