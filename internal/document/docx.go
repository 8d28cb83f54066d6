package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBodyPart = "word/document.xml"

var errNoDocumentPart = errors.New("no " + docxBodyPart + " found in archive")

// extractDOCX returns the body paragraphs of a word-processing document,
// one per line. Empty paragraphs become empty lines. Paragraphs nested in
// tables are not body paragraphs and are skipped.
func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	var part *zip.File
	for _, f := range archive.File {
		if f.Name == docxBodyPart {
			part = f
			break
		}
	}

	if part == nil {
		return "", errNoDocumentPart
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", docxBodyPart, err)
	}
	defer rc.Close()

	paragraphs, err := readParagraphs(rc)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", docxBodyPart, err)
	}

	var builder strings.Builder
	for _, p := range paragraphs {
		builder.WriteString(p)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// Subtrees that never contribute to paragraph text: properties (tab stop
// definitions live in pPr), deleted revisions, and drawings or text boxes
// anchored inside a run.
var skippedElements = map[string]bool{
	"pPr":              true,
	"rPr":              true,
	"del":              true,
	"drawing":          true,
	"pict":             true,
	"AlternateContent": true,
}

// readParagraphs collects the text of the runs that are direct content of
// each body paragraph. Text, tab and break elements count only when their
// parent is a run.
func readParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		stack      []string
		current    strings.Builder
		inBody     bool
		inText     bool
		skipDepth  int
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			name := t.Name.Local
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, name)

			if !inBody {
				if name == "p" && parent == "body" {
					inBody = true
					current.Reset()
				}
				continue
			}

			if skipDepth > 0 || skippedElements[name] {
				skipDepth++
				continue
			}

			if parent != "r" {
				continue
			}

			switch name {
			case "t":
				inText = true
			case "tab":
				current.WriteString("\t")
			case "br", "cr":
				current.WriteString("\n")
			}

		case xml.EndElement:
			name := t.Name.Local
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

			if skipDepth > 0 {
				skipDepth--
				continue
			}

			switch {
			case name == "p" && inBody && len(stack) > 0 && stack[len(stack)-1] == "body":
				paragraphs = append(paragraphs, current.String())
				inBody = false
			case name == "t":
				inText = false
			}

		case xml.CharData:
			if inBody && inText && skipDepth == 0 {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
