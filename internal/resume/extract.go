// Package resume extracts plain text from uploaded resume documents.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat means the bytes could not be parsed as a PDF.
	ErrUnsupportedFormat = errors.New("resume: unsupported document format")
	// ErrEmptyDocument means the PDF parsed but contained no extractable text.
	ErrEmptyDocument = errors.New("resume: document contains no text")
)

// Extractor parses PDF uploads into plain text.
type Extractor struct{}

// ExtractText parses the uploaded document and returns its plain text.
func (Extractor) ExtractText(data []byte) (text string, err error) {
	// The pdf parser panics on some malformed inputs rather than returning
	// an error; treat a panic the same as a parse failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrUnsupportedFormat, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return "", ErrEmptyDocument
	}
	return out, nil
}
