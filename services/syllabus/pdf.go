// Package syllabus turns uploaded syllabus documents into plain text.
package syllabus

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const pdfExtension = ".pdf"

// ErrEmptyDocument is returned for a zero-length upload.
var ErrEmptyDocument = errors.New("empty document")

// TextExtractor extracts the plain text of one document.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// IsPDFFilename reports whether name carries a .pdf extension, ignoring case.
func IsPDFFilename(name string) bool {
	return strings.EqualFold(filepath.Ext(strings.TrimSpace(name)), pdfExtension)
}

// PDFExtractor extracts text from PDF bytes with ledongthuc/pdf.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// pageSource is the part of *pdf.Reader the extractor walks.
type pageSource interface {
	NumPage() int
	PageText(num int) (string, error)
}

type readerPages struct {
	reader *pdf.Reader
}

func (r readerPages) NumPage() int { return r.reader.NumPage() }

func (r readerPages) PageText(num int) (string, error) {
	page := r.reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// ExtractText concatenates the text of every page in order. Pages without
// extractable text contribute nothing. The PDF library panics on some
// malformed inputs; those panics are reported as errors.
func (e *PDFExtractor) ExtractText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF reader: %w", err)
	}
	return concatPages(readerPages{reader: reader})
}

func concatPages(src pageSource) (string, error) {
	var sb strings.Builder
	for i := 1; i <= src.NumPage(); i++ {
		pageText, err := src.PageText(i)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}
