package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	mimePDF  = "application/pdf"
	mimeText = "text/plain"
)

var (
	// ErrUnsupportedMediaType is returned for declared media types this
	// extractor does not handle.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrExtractionFailed is returned when a supported payload cannot be parsed.
	ErrExtractionFailed = errors.New("extraction failed")
)

// Text extracts plain text from an uploaded payload based on its declared
// media type. PDF payloads with no extractable text yield an empty string,
// not an error.
func Text(data []byte, declaredMediaType string) (string, error) {
	switch normalizeMediaType(declaredMediaType) {
	case mimeText:
		return string(data), nil
	case mimePDF:
		return extractPDF(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, declaredMediaType)
	}
}

func extractPDF(data []byte) (string, error) {
	data = stripRestrictions(data)

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// stripRestrictions attempts to remove owner-password restrictions that do
// not require a user password. Failures (including "not encrypted") fall
// back to the original bytes.
func stripRestrictions(data []byte) []byte {
	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(data), &out, nil); err != nil {
		return data
	}
	if out.Len() == 0 {
		return data
	}
	return out.Bytes()
}

func normalizeMediaType(mediaType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mediaType, ";")[0]))
}
