package extract

import (
	"errors"
	"strings"
	"testing"
)

func TestTextPlainPassthrough(t *testing.T) {
	input := "The sky is blue.\nGrass is green.\n"
	got, err := Text([]byte(input), "text/plain")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != input {
		t.Fatalf("expected verbatim passthrough, got %q", got)
	}
}

func TestTextPlainMediaTypeParametersIgnored(t *testing.T) {
	got, err := Text([]byte("hello"), "text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "hello" {
		t.Fatalf("expected hello, got %q", got)
	}
}

func TestTextUnsupportedMediaType(t *testing.T) {
	_, err := Text([]byte("GIF89a"), "image/gif")
	if !errors.Is(err, ErrUnsupportedMediaType) {
		t.Fatalf("expected ErrUnsupportedMediaType, got %v", err)
	}
	if !strings.Contains(err.Error(), "image/gif") {
		t.Fatalf("expected declared type in error, got %v", err)
	}
}

func TestTextMalformedPDF(t *testing.T) {
	_, err := Text([]byte("definitely not a pdf"), "application/pdf")
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestStripRestrictionsFallsBackOnGarbage(t *testing.T) {
	data := []byte("not a pdf either")
	got := stripRestrictions(data)
	if string(got) != string(data) {
		t.Fatalf("expected original bytes back, got %q", got)
	}
}
