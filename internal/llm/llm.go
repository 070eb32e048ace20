package llm

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// ErrGenerationFailed wraps any failure to obtain generated text from the
// model endpoint: transport errors, unparseable responses, or responses
// with no candidate.
var ErrGenerationFailed = errors.New("generation failed")

// CompletionClient abstracts the outbound text-generation call. A single
// blocking round trip per invocation; no retries, no streaming.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var codeFence = regexp.MustCompile("```(?:json)?\\s*")

// StripCodeFences removes markdown code-fence markers and surrounding
// whitespace from raw model output. The model sometimes wraps JSON in
// fences despite being told not to.
func StripCodeFences(raw string) string {
	return strings.TrimSpace(codeFence.ReplaceAllString(raw, ""))
}
