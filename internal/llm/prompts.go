package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/summary.txt
	summaryTemplate string
	//go:embed prompts/flashcards.txt
	flashcardsTemplate string
	//go:embed prompts/answer.txt
	answerTemplate string
)

// SummaryPrompt renders the summarization prompt over the full document content.
func SummaryPrompt(content string) string {
	return strings.ReplaceAll(summaryTemplate, "{{CONTENT}}", content)
}

// FlashcardsPrompt renders the flashcard-generation prompt over the full
// document content. The template demands a raw JSON array of ten
// question/answer pairs with no surrounding prose.
func FlashcardsPrompt(content string) string {
	return strings.ReplaceAll(flashcardsTemplate, "{{CONTENT}}", content)
}

// AnswerPrompt renders the question-answering prompt over the caller's
// question and the full document content.
func AnswerPrompt(content, question string) string {
	replacer := strings.NewReplacer(
		"{{QUESTION}}", question,
		"{{CONTENT}}", content,
	)
	return replacer.Replace(answerTemplate)
}
