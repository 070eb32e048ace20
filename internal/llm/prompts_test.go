package llm

import (
	"strings"
	"testing"
)

func TestSummaryPromptEmbedsContent(t *testing.T) {
	prompt := SummaryPrompt("photosynthesis converts light into energy")
	if !strings.Contains(prompt, "photosynthesis converts light into energy") {
		t.Fatal("expected content embedded verbatim")
	}
	if strings.Contains(prompt, "{{CONTENT}}") {
		t.Fatal("placeholder left unreplaced")
	}
}

func TestFlashcardsPromptDemandsRawJSON(t *testing.T) {
	prompt := FlashcardsPrompt("cell biology notes")
	if !strings.Contains(prompt, "10 educational flashcards") {
		t.Fatal("expected flashcard count instruction")
	}
	if !strings.Contains(prompt, "ONLY valid JSON") {
		t.Fatal("expected raw JSON instruction")
	}
	if !strings.Contains(prompt, "cell biology notes") {
		t.Fatal("expected content embedded verbatim")
	}
}

func TestAnswerPromptEmbedsQuestionAndContent(t *testing.T) {
	prompt := AnswerPrompt("the mitochondria is the powerhouse", "What is the powerhouse?")
	if !strings.Contains(prompt, "Question: What is the powerhouse?") {
		t.Fatal("expected question embedded")
	}
	if !strings.Contains(prompt, "the mitochondria is the powerhouse") {
		t.Fatal("expected content embedded")
	}
	if !strings.Contains(prompt, "If the answer is not in the document, say so.") {
		t.Fatal("expected grounding instruction")
	}
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n[{\"question\":\"Q\",\"answer\":\"A\"}]\n```", `[{"question":"Q","answer":"A"}]`},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"no fence", ` [{"question":"Q","answer":"A"}] `, `[{"question":"Q","answer":"A"}]`},
		{"fence without newline", "```json[]```", "[]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFences(tc.in); got != tc.want {
				t.Fatalf("StripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
