package prompts

import (
	"strings"
	"testing"
)

func TestNewPromptManagerLoadsTemplates(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager returned error: %v", err)
	}

	modes := pm.GetTemplates()
	found := map[string]bool{}
	for _, m := range modes {
		found[m] = true
	}
	if !found["questions"] || !found["evaluate"] {
		t.Fatalf("expected questions and evaluate templates, got %v", modes)
	}
}

func TestBuildPrompt(t *testing.T) {
	pm, err := NewPromptManager()
	if err != nil {
		t.Fatalf("NewPromptManager returned error: %v", err)
	}

	t.Run("substitutes placeholders", func(t *testing.T) {
		prompt, err := pm.BuildPrompt("questions", "senior", map[string]string{
			"PositionTitle":       "Backend Engineer",
			"Seniority":           "senior",
			"PositionDescription": "Builds APIs",
			"Count":               "3",
			"Kind":                "open_ended",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(prompt, "Backend Engineer") {
			t.Fatalf("position title not substituted:\n%s", prompt)
		}
		if strings.Contains(prompt, "{{.") {
			t.Fatalf("unresolved placeholder left in prompt:\n%s", prompt)
		}
	})

	t.Run("every difficulty has a questions variant", func(t *testing.T) {
		for _, variant := range []string{"junior", "intermediate", "senior"} {
			if _, err := pm.BuildPrompt("questions", variant, map[string]string{}); err != nil {
				t.Fatalf("variant %s missing: %v", variant, err)
			}
		}
	})

	t.Run("evaluate default variant", func(t *testing.T) {
		prompt, err := pm.BuildPrompt("evaluate", "default", map[string]string{
			"PositionTitle": "Backend Engineer",
			"Transcript":    "1. [q1] What is a channel?\n   Answer: a pipe",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(prompt, "What is a channel?") {
			t.Fatalf("transcript not substituted:\n%s", prompt)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		if _, err := pm.BuildPrompt("nope", "default", nil); err == nil {
			t.Fatalf("expected error for unknown mode")
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		if _, err := pm.BuildPrompt("questions", "expert", nil); err == nil {
			t.Fatalf("expected error for unknown variant")
		}
	})
}
