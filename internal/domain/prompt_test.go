package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTemplate_CoversEveryAction(t *testing.T) {
	for _, action := range Actions() {
		template, err := ResolveTemplate(action)
		assert.NoError(t, err, "action %s", action)
		assert.NotEmpty(t, template, "action %s", action)
		assert.Equal(t, 1, strings.Count(template, "{{content}}"), "action %s", action)
	}
}

func TestResolveTemplate_UnknownAction(t *testing.T) {
	_, err := ResolveTemplate(Action("explode"))
	assert.IsType(t, &UnknownActionErr{}, err)
}

func TestRenderPrompt(t *testing.T) {
	tests := map[string]struct {
		action   Action
		content  string
		opts     ActionOptions
		expected string
	}{
		"translate-with-language": {
			action:   Action_Translate,
			content:  "Hello",
			opts:     TranslateOptions{Language: "French"},
			expected: "Translate the following text to French: \n\nHello",
		},
		"summarize-ignores-options": {
			action:   Action_Summarize,
			content:  "Hello world",
			opts:     ToneOptions{Tone: "casual"},
			expected: "Summarize the following text concisely: \n\nHello world",
		},
		"draft-email-with-type": {
			action:   Action_DraftEmail,
			content:  "our new product line",
			opts:     EmailOptions{EmailType: "sales"},
			expected: "Write a sales email about the following: \n\nour new product line",
		},
		"change-tone": {
			action:   Action_ChangeTone,
			content:  "We regret to inform you.",
			opts:     ToneOptions{Tone: "friendly"},
			expected: "Rewrite the following text in a friendly tone, preserving the original meaning: \n\nWe regret to inform you.",
		},
		"missing-option-passes-placeholder-through": {
			action:   Action_Translate,
			content:  "Hello",
			opts:     TranslateOptions{},
			expected: "Translate the following text to {{language}}: \n\nHello",
		},
		"nil-options-pass-placeholder-through": {
			action:   Action_DraftSocialPost,
			content:  "launch day",
			opts:     nil,
			expected: "Create a {{platform}} post about the following topic. Make it engaging and appropriate for the platform: \n\nlaunch day",
		},
		"content-resembling-placeholders-is-not-rescanned": {
			action:   Action_Summarize,
			content:  "Use {{content}} to mark the insertion point",
			opts:     NoOptions{},
			expected: "Summarize the following text concisely: \n\nUse {{content}} to mark the insertion point",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			template, err := ResolveTemplate(tt.action)
			assert.NoError(t, err)

			got := RenderPrompt(template, tt.content, tt.opts)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRenderPrompt_ContentInsertedVerbatim(t *testing.T) {
	content := "  line one\n\tline two  "
	for _, action := range Actions() {
		template, err := ResolveTemplate(action)
		assert.NoError(t, err)

		got := RenderPrompt(template, content, NoOptions{})
		assert.Contains(t, got, content, "action %s", action)
		assert.NotContains(t, got, "{{content}}", "action %s", action)
	}
}

func TestRenderPrompt_Idempotent(t *testing.T) {
	template, err := ResolveTemplate(Action_Translate)
	assert.NoError(t, err)

	opts := TranslateOptions{Language: "Japanese"}
	first := RenderPrompt(template, "Good morning", opts)
	second := RenderPrompt(template, "Good morning", opts)
	assert.Equal(t, first, second)
}
