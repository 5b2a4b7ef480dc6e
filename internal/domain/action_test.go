package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	tests := map[string]struct {
		identifier     string
		expectedAction Action
		expectErr      bool
	}{
		"writing-tool":       {identifier: "summarize", expectedAction: Action_Summarize},
		"content-generation": {identifier: "draft-email", expectedAction: Action_DraftEmail},
		"unknown":            {identifier: "format-disk", expectErr: true},
		"empty":              {identifier: "", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAction(tt.identifier)
			if tt.expectErr {
				assert.IsType(t, &UnknownActionErr{}, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAction, got)
		})
	}
}

func TestAction_Family(t *testing.T) {
	families := map[Action]ActionFamily{}
	for _, action := range Actions() {
		family, err := action.Family()
		assert.NoError(t, err)
		families[action] = family
	}

	// every action belongs to exactly one family
	assert.Len(t, families, 15)
	assert.Equal(t, ActionFamily_WritingTools, families[Action_Translate])
	assert.Equal(t, ActionFamily_ContentGeneration, families[Action_CreateTable])
}

func TestOptionsForAction(t *testing.T) {
	fields := OptionFields{
		Language:  "German",
		Tone:      "formal",
		EmailType: "follow-up",
		Platform:  "linkedin",
	}

	assert.Equal(t, TranslateOptions{Language: "German"}, OptionsForAction(Action_Translate, fields))
	assert.Equal(t, ToneOptions{Tone: "formal"}, OptionsForAction(Action_ChangeTone, fields))
	assert.Equal(t, EmailOptions{EmailType: "follow-up"}, OptionsForAction(Action_DraftEmail, fields))
	assert.Equal(t, SocialOptions{Platform: "linkedin"}, OptionsForAction(Action_DraftSocialPost, fields))
	assert.Equal(t, NoOptions{}, OptionsForAction(Action_Summarize, fields))
}
