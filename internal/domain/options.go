package domain

// ActionOptions carries the single action-dependent parameter used during
// prompt rendering. Each action that takes a parameter has its own variant,
// so only the relevant field can ever be supplied.
type ActionOptions interface {
	// Placeholder returns the template placeholder this option substitutes.
	Placeholder() string
	// Value returns the substitution text. An empty value is treated as
	// absent and leaves the placeholder untouched.
	Value() string
}

// NoOptions is the variant for actions without a secondary parameter.
type NoOptions struct{}

func (NoOptions) Placeholder() string { return "" }
func (NoOptions) Value() string       { return "" }

// TranslateOptions selects the target language for the translate action.
type TranslateOptions struct {
	Language string
}

func (TranslateOptions) Placeholder() string { return "{{language}}" }
func (o TranslateOptions) Value() string     { return o.Language }

// ToneOptions selects the rewrite tone for the change-tone action.
type ToneOptions struct {
	Tone string
}

func (ToneOptions) Placeholder() string { return "{{tone}}" }
func (o ToneOptions) Value() string     { return o.Tone }

// EmailOptions selects the email kind for the draft-email action.
type EmailOptions struct {
	EmailType string
}

func (EmailOptions) Placeholder() string { return "{{emailType}}" }
func (o EmailOptions) Value() string     { return o.EmailType }

// SocialOptions selects the target platform for the draft-social-post action.
type SocialOptions struct {
	Platform string
}

func (SocialOptions) Placeholder() string { return "{{platform}}" }
func (o SocialOptions) Value() string     { return o.Platform }

// OptionFields is the loose option bag accepted at the API boundary. Only
// the field relevant to the requested action is considered; the rest are
// ignored.
type OptionFields struct {
	Language  string `json:"language,omitempty"`
	Tone      string `json:"tone,omitempty"`
	EmailType string `json:"emailType,omitempty"`
	Platform  string `json:"platform,omitempty"`
}

// OptionsForAction narrows a loose option bag down to the typed variant for
// the given action.
func OptionsForAction(action Action, fields OptionFields) ActionOptions {
	switch action {
	case Action_Translate:
		return TranslateOptions{Language: fields.Language}
	case Action_ChangeTone:
		return ToneOptions{Tone: fields.Tone}
	case Action_DraftEmail:
		return EmailOptions{EmailType: fields.EmailType}
	case Action_DraftSocialPost:
		return SocialOptions{Platform: fields.Platform}
	default:
		return NoOptions{}
	}
}
