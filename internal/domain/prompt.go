package domain

import "strings"

// AssistantSystemPrompt frames every outbound request as a writing/content
// assistant exchange.
const AssistantSystemPrompt = "You are a helpful writing assistant that helps improve text and generate content."

const (
	// DefaultTemperature is the sampling temperature used for every action.
	DefaultTemperature = 0.7
	// DefaultMaxOutputTokens caps the completion size for every action.
	DefaultMaxOutputTokens = 1500
)

// contentPlaceholder appears exactly once in every template.
const contentPlaceholder = "{{content}}"

var promptTemplates = map[Action]string{
	// Writing & editing tools
	Action_ContinueWriting:  "Continue the following text in a natural way: \n\n{{content}}",
	Action_Summarize:        "Summarize the following text concisely: \n\n{{content}}",
	Action_FixGrammar:       "Fix the grammar and spelling errors in the following text: \n\n{{content}}",
	Action_Translate:        "Translate the following text to {{language}}: \n\n{{content}}",
	Action_ImproveWriting:   "Improve the writing of the following text to make it more professional and clear: \n\n{{content}}",
	Action_MakeShorter:      "Make the following text shorter while preserving its meaning: \n\n{{content}}",
	Action_MakeLonger:       "Expand the following text to make it more detailed and comprehensive: \n\n{{content}}",
	Action_ChangeTone:       "Rewrite the following text in a {{tone}} tone, preserving the original meaning: \n\n{{content}}",
	Action_SimplifyLanguage: "Rewrite the following text using simpler language to make it more accessible and easier to understand: \n\n{{content}}",

	// Content generation
	Action_GenerateOutline: "Create a detailed outline for the following topic: \n\n{{content}}",
	Action_BrainstormIdeas: "Generate a list of creative ideas related to the following topic: \n\n{{content}}",
	Action_CreateList:      "Create a comprehensive list about the following topic: \n\n{{content}}",
	Action_CreateTable:     "Create a well-structured table with relevant data about: \n\n{{content}}",
	Action_DraftEmail:      "Write a {{emailType}} email about the following: \n\n{{content}}",
	Action_DraftSocialPost: "Create a {{platform}} post about the following topic. Make it engaging and appropriate for the platform: \n\n{{content}}",
}

// ResolveTemplate returns the prompt template for the given action. It is
// total over the enumerated action set.
func ResolveTemplate(action Action) (string, error) {
	template, ok := promptTemplates[action]
	if !ok {
		return "", NewUnknownActionErr(string(action))
	}
	return template, nil
}

// RenderPrompt substitutes the template placeholders with the raw content and
// the action-specific option. Substitution is literal, first occurrence only,
// and never re-scans inserted text. An absent or empty option leaves its
// placeholder verbatim in the output.
func RenderPrompt(template, content string, opts ActionOptions) string {
	prompt := strings.Replace(template, contentPlaceholder, content, 1)

	if opts == nil {
		return prompt
	}
	if placeholder, value := opts.Placeholder(), opts.Value(); placeholder != "" && value != "" {
		prompt = strings.Replace(prompt, placeholder, value, 1)
	}
	return prompt
}
