package domain

// Action identifies one of the fixed text-transformation or
// content-generation behaviors.
type Action string

const (
	// Writing & editing tools
	Action_ContinueWriting  Action = "continue-writing"
	Action_Summarize        Action = "summarize"
	Action_FixGrammar       Action = "fix-grammar"
	Action_Translate        Action = "translate"
	Action_ImproveWriting   Action = "improve-writing"
	Action_MakeShorter      Action = "make-shorter"
	Action_MakeLonger       Action = "make-longer"
	Action_ChangeTone       Action = "change-tone"
	Action_SimplifyLanguage Action = "simplify-language"

	// Content generation
	Action_GenerateOutline Action = "generate-outline"
	Action_BrainstormIdeas Action = "brainstorm-ideas"
	Action_CreateList      Action = "create-list"
	Action_CreateTable     Action = "create-table"
	Action_DraftEmail      Action = "draft-email"
	Action_DraftSocialPost Action = "draft-social-post"
)

// ActionFamily groups actions for UI purposes. Family does not influence
// pipeline behavior.
type ActionFamily string

const (
	ActionFamily_WritingTools      ActionFamily = "writing-tools"
	ActionFamily_ContentGeneration ActionFamily = "content-generation"
)

var writingToolsActions = []Action{
	Action_ContinueWriting,
	Action_Summarize,
	Action_FixGrammar,
	Action_Translate,
	Action_ImproveWriting,
	Action_MakeShorter,
	Action_MakeLonger,
	Action_ChangeTone,
	Action_SimplifyLanguage,
}

var contentGenerationActions = []Action{
	Action_GenerateOutline,
	Action_BrainstormIdeas,
	Action_CreateList,
	Action_CreateTable,
	Action_DraftEmail,
	Action_DraftSocialPost,
}

// Actions returns every action in catalog order: writing tools first,
// content generation second.
func Actions() []Action {
	all := make([]Action, 0, len(writingToolsActions)+len(contentGenerationActions))
	all = append(all, writingToolsActions...)
	all = append(all, contentGenerationActions...)
	return all
}

// Family returns the family an action belongs to. Every action belongs to
// exactly one family.
func (a Action) Family() (ActionFamily, error) {
	for _, wa := range writingToolsActions {
		if a == wa {
			return ActionFamily_WritingTools, nil
		}
	}
	for _, ca := range contentGenerationActions {
		if a == ca {
			return ActionFamily_ContentGeneration, nil
		}
	}
	return "", NewUnknownActionErr(string(a))
}

// Valid reports whether the action is part of the enumerated set.
func (a Action) Valid() bool {
	_, err := a.Family()
	return err == nil
}

// ParseAction converts a raw identifier into an Action, rejecting anything
// outside the enumerated set.
func ParseAction(identifier string) (Action, error) {
	a := Action(identifier)
	if !a.Valid() {
		return "", NewUnknownActionErr(identifier)
	}
	return a, nil
}
