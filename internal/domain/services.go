package domain

// TodoDraft is a todo item proposed by the deterministic generation stub,
// before it is persisted with an id and timestamps.
type TodoDraft struct {
	Title       string
	Description string
	Priority    TodoPriority
}

// GenerateTodoDrafts produces placeholder todos derived from a truncated
// prompt. It is a deterministic stand-in for a model call and never contacts
// the LLM client.
func GenerateTodoDrafts(prompt string) []TodoDraft {
	return []TodoDraft{
		{
			Title:       `Task related to "` + truncate(prompt, 20) + `..."`,
			Description: "This is the first task generated from your prompt about " + truncate(prompt, 30),
			Priority:    TodoPriority_MEDIUM,
		},
		{
			Title:       "Research " + truncate(prompt, 15),
			Description: "Research task generated by AI",
			Priority:    TodoPriority_HIGH,
		},
		{
			Title:       "Review " + truncate(prompt, 15),
			Description: "Review task generated by AI",
			Priority:    TodoPriority_LOW,
		},
		{
			Title:       "Implement " + truncate(prompt, 15),
			Description: "Implementation task generated by AI",
		},
	}
}

// SuggestFollowUpDrafts proposes next-step todos after one is completed.
// Deterministic placeholder, same boundary as GenerateTodoDrafts.
func SuggestFollowUpDrafts(completed Todo) []TodoDraft {
	return []TodoDraft{
		{
			Title:       "Follow-up on: " + completed.Title,
			Description: `Next step after completing "` + completed.Title + `"`,
			Priority:    TodoPriority_MEDIUM,
		},
		{
			Title:       "Review outcome of: " + completed.Title,
			Description: "Review the results of the completed task",
			Priority:    TodoPriority_LOW,
		},
	}
}

// truncate cuts s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
