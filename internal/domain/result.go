package domain

// ActionResult is the normalized outcome of one action-processing request.
// Every pipeline entry point reports through this shape, including the
// deterministic stub generators that never contact a model.
type ActionResult struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// SuccessResult wraps generated content in a successful ActionResult.
func SuccessResult(content string) ActionResult {
	return ActionResult{Success: true, Content: content}
}

// FailureResult wraps an error in a failed ActionResult.
func FailureResult(err error) ActionResult {
	return ActionResult{Success: false, Error: err.Error()}
}
