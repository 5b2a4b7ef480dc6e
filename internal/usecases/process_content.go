package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// ProcessContent defines the interface for the ProcessContent use case. It
// runs one action over one piece of content through the configured LLM and
// settles the session request state around the call.
type ProcessContent interface {
	Execute(ctx context.Context, action domain.Action, content string, opts domain.ActionOptions) domain.ActionResult
}

// ProcessContentImpl is the implementation of the ProcessContent use case.
type ProcessContentImpl struct {
	session     *domain.Session
	llmClient   domain.LLMClient
	credentials domain.CredentialChecker
}

// NewProcessContentImpl creates a new instance of ProcessContentImpl.
func NewProcessContentImpl(session *domain.Session, llmClient domain.LLMClient, credentials domain.CredentialChecker) ProcessContentImpl {
	return ProcessContentImpl{
		session:     session,
		llmClient:   llmClient,
		credentials: credentials,
	}
}

// Execute runs the action over the content. At most one request is in flight
// per session; a second call while one is processing fails immediately without
// touching the pipeline. All pipeline failures are folded into the returned
// result rather than an error, so callers always get a settled outcome.
func (pci ProcessContentImpl) Execute(ctx context.Context, action domain.Action, content string, opts domain.ActionOptions) domain.ActionResult {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	token, err := pci.session.BeginRequest()
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.FailureResult(err)
	}

	result, pipelineErr := pci.process(spanCtx, action, content, opts)
	telemetry.RecordErrorAndStatus(span, pipelineErr)

	pci.session.CompleteRequest(token, result.Success)
	return result
}

func (pci ProcessContentImpl) process(ctx context.Context, action domain.Action, content string, opts domain.ActionOptions) (domain.ActionResult, error) {
	if strings.TrimSpace(content) == "" {
		err := domain.NewEmptyContentErr("no content to process")
		return domain.FailureResult(err), err
	}

	if !pci.credentials.IsConfigured() {
		err := domain.NewMissingCredentialErr()
		return domain.FailureResult(err), err
	}

	template, err := domain.ResolveTemplate(action)
	if err != nil {
		return domain.FailureResult(err), err
	}
	prompt := domain.RenderPrompt(template, content, opts)

	temperature := domain.DefaultTemperature
	maxTokens := domain.DefaultMaxOutputTokens
	resp, err := pci.llmClient.Chat(ctx, domain.ChatRequest{
		Model: pci.session.SelectedModel(),
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRole_System, Content: domain.AssistantSystemPrompt},
			{Role: domain.ChatRole_User, Content: prompt},
		},
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return domain.FailureResult(err), err
	}

	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	return domain.SuccessResult(resp.Content), nil
}

// InitProcessContent initializes the ProcessContent use case and registers it in the dependency container.
type InitProcessContent struct {
	Session     *domain.Session          `resolve:""`
	LLMClient   domain.LLMClient         `resolve:""`
	Credentials domain.CredentialChecker `resolve:""`
}

// Initialize initializes the ProcessContentImpl use case and registers it in the dependency container.
func (ipc InitProcessContent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProcessContent](NewProcessContentImpl(ipc.Session, ipc.LLMClient, ipc.Credentials))
	return ctx, nil
}
