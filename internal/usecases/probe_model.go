package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

const (
	// ProbeGreeting is the minimal prompt sent to verify a model responds
	// under the current credential.
	ProbeGreeting = "Hello!"
	// ProbeMaxTokens caps the probe completion so the check stays cheap.
	ProbeMaxTokens = 5
)

// ProbeModel defines the interface for the ProbeModel use case. It checks
// whether a catalog model is usable with the current credential and records
// the outcome in the session availability set.
type ProbeModel interface {
	Execute(ctx context.Context, modelID string) (bool, error)
}

// ProbeModelImpl is the implementation of the ProbeModel use case.
type ProbeModelImpl struct {
	session     *domain.Session
	llmClient   domain.LLMClient
	credentials domain.CredentialChecker
}

// NewProbeModelImpl creates a new instance of ProbeModelImpl.
func NewProbeModelImpl(session *domain.Session, llmClient domain.LLMClient, credentials domain.CredentialChecker) ProbeModelImpl {
	return ProbeModelImpl{
		session:     session,
		llmClient:   llmClient,
		credentials: credentials,
	}
}

// Execute probes the model with a minimal request. A model that answers is
// marked available for the rest of the session; a rejection reports false
// without error since unavailability is an expected outcome.
func (pmi ProbeModelImpl) Execute(ctx context.Context, modelID string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if _, err := domain.LookupModel(modelID); telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	if !pmi.credentials.IsConfigured() {
		err := domain.NewMissingCredentialErr()
		telemetry.RecordErrorAndStatus(span, err)
		return false, err
	}

	maxTokens := ProbeMaxTokens
	resp, err := pmi.llmClient.Chat(spanCtx, domain.ChatRequest{
		Model: modelID,
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRole_User, Content: ProbeGreeting},
		},
		MaxTokens: &maxTokens,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, nil
	}

	RecordLLMTokensUsed(spanCtx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	pmi.session.MarkAvailable(modelID)
	return true, nil
}

// InitProbeModel initializes the ProbeModel use case and registers it in the dependency container.
type InitProbeModel struct {
	Session     *domain.Session          `resolve:""`
	LLMClient   domain.LLMClient         `resolve:""`
	Credentials domain.CredentialChecker `resolve:""`
}

// Initialize initializes the ProbeModelImpl use case and registers it in the dependency container.
func (ipm InitProbeModel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProbeModel](NewProbeModelImpl(ipm.Session, ipm.LLMClient, ipm.Credentials))
	return ctx, nil
}
