package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// AssistantStatus is a point-in-time snapshot of the assistant pipeline.
type AssistantStatus struct {
	CredentialConfigured bool
	SelectedModel        string
	Phase                domain.RequestPhase
}

// GetAssistantStatus defines the interface for the GetAssistantStatus use case.
type GetAssistantStatus interface {
	Query(ctx context.Context) AssistantStatus
}

// GetAssistantStatusImpl is the implementation of the GetAssistantStatus use case.
type GetAssistantStatusImpl struct {
	session     *domain.Session
	credentials domain.CredentialChecker
}

// NewGetAssistantStatusImpl creates a new instance of GetAssistantStatusImpl.
func NewGetAssistantStatusImpl(session *domain.Session, credentials domain.CredentialChecker) GetAssistantStatusImpl {
	return GetAssistantStatusImpl{
		session:     session,
		credentials: credentials,
	}
}

// Query reports whether a credential is configured along with the session's
// selected model and request phase.
func (gas GetAssistantStatusImpl) Query(ctx context.Context) AssistantStatus {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return AssistantStatus{
		CredentialConfigured: gas.credentials.IsConfigured(),
		SelectedModel:        gas.session.SelectedModel(),
		Phase:                gas.session.Phase(),
	}
}

// InitGetAssistantStatus initializes the GetAssistantStatus use case and registers it in the dependency container.
type InitGetAssistantStatus struct {
	Session     *domain.Session          `resolve:""`
	Credentials domain.CredentialChecker `resolve:""`
}

// Initialize initializes the GetAssistantStatusImpl use case and registers it in the dependency container.
func (igs InitGetAssistantStatus) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetAssistantStatus](NewGetAssistantStatusImpl(igs.Session, igs.Credentials))
	return ctx, nil
}
