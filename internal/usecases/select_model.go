package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// SelectModel defines the interface for the SelectModel use case.
type SelectModel interface {
	Execute(ctx context.Context, modelID string) (domain.ModelDescriptor, error)
}

// SelectModelImpl is the implementation of the SelectModel use case.
type SelectModelImpl struct {
	session *domain.Session
}

// NewSelectModelImpl creates a new instance of SelectModelImpl.
func NewSelectModelImpl(session *domain.Session) SelectModelImpl {
	return SelectModelImpl{session: session}
}

// Execute switches the active model unconditionally. Selection does not
// require a catalog entry or a prior successful probe; an unusable model
// fails at request time instead. Known ids return their catalog descriptor.
func (smi SelectModelImpl) Execute(ctx context.Context, modelID string) (domain.ModelDescriptor, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	smi.session.SelectModel(modelID)

	if descriptor, err := domain.LookupModel(modelID); err == nil {
		return descriptor, nil
	}
	return domain.ModelDescriptor{ID: modelID, Name: modelID}, nil
}

// InitSelectModel initializes the SelectModel use case and registers it in the dependency container.
type InitSelectModel struct {
	Session *domain.Session `resolve:""`
}

// Initialize initializes the SelectModelImpl use case and registers it in the dependency container.
func (ism InitSelectModel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SelectModel](NewSelectModelImpl(ism.Session))
	return ctx, nil
}
