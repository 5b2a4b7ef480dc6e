package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// ModelView is a catalog entry decorated with the per-session selection and
// availability flags.
type ModelView struct {
	domain.ModelDescriptor
	Available bool
	Selected  bool
}

// ListModels defines the interface for the ListModels use case.
type ListModels interface {
	Query(ctx context.Context) []ModelView
}

// ListModelsImpl is the implementation of the ListModels use case.
type ListModelsImpl struct {
	session *domain.Session
}

// NewListModelsImpl creates a new instance of ListModelsImpl.
func NewListModelsImpl(session *domain.Session) ListModelsImpl {
	return ListModelsImpl{session: session}
}

// Query returns the model catalog in display order with session flags applied.
func (lmi ListModelsImpl) Query(ctx context.Context) []ModelView {
	_, span := telemetry.Start(ctx)
	defer span.End()

	selected := lmi.session.SelectedModel()
	catalog := domain.ModelCatalog()

	views := make([]ModelView, 0, len(catalog))
	for _, descriptor := range catalog {
		views = append(views, ModelView{
			ModelDescriptor: descriptor,
			Available:       lmi.session.IsAvailable(descriptor.ID),
			Selected:        descriptor.ID == selected,
		})
	}
	return views
}

// InitListModels initializes the ListModels use case and registers it in the dependency container.
type InitListModels struct {
	Session *domain.Session `resolve:""`
}

// Initialize initializes the ListModelsImpl use case and registers it in the dependency container.
func (ilm InitListModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListModels](NewListModelsImpl(ilm.Session))
	return ctx, nil
}
