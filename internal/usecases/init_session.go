package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
)

// InitSession creates the per-process assistant session and registers it in
// the dependency container. All session-scoped state lives on this object;
// nothing assistant-related is kept in package globals.
type InitSession struct{}

// Initialize registers a fresh session.
func (is InitSession) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(domain.NewSession())
	return ctx, nil
}
