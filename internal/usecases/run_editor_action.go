package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// EditorSelection marks the selected byte range of a document. Anchor and
// head are interchangeable; an equal pair means no selection.
type EditorSelection struct {
	Anchor int
	Head   int
}

// RunEditorAction defines the interface for the RunEditorAction use case. It
// runs one assistant action against a stored document: extract the working
// text from the selection, process it, and write the outcome back into the
// document. The ActionResult carries pipeline outcomes; the error return is
// reserved for lookup and persistence failures.
type RunEditorAction interface {
	Execute(ctx context.Context, documentID uuid.UUID, selection EditorSelection, action domain.Action, fields domain.OptionFields) (domain.Document, domain.ActionResult, error)
}

// RunEditorActionImpl is the implementation of the RunEditorAction use case.
type RunEditorActionImpl struct {
	documentRepo domain.DocumentRepository
	uow          domain.UnitOfWork
	processor    ProcessContent
	timeProvider domain.CurrentTimeProvider
}

// NewRunEditorActionImpl creates a new instance of RunEditorActionImpl.
func NewRunEditorActionImpl(documentRepo domain.DocumentRepository, uow domain.UnitOfWork, processor ProcessContent, timeProvider domain.CurrentTimeProvider) RunEditorActionImpl {
	return RunEditorActionImpl{
		documentRepo: documentRepo,
		uow:          uow,
		processor:    processor,
		timeProvider: timeProvider,
	}
}

// Execute runs the action over the document's selection. A non-empty
// selection is replaced in place by the generated text; an empty selection
// processes the whole document and replaces all of it.
func (rea RunEditorActionImpl) Execute(ctx context.Context, documentID uuid.UUID, selection EditorSelection, action domain.Action, fields domain.OptionFields) (domain.Document, domain.ActionResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	doc, found, err := rea.documentRepo.GetDocument(spanCtx, documentID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Document{}, domain.ActionResult{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("document not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Document{}, domain.ActionResult{}, err
	}

	editor := domain.NewTextEditor(doc.Content, selection.Anchor, selection.Head)

	extracted, err := domain.ExtractContent(editor)
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return doc, domain.FailureResult(err), nil
	}

	opts := domain.OptionsForAction(action, fields)
	result := rea.processor.Execute(spanCtx, action, extracted.Text, opts)
	if !result.Success {
		return doc, result, nil
	}

	domain.ApplyResult(editor, result.Content)
	doc.Content = editor.Content()
	doc.UpdatedAt = rea.timeProvider.Now()

	if err := rea.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Documents().UpdateDocument(spanCtx, doc)
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Document{}, domain.ActionResult{}, err
	}

	return doc, result, nil
}

// InitRunEditorAction initializes the RunEditorAction use case and registers it in the dependency container.
type InitRunEditorAction struct {
	DocumentRepo domain.DocumentRepository  `resolve:""`
	Uow          domain.UnitOfWork          `resolve:""`
	Processor    ProcessContent             `resolve:""`
	TimeService  domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the RunEditorActionImpl use case and registers it in the dependency container.
func (ire InitRunEditorAction) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RunEditorAction](NewRunEditorActionImpl(ire.DocumentRepo, ire.Uow, ire.Processor, ire.TimeService))
	return ctx, nil
}
