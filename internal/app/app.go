package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/quillnotes/quill/internal/adapters/inbound/http"
	"github.com/quillnotes/quill/internal/adapters/outbound/config"
	"github.com/quillnotes/quill/internal/adapters/outbound/log"
	"github.com/quillnotes/quill/internal/adapters/outbound/openai"
	"github.com/quillnotes/quill/internal/adapters/outbound/postgres"
	"github.com/quillnotes/quill/internal/adapters/outbound/time"
	"github.com/quillnotes/quill/internal/telemetry"
	"github.com/quillnotes/quill/internal/usecases"
)

// NewQuillApp creates and returns a new instance of the Quill application.
func NewQuillApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitDocumentRepository{},
			&postgres.InitTodoRepository{},
			&postgres.InitTodoTemplateRepository{},
			&time.InitCurrentTimeProvider{},
			&openai.InitLLMClient{},

			&usecases.InitSession{},

			&usecases.InitProcessContent{},
			&usecases.InitRunEditorAction{},
			&usecases.InitGetAssistantStatus{},
			&usecases.InitListModels{},
			&usecases.InitSelectModel{},
			&usecases.InitProbeModel{},
			&usecases.InitListDocuments{},
			&usecases.InitGetDocument{},
			&usecases.InitCreateDocument{},
			&usecases.InitUpdateDocument{},
			&usecases.InitDeleteDocument{},
			&usecases.InitListTodos{},
			&usecases.InitCreateTodo{},
			&usecases.InitUpdateTodo{},
			&usecases.InitDeleteTodo{},
			&usecases.InitGenerateTodos{},
			&usecases.InitSuggestNextSteps{},
			&usecases.InitListTodoTemplates{},
			&usecases.InitInstantiateTemplate{},
		).
		Host(
			&http.QuillServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
