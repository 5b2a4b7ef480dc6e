package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/quillnotes/quill/internal/telemetry"
	"github.com/quillnotes/quill/internal/usecases"
	"github.com/rs/cors"
)

// QuillServer is the REST API HTTP server for the Quill application.
type QuillServer struct {
	Port                       int                          `config:"HTTP_PORT" default:"8080"`
	Logger                     *log.Logger                  `resolve:""`
	ProcessContentUseCase      usecases.ProcessContent      `resolve:""`
	RunEditorActionUseCase     usecases.RunEditorAction     `resolve:""`
	GetAssistantStatusUseCase  usecases.GetAssistantStatus  `resolve:""`
	ListModelsUseCase          usecases.ListModels          `resolve:""`
	SelectModelUseCase         usecases.SelectModel         `resolve:""`
	ProbeModelUseCase          usecases.ProbeModel          `resolve:""`
	ListDocumentsUseCase       usecases.ListDocuments       `resolve:""`
	GetDocumentUseCase         usecases.GetDocument         `resolve:""`
	CreateDocumentUseCase      usecases.CreateDocument      `resolve:""`
	UpdateDocumentUseCase      usecases.UpdateDocument      `resolve:""`
	DeleteDocumentUseCase      usecases.DeleteDocument      `resolve:""`
	ListTodosUseCase           usecases.ListTodos           `resolve:""`
	CreateTodoUseCase          usecases.CreateTodo          `resolve:""`
	UpdateTodoUseCase          usecases.UpdateTodo          `resolve:""`
	DeleteTodoUseCase          usecases.DeleteTodo          `resolve:""`
	GenerateTodosUseCase       usecases.GenerateTodos       `resolve:""`
	SuggestNextStepsUseCase    usecases.SuggestNextSteps    `resolve:""`
	ListTodoTemplatesUseCase   usecases.ListTodoTemplates   `resolve:""`
	InstantiateTemplateUseCase usecases.InstantiateTemplate `resolve:""`
}

// routes registers every API route on the given mux.
func (api QuillServer) routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/ai/process", api.ProcessContent)
	mux.HandleFunc("GET /api/ai/status", api.GetAssistantStatus)

	mux.HandleFunc("GET /api/models", api.ListModels)
	mux.HandleFunc("PUT /api/models/selected", api.SelectModel)
	mux.HandleFunc("POST /api/models/{id}/probe", api.ProbeModel)

	mux.HandleFunc("GET /api/documents", api.ListDocuments)
	mux.HandleFunc("POST /api/documents", api.CreateDocument)
	mux.HandleFunc("GET /api/documents/{id}", api.GetDocument)
	mux.HandleFunc("PATCH /api/documents/{id}", api.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", api.DeleteDocument)
	mux.HandleFunc("POST /api/documents/{id}/actions", api.RunDocumentAction)

	mux.HandleFunc("GET /api/todos", api.ListTodos)
	mux.HandleFunc("POST /api/todos", api.CreateTodo)
	mux.HandleFunc("PATCH /api/todos/{id}", api.UpdateTodo)
	mux.HandleFunc("DELETE /api/todos/{id}", api.DeleteTodo)
	mux.HandleFunc("POST /api/todos/generate", api.GenerateTodos)
	mux.HandleFunc("POST /api/todos/{id}/suggest", api.SuggestNextSteps)

	mux.HandleFunc("GET /api/todo-templates", api.ListTodoTemplates)
	mux.HandleFunc("POST /api/todo-templates/{id}/instantiate", api.InstantiateTemplate)
}

// Run starts the HTTP server for the QuillServer.
func (api QuillServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	api.routes(mux)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := telemetry.Middleware("quill-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("QuillServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("QuillServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("QuillServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the QuillServer is ready by performing a health check.
func (api QuillServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/api/ai/status", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
