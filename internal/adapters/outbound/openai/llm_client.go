package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// LLMClient adapts APIClient to domain.LLMClient interface
type LLMClient struct {
	client APIClient
}

// NewLLMClientAdapter creates a new adapter
func NewLLMClientAdapter(client APIClient) LLMClient {
	return LLMClient{client: client}
}

// Chat implements domain.LLMClient.Chat. Provider rejections become
// ModelRejectedErr carrying the provider's message; network failures become
// TransportErr.
func (a LLMClient) Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adapterReq.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}

	resp, err := a.client.Chat(spanCtx, adapterReq)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatResponse{}, mapClientError(err)
	}

	if len(resp.Choices) == 0 {
		err := domain.NewTransportErr("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ChatResponse{}, err
	}

	out := domain.ChatResponse{
		Content: resp.Choices[0].Message.Content,
	}
	if resp.Usage != nil {
		out.Usage = domain.LLMUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// mapClientError translates transport-level failures and provider rejections
// into domain errors.
func mapClientError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return domain.NewModelRejectedErr(apiErr.Message)
	}
	return domain.NewTransportErr(err.Error())
}

// InitLLMClient initializes the LLMClient and CredentialChecker dependencies
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	ApiKey     string       `config:"OPENAI_API_KEY" default:"-"`
	BaseURL    string       `config:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
}

// Initialize registers the LLMClient and CredentialChecker
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.ApiKey
	if apiKey == "-" {
		apiKey = ""
	}
	depend.Register[domain.LLMClient](NewLLMClientAdapter(
		NewAPIClient(i.BaseURL, apiKey, i.HttpClient),
	))
	depend.Register[domain.CredentialChecker](NewCredentials(apiKey))
	return ctx, nil
}
