package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// MistralProvider talks to Mistral's OpenAI-compatible chat completions API.
type MistralProvider struct {
	client openai.Client
	model  string
}

func NewMistralProvider(apiKey, baseURL, model string, timeout time.Duration) *MistralProvider {
	return newMistralProviderWithHTTPClient(apiKey, baseURL, model, &http.Client{Timeout: timeout})
}

func newMistralProviderWithHTTPClient(apiKey, baseURL, model string, httpClient *http.Client) *MistralProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(httpClient),
		// failures are reported to the caller, never retried
		option.WithMaxRetries(0),
	)

	return &MistralProvider{client: client, model: model}
}

func (p *MistralProvider) Name() string { return "mistral" }

func (p *MistralProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", newUpstreamError(fmt.Sprintf("mistral returned status %d", apiErr.StatusCode), err)
		}
		return "", newUpstreamError("mistral request failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Message: "mistral response has no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}
