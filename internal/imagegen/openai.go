package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const maxErrorBody = 4 << 10

// OpenAIBackend posts to an OpenAI-compatible images endpoint.
type OpenAIBackend struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIBackend creates a backend. The key is checked on each call, so a
// server can start without one.
func NewOpenAIBackend(endpoint, apiKey, model string, httpClient *http.Client) *OpenAIBackend {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &OpenAIBackend{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

type openAIRequest struct {
	Model          string `json:"model,omitempty"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type openAIResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Name implements Backend.
func (b *OpenAIBackend) Name() string {
	return "openai"
}

// Generate implements Backend.
func (b *OpenAIBackend) Generate(ctx context.Context, req Request) ([]string, error) {
	if IsPlaceholderKey(b.apiKey) {
		return nil, errors.WithStack(ErrMissingAPIKey)
	}

	body, err := json.Marshal(openAIRequest{
		Model:          b.model,
		Prompt:         req.Prompt,
		N:              req.Count,
		Size:           req.Size,
		ResponseFormat: "url",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(ErrExternalService, err.Error())
	}
	httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(ErrExternalService, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var decoded openAIResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if json.Unmarshal(raw, &decoded) == nil && decoded.Error != nil {
			return nil, errors.Wrapf(ErrExternalService, "status %d: %s", resp.StatusCode, decoded.Error.Message)
		}
		return nil, errors.Wrapf(ErrExternalService, "status %d", resp.StatusCode)
	}

	var decoded openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrapf(ErrExternalService, "decode response: %v", err)
	}

	urls := make([]string, 0, len(decoded.Data))
	for _, d := range decoded.Data {
		if d.URL != "" {
			urls = append(urls, d.URL)
		}
	}
	if len(urls) == 0 {
		return nil, errors.Wrap(ErrExternalService, "response contained no images")
	}
	return urls, nil
}
