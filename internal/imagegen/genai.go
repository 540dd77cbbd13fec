package imagegen

import (
	"context"
	"encoding/base64"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// GenAIBackend generates images with Imagen through the Gemini API.
type GenAIBackend struct {
	client *genai.Client
	model  string
}

// NewGenAIBackend creates a backend. With a missing or placeholder key no
// client is built and every call fails with ErrMissingAPIKey.
func NewGenAIBackend(ctx context.Context, apiKey, model string) (*GenAIBackend, error) {
	if model == "" {
		model = "imagen-3.0-generate-002"
	}
	if IsPlaceholderKey(apiKey) {
		return &GenAIBackend{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GenAI client")
	}

	return &GenAIBackend{client: client, model: model}, nil
}

// Name implements Backend.
func (b *GenAIBackend) Name() string {
	return "genai:" + b.model
}

// Generate implements Backend. Images come back as GCS URIs when the API
// stores them, otherwise as data URLs.
func (b *GenAIBackend) Generate(ctx context.Context, req Request) ([]string, error) {
	if b.client == nil {
		return nil, errors.WithStack(ErrMissingAPIKey)
	}

	resp, err := b.client.Models.GenerateImages(ctx, b.model, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages: int32(req.Count),
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(ErrExternalService, err.Error())
	}

	urls := make([]string, 0, len(resp.GeneratedImages))
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil {
			continue
		}
		if url := imageURL(generated.Image); url != "" {
			urls = append(urls, url)
		}
	}
	if len(urls) == 0 {
		return nil, errors.Wrap(ErrExternalService, "response contained no images")
	}
	return urls, nil
}

func imageURL(img *genai.Image) string {
	if img.GCSURI != "" {
		return img.GCSURI
	}
	if len(img.ImageBytes) == 0 {
		return ""
	}
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.ImageBytes)
}
