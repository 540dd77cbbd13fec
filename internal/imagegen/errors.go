package imagegen

import "github.com/pkg/errors"

var (
	// ErrExternalService marks any failure of the image provider.
	ErrExternalService = errors.New("image generation service failed")

	// ErrMissingAPIKey is returned before any network call when no usable key is configured.
	ErrMissingAPIKey = errors.Wrap(ErrExternalService, "image generation API key is not configured")

	ErrEmptyPrompt        = errors.New("prompt is required")
	ErrUnknownStyle       = errors.New("unknown design style")
	ErrGenerationInFlight = errors.New("a generation is already running for this session")
	ErrTaskNotFound       = errors.New("generation task not found")
	ErrGeneratorClosed    = errors.New("generator is closed")
)
