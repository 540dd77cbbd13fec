package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/generate_images"
)

type generationRequest struct {
	Prompt string `json:"prompt" validate:"required,max=1000"`
	Style  string `json:"style" validate:"max=32"`
}

// StartGeneration handles POST /api/v1/sessions/:id/ai/generations.
// The task runs in the background; clients poll GetGeneration.
func (h *Handler) StartGeneration(c echo.Context) error {
	var req generationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	snap, err := h.deps.GenerateImages.Start(c.Request().Context(), &generate_images.StartRequest{
		SessionID: c.Param("id"),
		Prompt:    req.Prompt,
		Style:     req.Style,
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusAccepted, toGenerationDTO(snap))
}

// GetGeneration handles GET /api/v1/sessions/:id/ai/generations/:taskId.
func (h *Handler) GetGeneration(c echo.Context) error {
	snap, err := h.deps.GenerateImages.Get(c.Request().Context(), h.taskRequest(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusOK, toGenerationDTO(snap))
}

// CancelGeneration handles DELETE /api/v1/sessions/:id/ai/generations/:taskId.
func (h *Handler) CancelGeneration(c echo.Context) error {
	snap, err := h.deps.GenerateImages.Cancel(c.Request().Context(), h.taskRequest(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return success(c, http.StatusOK, toGenerationDTO(snap))
}

func (h *Handler) taskRequest(c echo.Context) *generate_images.TaskRequest {
	return &generate_images.TaskRequest{SessionID: c.Param("id"), TaskID: c.Param("taskId")}
}
