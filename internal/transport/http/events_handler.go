package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/list_events"
)

type listEventsParams struct {
	EventType   string `query:"event_type"`
	AggregateID string `query:"aggregate_id"`
	Limit       int    `query:"limit"`
}

// ListEvents handles GET /api/v1/events. A missing or non-positive limit
// means the default; larger limits are capped.
func (h *Handler) ListEvents(c echo.Context) error {
	var params listEventsParams
	if err := c.Bind(&params); err != nil {
		return badRequest(c, "INVALID_INPUT", "limit must be an integer")
	}

	records, total, err := h.deps.ListEvents.Execute(c.Request().Context(), &list_events.Request{
		EventType:   params.EventType,
		AggregateID: params.AggregateID,
		Limit:       params.Limit,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	events := make([]Event, 0, len(records))
	for _, rec := range records {
		events = append(events, toEvent(rec))
	}
	return success(c, http.StatusOK, ListEventsResponse{Events: events, TotalCount: total})
}
