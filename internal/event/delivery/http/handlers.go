package http

import (
	"github.com/gin-gonic/gin"

	"calendar-tool-service/pkg/response"
)

// CreateEvent godoc
// @Summary     Create a calendar event
// @Description Normalizes the start time into the requested timezone and inserts the event into the configured Google Calendar.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.ErrResp "Invalid timezone or start in the past"
// @Failure     422 {object} response.ErrResp "Validation error"
// @Failure     429 {object} response.ErrResp "Rate limit exceeded"
// @Failure     500 {object} response.ErrResp "Service misconfigured"
// @Failure     502 {object} response.ErrResp "Google rejected the call"
// @Router      /create-event [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	// Credentials are checked before the body so a misconfigured service
	// answers 500 whatever the caller sends.
	if err := h.uc.EnsureConfigured(); err != nil {
		h.l.Errorf(ctx, "uc.EnsureConfigured: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processCreateReq: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}
