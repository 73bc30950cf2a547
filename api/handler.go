package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"import-duty/core/engine"
	"import-duty/core/rates"
	"import-duty/internal/errors"
)

// Handler serves quote and rate endpoints over one engine
type Handler struct {
	engine *engine.Engine
}

// NewHandler creates a handler
func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

// Georgia handles POST /v1/customs/georgia
func (h *Handler) Georgia(c *gin.Context) {
	var req GeorgiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, errors.Wrap(errors.TypeInput, "invalid request body", err))
		return
	}
	h.respond(c, req.toEngine())
}

// Ukraine handles POST /v1/customs/ukraine
func (h *Handler) Ukraine(c *gin.Context) {
	var req UkraineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, errors.Wrap(errors.TypeInput, "invalid request body", err))
		return
	}
	h.respond(c, req.toEngine())
}

// Quote handles POST /v1/quote with a jurisdiction-tagged body
func (h *Handler) Quote(c *gin.Context) {
	var req engine.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, errors.Wrap(errors.TypeInput, "invalid request body", err))
		return
	}
	h.respond(c, req)
}

// Rates handles GET /v1/rates
func (h *Handler) Rates(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.RateSheet())
}

// Jurisdictions handles GET /v1/jurisdictions
func (h *Handler) Jurisdictions(c *gin.Context) {
	fuels := make([]string, 0, len(rates.FuelTypes()))
	for _, f := range rates.FuelTypes() {
		fuels = append(fuels, string(f))
	}
	c.JSON(http.StatusOK, JurisdictionsResponse{
		Jurisdictions: h.engine.Jurisdictions(),
		FuelTypes:     fuels,
	})
}

func (h *Handler) respond(c *gin.Context, req engine.Request) {
	q, err := h.engine.Quote(req)
	if err != nil {
		writeError(c, StatusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// StatusFor maps an error category to an HTTP status
func StatusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeInput:
		return http.StatusUnprocessableEntity
	case errors.TypeNotSupported:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, status int, err error) {
	resp := ErrorResponse{
		Error: err.Error(),
		Type:  string(errors.TypeOf(err)),
	}
	var e *errors.Error
	if stderrors.As(err, &e) {
		resp.Details = e.Context
	}

	_ = c.Error(err)
	c.JSON(status, resp)
}
