package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketcontext/internal/domain/models"
	"marketcontext/internal/usecase"
	xhttp "marketcontext/pkg/http"
	xlogger "marketcontext/pkg/logger"
)

// SnapshotEchoHandler serves market context snapshots over HTTP.
type SnapshotEchoHandler struct {
	logger  *xlogger.Logger
	builder *usecase.SnapshotBuilder
}

func NewSnapshotEchoHandler(logger *xlogger.Logger, builder *usecase.SnapshotBuilder) *SnapshotEchoHandler {
	return &SnapshotEchoHandler{logger: logger, builder: builder}
}

func (h *SnapshotEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/snapshot", h.Snapshot)
	e.GET("/healthz", h.Health)
}

// Snapshot captures and returns one market snapshot. An absent snapshot is a
// normal outcome, served as a 200 with null data rather than an error.
func (h *SnapshotEchoHandler) Snapshot(c echo.Context) error {
	req := &models.SnapshotRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	snap := h.builder.FetchWithNewsLimit(c.Request().Context(), req.NewsLimit)
	if snap == nil {
		h.logger.Warn("snapshot request served without data")
		return xhttp.SuccessResponse(c, nil)
	}
	return xhttp.SuccessResponse(c, snap)
}

func (h *SnapshotEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
