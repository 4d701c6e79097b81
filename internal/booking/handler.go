package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blassbarberia/salon-api/internal/catalog"
	"github.com/blassbarberia/salon-api/pkg/pagination"
)

// Handler exposes the booking operations over HTTP.
type Handler struct {
	svc     *Service
	catalog catalog.Catalog
}

func NewHandler(svc *Service, cat catalog.Catalog) *Handler {
	return &Handler{svc: svc, catalog: cat}
}

// RegisterRoutes mounts the booking endpoints on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/options", h.Options)
	g.POST("/appointments", h.Create)
	g.GET("/appointments", h.List)
	g.GET("/appointments/:id", h.Get)
	g.PATCH("/appointments/:id/status", h.UpdateStatus)
	g.GET("/appointments/:id/calendar", h.Calendar)
	g.GET("/availability/:date", h.Availability)
	g.GET("/stylists/:name/appointments", h.StylistSchedule)
}

func httpError(c echo.Context, err error) error {
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error(), "field": ve.Field})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	return id, nil
}

// Options returns the stylists, services and slot times the booking form
// offers.
func (h *Handler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog)
}

func (h *Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	a, outcome, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(c, err)
	}

	msg := "Appointment booked."
	switch outcome {
	case EmailSent:
		msg = "Appointment booked. Check your inbox (and spam) to confirm."
	case EmailFailed:
		msg = "Appointment booked, but we could not send the confirmation email."
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": a.ID, "message": msg})
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	filter := ListFilter(c.QueryParam("filter"))

	appts, total, err := h.svc.List(c.Request().Context(), filter, p.Limit, p.Offset)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(appts, total, p.Limit, p.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(c, err)
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(c, err)
	}

	var req struct {
		Status Status `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	a, err := h.svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Calendar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(c, err)
	}
	filename, body, err := h.svc.CalendarExport(c.Request().Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func (h *Handler) Availability(c echo.Context) error {
	day, err := time.Parse(DateLayout, c.Param("date"))
	if err != nil {
		return httpError(c, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"})
	}
	slots, err := h.svc.Availability(c.Request().Context(), day)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":  c.Param("date"),
		"slots": slots,
	})
}

func (h *Handler) StylistSchedule(c echo.Context) error {
	stylist := c.Param("name")

	from := time.Now()
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(DateLayout, raw)
		if err != nil {
			return httpError(c, &ValidationError{Field: "from", Reason: "must be YYYY-MM-DD"})
		}
		from = parsed
	}

	appts, err := h.svc.StylistSchedule(c.Request().Context(), stylist, from)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"stylist":      stylist,
		"appointments": appts,
	})
}
