package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
	"github.com/cleanvillage/sanitation-system/internal/core/ports"
)

// ComplaintHandler handles HTTP requests for the complaint lifecycle.
type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// Submit handles POST /v1/complaints.
//
// @Summary      Submit a new complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitComplaintRequest  true  "Complaint details"
// @Success      201   {object}  complaintResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/complaints [post]
func (h *ComplaintHandler) Submit(c echo.Context) error {
	var req submitComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.service.Submit(c.Request().Context(), ports.SubmitComplaintInput{
		Name:        req.Name,
		Village:     req.Village,
		Category:    domain.ComplaintCategory(req.Type),
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toComplaintResponse(complaint))
}

// List handles GET /v1/complaints with an optional status filter.
//
// @Summary      List complaints
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (pending, resolved, overdue)"
// @Success      200     {object}  listComplaintsResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	var (
		complaints []*domain.Complaint
		err        error
	)

	if raw := c.QueryParam("status"); raw != "" {
		status := domain.ComplaintStatus(raw)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
		}
		complaints, err = h.service.ListByStatus(c.Request().Context(), status)
	} else {
		complaints, err = h.service.List(c.Request().Context())
	}
	if err != nil {
		return err
	}

	data := make([]complaintResponse, 0, len(complaints))
	for _, cp := range complaints {
		data = append(data, toComplaintResponse(cp))
	}
	return c.JSON(http.StatusOK, listComplaintsResponse{Data: data, Total: len(data)})
}

// Get handles GET /v1/complaints/:id.
//
// @Summary      Get a complaint by id
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Complaint id (e.g. CPL-1714501223000)"
// @Success      200  {object}  complaintResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/complaints/{id} [get]
func (h *ComplaintHandler) Get(c echo.Context) error {
	complaint, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toComplaintResponse(complaint))
}

// UpdateStatus handles PATCH /v1/complaints/:id/status (officials only).
//
// @Summary      Update complaint status
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Complaint id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  complaintResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := c.Param("id")
	if err := h.service.SetStatus(c.Request().Context(), id, domain.ComplaintStatus(req.Status)); err != nil {
		return err
	}

	complaint, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toComplaintResponse(complaint))
}

// Stats handles GET /v1/complaints/stats.
//
// @Summary      Dashboard counters
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Router       /v1/complaints/stats [get]
func (h *ComplaintHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		Total:    stats.Total,
		Pending:  stats.Pending,
		Resolved: stats.Resolved,
		Overdue:  stats.Overdue,
	})
}

func toComplaintResponse(c *domain.Complaint) complaintResponse {
	return complaintResponse{
		ID:               c.ID,
		Name:             c.Name,
		Village:          c.Village,
		Type:             string(c.Category),
		Description:      c.Description,
		Image:            c.Image,
		Status:           string(c.Status),
		DateSubmitted:    c.DateSubmitted,
		AssignedOfficial: c.AssignedOfficial,
		Escalated:        c.Escalated,
		EscalationDate:   c.EscalationDate,
	}
}
