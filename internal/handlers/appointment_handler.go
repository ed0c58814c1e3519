package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/httpresp"
	"github.com/BruksfildServices01/appointment-system/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/appointment-system/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	getUC    *ucAppointment.GetAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		getUC:    getUC,
		listUC:   listUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	CompanyID     uint      `json:"company_id" binding:"required"`
	OfferingID    uint      `json:"offering_id" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
}

type UpdateAppointmentRequest struct {
	OfferingID    *uint      `json:"offering_id,omitempty"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	CustomerEmail *string    `json:"customer_email,omitempty" binding:"omitempty,email"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Status        *string    `json:"status,omitempty"`
}

// --------- Handlers ---------

// Create is public: customers book without an account. Tenant safety
// comes from the offering check inside the use case, not from auth.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CompanyID:     req.CompanyID,
		OfferingID:    req.OfferingID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "user not in context")
		return
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), scopeFor(caller))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "failed to list appointments")
		return
	}

	httpresp.OK(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "user not in context")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid appointment id")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id, scopeFor(caller))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "user not in context")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid appointment id")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.updateUC.Execute(
		c.Request.Context(),
		id,
		scopeFor(caller),
		&caller.UserID,
		ucAppointment.UpdateAppointmentInput{
			OfferingID:    req.OfferingID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Status:        req.Status,
		},
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}
