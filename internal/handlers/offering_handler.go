package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-system/internal/audit"
	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/httpresp"
	"github.com/BruksfildServices01/appointment-system/internal/middleware"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

type OfferingHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewOfferingHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *OfferingHandler {
	return &OfferingHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateOfferingRequest struct {
	Description string `json:"description" binding:"required"`
}

type UpdateOfferingRequest struct {
	Description *string `json:"description,omitempty"`
	IsOpen      *bool   `json:"is_open,omitempty"`
}

// --------- Handlers ---------

// Create registers an offering under the caller's own company. The
// owner is always taken from the token, never from the request body.
func (h *OfferingHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "user not in context")
		return
	}

	switch caller.Role {
	case models.RoleCompany:
		// proceed below
	case models.RoleAdmin:
		httperr.BadRequest(c, "admin_cannot_create_offering",
			"admin cannot create offerings without a company context, use a company account")
		return
	default:
		httperr.Forbidden(c, "forbidden", "you do not have permission to perform this action")
		return
	}

	if caller.CompanyID == nil {
		httperr.BadRequest(c, "company_id_missing", "company account has no company")
		return
	}

	var req CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	offering := models.Offering{
		CompanyID:   *caller.CompanyID,
		Description: req.Description,
		IsOpen:      true,
	}

	if err := h.db.Create(&offering).Error; err != nil {
		httperr.Internal(c, "failed_to_create_offering", "failed to create offering")
		return
	}

	h.audit.Dispatch(audit.Event{
		CompanyID: caller.CompanyID,
		UserID:    &caller.UserID,
		Action:    "offering_created",
		Entity:    "offering",
		EntityID:  &offering.ID,
	})

	httpresp.Created(c, offering)
}

func (h *OfferingHandler) ListMine(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "user not in context")
		return
	}

	switch caller.Role {
	case models.RoleCompany:
		// proceed below
	default:
		httperr.BadRequest(c, "company_listing_only",
			"use GET /api/companies/:company_id/offerings to view a specific company's offerings")
		return
	}

	scope := scopeFor(caller)

	var offerings []models.Offering
	if err := h.db.
		Where("company_id = ?", *scope).
		Order("id ASC").
		Find(&offerings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_offerings", "failed to list offerings")
		return
	}

	httpresp.OK(c, offerings)
}

// ListOpenByCompany is public: customers browse a company's open
// offerings before booking.
func (h *OfferingHandler) ListOpenByCompany(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		httperr.BadRequest(c, "invalid_company_id", "invalid company id")
		return
	}

	var offerings []models.Offering
	if err := h.db.
		Where("company_id = ? AND is_open = ?", companyID, true).
		Order("id ASC").
		Find(&offerings).Error; err != nil {

		httperr.Internal(c, "failed_to_list_offerings", "failed to list offerings")
		return
	}

	httpresp.OK(c, offerings)
}

func (h *OfferingHandler) Get(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "user not in context")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid offering id")
		return
	}

	offering, err := h.fetchScoped(c, id, scopeFor(caller))
	if err != nil {
		return
	}

	httpresp.OK(c, offering)
}

func (h *OfferingHandler) Update(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "user not in context")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid offering id")
		return
	}

	offering, err := h.fetchScoped(c, id, scopeFor(caller))
	if err != nil {
		return
	}

	var req UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Description != nil {
		offering.Description = *req.Description
	}
	if req.IsOpen != nil {
		offering.IsOpen = *req.IsOpen
	}

	if err := h.db.Save(offering).Error; err != nil {
		httperr.Internal(c, "failed_to_update_offering", "failed to update offering")
		return
	}

	h.audit.Dispatch(audit.Event{
		CompanyID: &offering.CompanyID,
		UserID:    &caller.UserID,
		Action:    "offering_updated",
		Entity:    "offering",
		EntityID:  &offering.ID,
	})

	httpresp.OK(c, offering)
}

// fetchScoped loads an offering under the caller's tenant scope. A row
// owned by another tenant yields the same 404 as a missing one, so the
// response never confirms existence across tenants. It writes the error
// response itself; a non-nil error just tells the caller to stop.
func (h *OfferingHandler) fetchScoped(c *gin.Context, id uint, scope *uint) (*models.Offering, error) {
	q := h.db.Where("id = ?", id)
	if scope != nil {
		q = q.Where("company_id = ?", *scope)
	}

	var offering models.Offering
	if err := q.First(&offering).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "offering_not_found", "offering not found")
			return nil, err
		}
		httperr.Internal(c, "failed_to_get_offering", "failed to get offering")
		return nil, err
	}
	return &offering, nil
}
