package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/httpresp"
	"github.com/BruksfildServices01/appointment-system/internal/middleware"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "user not in context")
		return
	}

	var user models.User
	if err := h.db.First(&user, caller.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	httpresp.OK(c, user)
}
