package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-system/internal/auth"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

// scopeFor resolves the tenant filter for a verified caller: admins get
// unrestricted access (nil), tenant roles are pinned to their own
// company. A tenant caller without a company resolves to an impossible
// scope rather than an unrestricted one.
func scopeFor(caller *auth.Claims) *uint {
	if caller.Role == models.RoleAdmin {
		return nil
	}
	if caller.CompanyID == nil {
		zero := uint(0)
		return &zero
	}
	return caller.CompanyID
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
