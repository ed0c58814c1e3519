package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-system/internal/auth"
	"github.com/BruksfildServices01/appointment-system/internal/config"
	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/httpresp"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenManager
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenManager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required"`
	CompanyID *uint  `json:"company_id"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		httperr.BadRequest(c, "invalid_role", "invalid role")
		return
	}

	if role == models.RoleCompany && req.CompanyID == nil {
		httperr.BadRequest(c, "company_id_required", "company_id is required for company role")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		httperr.From(c, httperr.Conflict("username_already_exists", "username already exists"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.From(c, httperr.Conflict("email_already_exists", "email already exists"))
		return
	}

	hash, err := auth.HashPassword(req.Password, h.config.BcryptCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "failed to hash password")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CompanyID:    req.CompanyID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "failed to create user")
		return
	}

	httpresp.Created(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Missing user and wrong password answer identically so usernames
	// cannot be probed through this endpoint.
	var user models.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "invalid username or password")
			return
		}
		httperr.Internal(c, "internal_error", "internal error")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "invalid username or password")
		return
	}

	token, err := h.tokens.Generate(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "failed to generate token")
		return
	}

	httpresp.OK(c, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
