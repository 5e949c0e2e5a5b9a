package handler

import (
	"errors"
	"net/http"

	"github.com/blanklearn/marketplace-backend/internal/middleware"
	"github.com/blanklearn/marketplace-backend/internal/model"
	"github.com/blanklearn/marketplace-backend/internal/response"
	"github.com/blanklearn/marketplace-backend/internal/service"
	"github.com/blanklearn/marketplace-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	adminService *service.AdminService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(adminService *service.AdminService) *AuthHandler {
	return &AuthHandler{adminService: adminService}
}

// AdminLogin godoc
// POST /api/v1/auth/admin/login
// Validates email + password, returns a JWT.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	resp, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetAdminProfile godoc
// GET /api/v1/auth/admin/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) GetAdminProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.adminService.GetByID(c.Request.Context(), claims.UserID)
	if errors.Is(err, service.ErrAdminNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}
