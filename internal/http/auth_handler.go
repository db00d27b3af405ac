package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/dto"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/i18n"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/middleware"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/service"
)

// AuthHandler provides HTTP handlers for staff authentication.
type AuthHandler struct {
	authService  service.AuthService
	auditService service.AuditService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, auditService service.AuditService) *AuthHandler {
	return &AuthHandler{authService: authService, auditService: auditService}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Staff login
// @Description  Authenticates the shared staff credential and returns a JWT access token for the staff endpoints.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Staff credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Access token"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - wrong credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Failed attempts go to the audit trail with the source IP.
			middleware.AuditLogError(h.auditService, c, model.ActionStaffLogin, "Staff login rejected", err, map[string]interface{}{
				"username": req.Username,
			})
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.LoginResponse{
		Token:     pair.AccessToken,
		ExpiresIn: pair.ExpiresIn,
	})
}
