package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookreview-backend/internal/domains/user/model"
	"bookreview-backend/internal/domains/user/service"
	"bookreview-backend/internal/shared/auth"
	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/pkg/logger"
)

func canRegister(p auth.Principal) bool { return p.HasStaffAccess() }

type UserHandler struct {
	service service.Service
}

func NewUserHandler(svc service.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register handles POST /register/. Staff only; a duplicate username is a
// validation failure, not a server fault.
func (h *UserHandler) Register(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canRegister(p) {
		response.Forbidden(c)
		return
	}

	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldError(c, "non_field_errors", "Malformed JSON body.")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	created, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateUsername) {
			response.FieldError(c, "username", "A user with this username already exists.")
			return
		}
		logger.Error("register failed", err)
		response.InternalError(c)
		return
	}

	response.Created(c, created)
}

// ObtainTokenPair handles POST /api/token/.
func (h *UserHandler) ObtainTokenPair(c *gin.Context) {
	var req model.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldError(c, "non_field_errors", "Malformed JSON body.")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	pair, err := h.service.ObtainTokenPair(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, "No active account found with the given credentials.")
			return
		}
		logger.Error("token obtain failed", err)
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// RefreshToken handles POST /api/token/refresh/.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldError(c, "non_field_errors", "Malformed JSON body.")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	access, err := h.service.RefreshAccessToken(c.Request.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, "Given token not valid for any token type.")
			return
		}
		logger.Error("token refresh failed", err)
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, access)
}

// Details handles GET /user-details/, returning the current principal's
// profile.
func (h *UserHandler) Details(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok {
		response.Forbidden(c)
		return
	}

	u, err := h.service.Details(c.Request.Context(), p.ID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.NotFound(c)
			return
		}
		logger.Error("user details failed", err)
		response.InternalError(c)
		return
	}

	response.OK(c, u)
}
