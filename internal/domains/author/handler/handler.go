package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"bookreview-backend/internal/domains/author/model"
	"bookreview-backend/internal/domains/author/service"
	"bookreview-backend/internal/shared/auth"
	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/internal/shared/utils"
	"bookreview-backend/pkg/logger"
)

// Permission predicates, one per operation. Reads need any authenticated
// principal (already guaranteed by the auth middleware); writes need staff.
func canRead(p auth.Principal) bool   { return true }
func canCreate(p auth.Principal) bool { return p.HasStaffAccess() }
func canModify(p auth.Principal) bool { return p.HasStaffAccess() }

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(svc service.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List handles GET /authors/.
func (h *AuthorHandler) List(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canRead(p) {
		response.Forbidden(c)
		return
	}

	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("list authors failed", err)
		response.InternalError(c)
		return
	}

	response.OK(c, authors)
}

// Get handles GET /authors/:author_id/.
func (h *AuthorHandler) Get(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canRead(p) {
		response.Forbidden(c)
		return
	}

	id, ok := utils.PathID(c, "author_id")
	if !ok {
		response.MethodNotAllowed(c)
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, a)
}

// Create handles POST /authors/. Staff only.
func (h *AuthorHandler) Create(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canCreate(p) {
		response.Forbidden(c)
		return
	}

	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldError(c, "non_field_errors", "Malformed JSON body.")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, created)
}

// Replace handles PUT /authors/:author_id/. Staff only, full overwrite.
func (h *AuthorHandler) Replace(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canModify(p) {
		response.Forbidden(c)
		return
	}

	id, ok := utils.PathID(c, "author_id")
	if !ok {
		response.MethodNotAllowed(c)
		return
	}

	var req model.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldError(c, "non_field_errors", "Malformed JSON body.")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrors(err))
		return
	}

	updated, err := h.service.Replace(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, updated)
}

// Delete handles DELETE /authors/:author_id/. Staff only; cascades to books
// and reviews.
func (h *AuthorHandler) Delete(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canModify(p) {
		response.Forbidden(c)
		return
	}

	id, ok := utils.PathID(c, "author_id")
	if !ok {
		response.MethodNotAllowed(c)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrAuthorNotFound) {
		response.NotFound(c)
		return
	}
	logger.Error("author operation failed", err)
	response.InternalError(c)
}
