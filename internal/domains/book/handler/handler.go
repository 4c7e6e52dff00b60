package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	authormodel "bookreview-backend/internal/domains/author/model"
	"bookreview-backend/internal/domains/book/model"
	"bookreview-backend/internal/domains/book/service"
	"bookreview-backend/internal/shared/auth"
	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/internal/shared/utils"
	"bookreview-backend/pkg/logger"
)

func canRead(p auth.Principal) bool   { return true }
func canCreate(p auth.Principal) bool { return p.HasStaffAccess() }
func canModify(p auth.Principal) bool { return p.HasStaffAccess() }

type BookHandler struct {
	service service.Service
}

func NewBookHandler(svc service.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// List handles GET /books/ (unscoped).
func (h *BookHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// ListByAuthor handles GET /author/:author_id/books/. The author segment is
// resolved before filtering; a bad id is a 404, never an empty list.
func (h *BookHandler) ListByAuthor(c *gin.Context) {
	authorID, ok := utils.PathID(c, "author_id")
	if !ok {
		response.MethodNotAllowed(c)
		return
	}
	h.list(c, &authorID)
}

func (h *BookHandler) list(c *gin.Context, authorID *int64) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canRead(p) {
		response.Forbidden(c)
		return
	}

	books, err := h.service.List(c.Request.Context(), authorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, books)
}

// Get handles GET /author/:author_id/books/:book_id/. The response embeds
// the author's name and the full review list.
func (h *BookHandler) Get(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canRead(p) {
		response.Forbidden(c)
		return
	}

	id, ok := utils.PathID(c, "book_id")
	if !ok {
		response.MethodNotAllowed(c)
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, detail)
}

// Create handles POST /author/:author_id/books/. Staff only. The owning
// author comes from the request body, matching the stored relationship.
func (h *BookHandler) Create(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canCreate(p) {
		response.Forbidden(c)
		return
	}

	var req model.BookRequest
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

// Replace handles PUT /author/:author_id/books/:book_id/. Staff only.
func (h *BookHandler) Replace(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canModify(p) {
		response.Forbidden(c)
		return
	}

	id, ok := utils.PathID(c, "book_id")
	if !ok {
		response.MethodNotAllowed(c)
		return
	}

	var req model.BookRequest
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

// Delete handles DELETE /author/:author_id/books/:book_id/. Staff only;
// cascades to reviews.
func (h *BookHandler) Delete(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canModify(p) {
		response.Forbidden(c)
		return
	}

	id, ok := utils.PathID(c, "book_id")
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

func (h *BookHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrBookNotFound), errors.Is(err, authormodel.ErrAuthorNotFound):
		response.NotFound(c)
	case errors.Is(err, model.ErrDuplicateISBN):
		response.FieldError(c, "isbn", "book with this isbn already exists.")
	case errors.Is(err, model.ErrInvalidAuthor):
		response.FieldError(c, "author", "Invalid pk - object does not exist.")
	default:
		logger.Error("book operation failed", err)
		response.InternalError(c)
	}
}
