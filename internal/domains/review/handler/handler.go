package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	bookmodel "bookreview-backend/internal/domains/book/model"
	"bookreview-backend/internal/domains/review/model"
	"bookreview-backend/internal/domains/review/service"
	"bookreview-backend/internal/shared/auth"
	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/internal/shared/response"
	"bookreview-backend/internal/shared/utils"
	"bookreview-backend/pkg/logger"
)

// Unlike authors and books, review writes are open to any authenticated
// principal, not just staff. This mirrors the system being replaced and is
// preserved deliberately; see DESIGN.md.
func canRead(p auth.Principal) bool   { return true }
func canCreate(p auth.Principal) bool { return true }
func canModify(p auth.Principal) bool { return true }

type ReviewHandler struct {
	service service.Service
}

func NewReviewHandler(svc service.Service) *ReviewHandler {
	return &ReviewHandler{service: svc}
}

// List handles GET /reviews/ (unscoped).
func (h *ReviewHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// ListByBook handles GET /author/:author_id/book/:book_id/reviews. The book
// segment is resolved before filtering; a bad id is a 404, never an empty
// list.
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	if _, ok := utils.PathID(c, "author_id"); !ok {
		response.MethodNotAllowed(c)
		return
	}
	bookID, ok := utils.PathID(c, "book_id")
	if !ok {
		response.MethodNotAllowed(c)
		return
	}
	h.list(c, &bookID)
}

func (h *ReviewHandler) list(c *gin.Context, bookID *int64) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canRead(p) {
		response.Forbidden(c)
		return
	}

	reviews, err := h.service.List(c.Request.Context(), bookID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, reviews)
}

// Get handles GET /author/:author_id/book/:book_id/reviews/:review_id/. The
// full nested path is required; the response embeds the parent book's title.
func (h *ReviewHandler) Get(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canRead(p) {
		response.Forbidden(c)
		return
	}

	id, ok := h.nestedReviewID(c)
	if !ok {
		return
	}

	rv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, rv)
}

// Create handles POST /reviews/. Any authenticated principal.
func (h *ReviewHandler) Create(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canCreate(p) {
		response.Forbidden(c)
		return
	}

	var req model.ReviewRequest
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

// Replace handles PUT /author/:author_id/book/:book_id/reviews/:review_id/.
// Any authenticated principal.
func (h *ReviewHandler) Replace(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canModify(p) {
		response.Forbidden(c)
		return
	}

	id, ok := h.nestedReviewID(c)
	if !ok {
		return
	}

	var req model.ReviewRequest
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

// Delete handles DELETE /author/:author_id/book/:book_id/reviews/:review_id/.
// Any authenticated principal.
func (h *ReviewHandler) Delete(c *gin.Context) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok || !canModify(p) {
		response.Forbidden(c)
		return
	}

	id, ok := h.nestedReviewID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// nestedReviewID validates every id segment of the nested path and returns
// the review id. Non-numeric segments fall outside the route table, so they
// get the fixed 405 body rather than a 404.
func (h *ReviewHandler) nestedReviewID(c *gin.Context) (int64, bool) {
	if _, ok := utils.PathID(c, "author_id"); !ok {
		response.MethodNotAllowed(c)
		return 0, false
	}
	if _, ok := utils.PathID(c, "book_id"); !ok {
		response.MethodNotAllowed(c)
		return 0, false
	}
	id, ok := utils.PathID(c, "review_id")
	if !ok {
		response.MethodNotAllowed(c)
		return 0, false
	}
	return id, true
}

func (h *ReviewHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrReviewNotFound), errors.Is(err, bookmodel.ErrBookNotFound):
		response.NotFound(c)
	case errors.Is(err, model.ErrInvalidBook):
		response.FieldError(c, "book", "Invalid pk - object does not exist.")
	case errors.Is(err, model.ErrInvalidUser):
		response.FieldError(c, "user", "Invalid pk - object does not exist.")
	default:
		logger.Error("review operation failed", err)
		response.InternalError(c)
	}
}
