package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// This package is the single place where handler outcomes turn into HTTP
// statuses. Handlers never write status codes directly.

// OK writes a 200 with the given representation.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the created representation.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound writes an empty 404. Lookup misses on path-resolved entities carry
// no body.
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// Forbidden writes a 403 for a principal that lacks the required role.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"detail": "You do not have permission to perform this action.",
	})
}

// Unauthorized writes a 401 with a short reason.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"detail": message})
}

// ValidationFailed writes a 422 with a field -> messages map.
func ValidationFailed(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, errs)
}

// FieldError writes a 422 with a single message for one field.
func FieldError(c *gin.Context, field, message string) {
	ValidationFailed(c, map[string][]string{field: {message}})
}

// MethodNotAllowed writes the fixed 405 body. The catch-all route and the
// router's method fallback both end up here so that an unmapped path is
// distinguishable from a missing resource id.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error":   "Method Not Allowed",
		"message": "This method is not allowed for this endpoint.",
	})
}

// InternalError writes a 500. Only the recovery middleware and truly
// unexpected store failures take this path.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}

// FieldErrors flattens an ozzo-validation error into the field -> messages
// shape used by ValidationFailed.
func FieldErrors(err error) map[string][]string {
	out := make(map[string][]string)
	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			out[field] = append(out[field], ferr.Error())
		}
		return out
	}
	out["non_field_errors"] = []string{err.Error()}
	return out
}
