// Package response defines consistent HTTP response structures.
// JSON clients get the envelopes below; browsers get the HTML pages from
// package view.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokester/src/app/view"
	"jokester/src/core/domain"
)

// Success represents a successful response with data.
type Success struct {
	Data any `json:"data"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "UNAUTHORIZED")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// WantsJSON reports whether the client prefers JSON over HTML.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

func errorJSON(c *gin.Context, status int, code, message, requestID string) {
	c.JSON(status, Error{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	})
}

// Unauthorized renders the "must be logged in" boundary.
func Unauthorized(c *gin.Context, message, requestID string) {
	if WantsJSON(c) {
		errorJSON(c, http.StatusUnauthorized, "UNAUTHORIZED", message, requestID)
		return
	}
	c.HTML(http.StatusUnauthorized, view.PageUnauthorized, view.NewBoundaryPage(requestID))
}

// NotFound renders the not found page.
func NotFound(c *gin.Context, message, requestID string) {
	if WantsJSON(c) {
		errorJSON(c, http.StatusNotFound, "NOT_FOUND", message, requestID)
		return
	}
	c.HTML(http.StatusNotFound, view.PageNotFound, view.NewBoundaryPage(requestID))
}

// TooManyRequests tells the client to slow down.
func TooManyRequests(c *gin.Context, requestID string) {
	if WantsJSON(c) {
		errorJSON(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests", requestID)
		return
	}
	c.String(http.StatusTooManyRequests, "Too many requests. Please try again shortly.")
}

// InternalError renders the generic "something went wrong" boundary.
func InternalError(c *gin.Context, requestID string) {
	if WantsJSON(c) {
		errorJSON(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", requestID)
		return
	}
	c.HTML(http.StatusInternalServerError, view.PageError, view.NewBoundaryPage(requestID))
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// This centralizes error handling and ensures consistent error responses.
func FromDomainError(c *gin.Context, err error, requestID string) {
	switch {
	case domain.IsUnauthorized(err):
		Unauthorized(c, domain.Message(err), requestID)
	case domain.IsNotFound(err):
		NotFound(c, domain.Message(err), requestID)
	case domain.IsValidationError(err) && WantsJSON(c):
		errorJSON(c, http.StatusBadRequest, "VALIDATION_ERROR", domain.Message(err), requestID)
	case domain.IsConflict(err) && WantsJSON(c):
		errorJSON(c, http.StatusConflict, "CONFLICT", domain.Message(err), requestID)
	default:
		InternalError(c, requestID)
	}
}
