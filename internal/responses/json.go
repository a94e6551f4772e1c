package responses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tree_habitat/internal/apperrors"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Details string   `json:"details,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func NotFound(c *gin.Context, message, details string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Status:  "not-found",
		Message: message,
		Details: details,
	})
}

func Unprocessable(c *gin.Context, message, details string, errs []string) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Status:  "error",
		Message: message,
		Details: details,
		Errors:  errs,
	})
}

func Conflict(c *gin.Context, message, details string) {
	c.JSON(http.StatusConflict, ErrorResponse{
		Status:  "error",
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, message, details string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  "error",
		Message: message,
		Details: details,
	})
}

// Error maps a service failure to a status code and body. One mapping for
// every route: not-found 404, validation 422, creation and association
// conflicts 409, anything unrecognized 500.
func Error(c *gin.Context, err error, message string) {
	var (
		notFound    *apperrors.NotFoundError
		validation  *apperrors.ValidationError
		creation    *apperrors.CreationError
		association *apperrors.AssociationError
	)

	switch {
	case errors.As(err, &notFound):
		NotFound(c, message, titleCase(notFound.Entity)+" not found")
	case errors.As(err, &validation):
		Unprocessable(c, message, "Validation failed", validation.Errors)
	case errors.As(err, &creation):
		Conflict(c, message, creation.Details)
	case errors.As(err, &association):
		Conflict(c, message, association.Error())
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:  "error",
			Message: message,
			Details: err.Error(),
		})
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
