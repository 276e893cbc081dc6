package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels onto the HTTP error taxonomy:
// not-found -> 404, invalid state -> 409, validation -> 400, rest -> 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuestionnaireNotFound),
		errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrControlNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSessionNotActive):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrQuestionMismatch),
		errors.Is(err, ErrDependencyNotMet),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
