package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/catalog-api/pkg/errors"
)

// Response is the envelope of every successful API response
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:""`
	Data    any    `json:"data"`
}

// ErrorResponse is the envelope of every failed API response
type ErrorResponse struct {
	Success    bool                `json:"success" example:"false"`
	Message    string              `json:"message" example:"Podcast not found"`
	Data       any                 `json:"data"`
	Errors     map[string][]string `json:"errors,omitempty"`
	RetryAfter *int                `json:"retry_after,omitempty"`
}

func errorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// SendSuccess sends a 200 envelope
func SendSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// SendCreated sends a 201 envelope
func SendCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func SendBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(message))
}

func SendUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse("Unauthenticated."))
}

func SendNotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, errorResponse(message))
}

// SendValidationErrors sends a 422 with field-keyed messages
func SendValidationErrors(c *gin.Context, fields map[string][]string) {
	resp := errorResponse("Validation errors")
	resp.Errors = fields
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, resp)
}

// SendTooManyRequests sends a 429 carrying the seconds until the caller may retry
func SendTooManyRequests(c *gin.Context, retryAfter int) {
	c.Header("Retry-After", strconv.Itoa(retryAfter))
	resp := errorResponse("Too Many Requests")
	resp.RetryAfter = &retryAfter
	c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
}

// SendInternalError records err for the request logger and hides it from the caller
func SendInternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse("Internal server error"))
}

// SendError maps an error to its envelope. notFound replaces the message of
// a NOT_FOUND error so each controller reports its own entity.
func SendError(c *gin.Context, err error, notFound string) {
	appErr, ok := apperrors.As(err)
	if !ok {
		SendInternalError(c, err)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeNotFound:
		if notFound == "" {
			notFound = appErr.Message
		}
		SendNotFound(c, notFound)
	case apperrors.ErrCodeValidation:
		fields, _ := appErr.Details["fields"].(map[string][]string)
		SendValidationErrors(c, fields)
	case apperrors.ErrCodeConstraintViolation:
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(appErr.Message))
	case apperrors.ErrCodeBadRequest:
		SendBadRequest(c, appErr.Message)
	case apperrors.ErrCodeUnauthorized:
		SendUnauthorized(c)
	case apperrors.ErrCodeRateLimited:
		retry, _ := appErr.Details["retry_after"].(int)
		SendTooManyRequests(c, retry)
	default:
		SendInternalError(c, err)
	}
}
