package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"
	"github.com/nebiyou-tadesse/go-user-service/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainErrorHandler translates usecase errors into HTTP responses. Every
// unrecognized error is reported with a uniform generic message; upstream
// detail is already logged by the usecase and never reaches the client.
func DomainErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrDuplicateEmail),
		errors.Is(err, entity.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrUnauthenticated), errors.Is(err, entity.ErrInvalidToken):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrUnsupportedMedia):
		ErrorHandler(c, http.StatusUnsupportedMediaType, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
	}
}
