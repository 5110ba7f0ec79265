package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/bikepulse/internal/domain/dto"
)

// AbortWithError stops the chain and writes a dto.ErrorResponse with status.
// err is attached to the context so RequestLogger can report it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// ErrorHandler renders errors attached with c.Error when the handler did
// not write a response itself. A dto.ErrorResponse is passed through as-is;
// anything else becomes a 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	var resp dto.ErrorResponse
	if errors.As(last, &resp) {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last))
}
