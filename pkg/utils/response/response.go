package response

import (
	"net/http"

	"qahub/pkg/errors"
	"qahub/pkg/utils/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JSON sends a 200 response with data encoded as JSON.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Text sends a 200 plain-text confirmation.
func Text(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}

// Error sends an error response.
// Status and body come from errors.Map so every failure has the same shape.
func Error(c *gin.Context, err error) {
	customErr := errors.GetError(err)
	reply := errors.Map(customErr)

	fields := []zap.Field{
		zap.Int("code", int(customErr.Code)),
		zap.Int("status", reply.Status),
		zap.String("message", customErr.Error()),
	}
	if len(customErr.Details) > 0 {
		fields = append(fields, zap.Any("details", customErr.Details))
	}
	if customErr.Code.Category() == errors.CategoryInternal {
		fields = append(fields, zap.String("stack", customErr.Stack))
		logger.Error(c.Request.Context(), "request error", fields...)
	} else {
		logger.Warn(c.Request.Context(), "request rejected", fields...)
	}

	c.String(reply.Status, reply.Body)
}

// AbortWithError aborts the request and sends error response
func AbortWithError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
