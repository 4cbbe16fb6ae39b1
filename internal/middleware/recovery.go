package middleware

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
)

// Recovery turns a handler panic into the same 500 body every other
// unexpected failure gets, logging the panic through zap.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(apperr.ErrInternal.Status, gin.H{"msg": apperr.ErrInternal.Msg})
	})
}
