package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
)

// Errors turns the last error a handler attached with c.Error into a
// {"msg": ...} response. Errors apperr cannot resolve are logged and
// answered with a bare 500 so nothing internal reaches the caller.
func Errors(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		appErr, ok := apperr.Resolve(last.Err)
		if !ok {
			log.Error("unhandled error",
				zap.Error(last.Err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetString(RequestIDKey)),
			)
			appErr = apperr.ErrInternal
		}

		c.JSON(appErr.Status, gin.H{"msg": appErr.Msg})
	}
}
