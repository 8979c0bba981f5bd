package middleware

import (
	"net/http"
	"time"

	"coletaverde/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger writes one structured line per request.
func RequestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	log := logger.WithField("module", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if u, ok := CurrentUser(c); ok {
			fields["user_id"] = u.ID
		}
		entry := log.WithFields(fields)
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}

// Recovery turns panics into the 500 envelope.
func Recovery(logger logrus.FieldLogger) gin.HandlerFunc {
	log := logger.WithField("module", "http")
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).WithField("path", c.Request.URL.Path).Error("recovered from panic")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
