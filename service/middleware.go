// SPDX-License-Identifier: MIT

package service

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// HeaderRequestID carries the request's correlation ID.
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID is the gin context key holding the same ID.
	ContextRequestID = "requestID"
)

// RequestID tags every request with a UUID. A well-formed incoming
// X-Request-ID is kept; anything else is replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderRequestID))
		if err != nil {
			id = uuid.New()
		}
		c.Set(ContextRequestID, id.String())
		c.Header(HeaderRequestID, id.String())
		c.Next()
	}
}

// AccessLog logs one entry per request once the handlers have run.
func AccessLog(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id": c.GetString(ContextRequestID),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start),
		})
		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last()).Warn("request failed")
			return
		}
		entry.Info("request served")
	}
}
