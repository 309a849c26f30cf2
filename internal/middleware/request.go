package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const requestIDHeader = "X-Request-ID"

func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		c.Next()
	}
}

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		if errMsg := c.GetString("error"); errMsg != "" {
			log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request handled",
				logger.String("request_id", c.GetString("request_id")),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Int("status", c.Writer.Status()),
				logger.Duration("duration", time.Since(start)),
				logger.String("error", errMsg),
			)
			return
		}

		log.LogAttrs(c.Request.Context(), logger.InfoLevel, "request handled",
			logger.String("request_id", c.GetString("request_id")),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
		)
	}
}
