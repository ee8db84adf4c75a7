package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if path == "/healthz" || path == "/metrics" {
			return
		}

		latency := time.Since(t)
		if raw != "" {
			path = path + "?" + raw
		}
		msg := c.Errors.String()
		if msg == "" {
			msg = "Request"
		}

		statusCode := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case statusCode >= 400 && statusCode < 500:
			event = log.Warn()
		case statusCode >= 500:
			event = log.Error()
		default:
			event = log.Info()
		}

		event.Str("logger", "access").Str("method", c.Request.Method).
			Str("path", path).Dur("resp_time", latency).Int("status", statusCode).
			Int("size", c.Writer.Size()).Str("range", c.GetHeader("Range")).
			Str("request_id", c.GetString("request_id")).
			Str("client_ip", c.ClientIP()).Str("user_agent", c.Request.Header.Get("User-Agent")).Msg(msg)
	}
}
