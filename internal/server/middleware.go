package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zain0812/portfolio/internal/content"
)

// RequestIDHeader carries the per-request id in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// ErrNotFound is recorded for requests that match no route.
var ErrNotFound = errors.New("not found")

var errStatusMap = map[error]int{
	ErrNotFound:               http.StatusNotFound,
	content.ErrDuplicateTitle: http.StatusInternalServerError,
}

// Response is the JSON body written for failed requests.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RequestID reuses the caller's X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request and every error attached to it.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		for _, e := range c.Errors {
			log.Error().Err(e.Err).Str("request_id", c.GetString(requestIDKey)).Msg("request error")
		}
		log.Debug().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(requestIDKey)).
			Msg("")
	}
}

// ErrorResponder turns the last recorded error into a JSON response when the
// handler has not written anything yet.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := http.StatusInternalServerError
		message := http.StatusText(status)
		for known, code := range errStatusMap {
			if errors.Is(err, known) {
				status, message = code, known.Error()
				break
			}
		}
		c.AbortWithStatusJSON(status, Response{Status: "error", Message: message})
	}
}
