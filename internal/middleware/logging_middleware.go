package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/Ruselmi/mine-and-cheet/internal/logging"
)

// TraceIDKey - ключ trace-ID в gin.Context
const TraceIDKey = "trace_id"

// TraceIDHeader - заголовок ответа с trace-ID
const TraceIDHeader = "X-Trace-ID"

// RequestLogger снабжает каждый HTTP-запрос trace-ID и пишет краткие логи.
// Пути из quiet (например /metrics, /health) логируются на уровне TRACE.
type RequestLogger struct {
	quiet map[string]bool
}

// NewRequestLogger создаёт middleware логирования запросов
func NewRequestLogger(quietPaths ...string) *RequestLogger {
	rl := &RequestLogger{quiet: make(map[string]bool, len(quietPaths))}
	for _, p := range quietPaths {
		rl.quiet[p] = true
	}
	return rl
}

// Handler возвращает gin.HandlerFunc
func (rl *RequestLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Trace-id из OpenTelemetry, если спан уже создан
		span := trace.SpanFromContext(c.Request.Context())
		var traceID string
		if span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		} else {
			traceID = uuid.NewString()
		}
		c.Set(TraceIDKey, traceID)
		c.Header(TraceIDHeader, traceID)

		start := time.Now()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		logf := logging.Info
		if rl.quiet[path] {
			logf = logging.Trace
		}

		logf("[HTTP] ▶ %s %s ip=%s trace=%s", method, path, c.ClientIP(), traceID)

		c.Next()

		logf("[HTTP] ◀ %s %s %d %s trace=%s", method, path, c.Writer.Status(), time.Since(start), traceID)
	}
}
