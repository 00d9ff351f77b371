package middleware

import (
	"fmt"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/blogem/radiocalco/userctx"
)

// RequestLogger logs one structured line per request through logrus
func RequestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return chimiddleware.RequestLogger(&logFormatter{log: log})
}

type logFormatter struct {
	log logrus.FieldLogger
}

func (f *logFormatter) NewLogEntry(r *http.Request) chimiddleware.LogEntry {
	fields := logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"remote": getIPAddress(r),
	}
	if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
		fields["request_id"] = reqID
	}
	return &logEntry{log: f.log.WithFields(fields)}
}

type logEntry struct {
	log logrus.FieldLogger
}

func (e *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	entry := e.log.WithFields(logrus.Fields{
		"status":  status,
		"bytes":   bytes,
		"elapsed": elapsed.Round(time.Microsecond).String(),
	})

	switch {
	case status >= http.StatusInternalServerError:
		entry.Warn("request failed")
	default:
		entry.Info("request completed")
	}
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.log.WithFields(logrus.Fields{
		"panic": fmt.Sprintf("%+v", v),
		"stack": string(stack),
	}).Error("request panicked")
}

// RequestID copies chi's request id into userctx for code that only sees a context
func RequestID(next http.Handler) http.Handler {
	return chimiddleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := userctx.SetRequestID(r.Context(), chimiddleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	}))
}
