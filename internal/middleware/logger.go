package middleware

import (
	"net/http"
	"strings"
	"time"

	chiMid "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Logger emits one structured log entry per request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := NewResponseRecorder(w)
		next.ServeHTTP(rw, r)

		fields := log.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"htmx":        IsHTMX(r.Context()),
		}
		if ip := clientIP(r); ip != "" {
			fields["remote_ip"] = ip
		}
		if rid := chiMid.GetReqID(r.Context()); rid != "" {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	})
}

func clientIP(r *http.Request) string {
	// Trust X-Forwarded-For set by the load balancer (last IP is client)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		p := strings.Split(xff, ",")
		return strings.TrimSpace(p[len(p)-1])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		return host[:i]
	}
	return host
}
