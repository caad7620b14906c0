package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/metrics"
	"gearshare-backend/internal/security"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// UserIDHeader carries the caller identity set by the trusted gateway.
const UserIDHeader = "X-Sharer-User-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogging tags each request with an id and records latency and
// status, both in the log and in the Prometheus counters.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		elapsed := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
		logger.Debug("Handled request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", elapsed.Milliseconds())
	})
}

// CallerResolver extracts the caller identity from either the trusted
// user-id header or a signed bearer token.
type CallerResolver struct {
	tokens security.TokenManager
}

func NewCallerResolver(tokens security.TokenManager) *CallerResolver {
	return &CallerResolver{tokens: tokens}
}

func (c *CallerResolver) CallerID(r *http.Request) (int64, error) {
	if raw := r.Header.Get(UserIDHeader); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return 0, domain.NewValidation("Invalid %s header: %s", UserIDHeader, raw)
		}
		return id, nil
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		claims, err := c.tokens.ValidateToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			return 0, domain.NewValidation("Invalid bearer token")
		}
		return claims.UserID, nil
	}
	return 0, domain.NewValidation("Missing %s header", UserIDHeader)
}
