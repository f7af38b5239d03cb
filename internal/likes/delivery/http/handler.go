package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sardorbek/bozor/internal/httpapi"
	"github.com/sardorbek/bozor/internal/likes/domain"
	"github.com/sardorbek/bozor/internal/likes/usecase/command"
	"github.com/sardorbek/bozor/internal/likes/usecase/query"
	"github.com/sardorbek/bozor/pkg/logger"
)

// LikeHandler handles HTTP requests for the wishlist
type LikeHandler struct {
	toggleHandler *command.ToggleLikeHandler
	listHandler   *query.ListLikesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likes domain.LikeRepository) *LikeHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "likes_requests_total",
			Help: "Total number of requests to the likes endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "likes_request_duration_seconds",
			Help:    "Duration of likes requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &LikeHandler{
		toggleHandler:  command.NewToggleLikeHandler(likes),
		listHandler:    query.NewListLikesHandler(likes),
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *LikeHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *LikeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/likes", h.metricsMiddleware("/api/likes", httpapi.AuthMiddleware(h.ListLikes))).Methods("GET")
	router.HandleFunc("/api/likes/toggle", h.metricsMiddleware("/api/likes/toggle", httpapi.AuthMiddleware(h.ToggleLike))).Methods("POST")
}

// ListLikes handles GET /api/likes
func (h *LikeHandler) ListLikes(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	likes, err := h.listHandler.Handle(query.ListLikesQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to load likes")
		httpapi.RespondError(w, http.StatusInternalServerError, "Failed to load likes")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    likes,
	})
}

// ToggleLike handles POST /api/likes/toggle
func (h *LikeHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	liked, err := h.toggleHandler.Handle(command.ToggleLikeCommand{
		UserID:    userID,
		ProductID: req.ProductID,
	})
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    map[string]bool{"liked": liked},
	})
}
