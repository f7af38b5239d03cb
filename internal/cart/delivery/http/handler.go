package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/cart/usecase/command"
	"github.com/sardorbek/bozor/internal/cart/usecase/query"
	catalog "github.com/sardorbek/bozor/internal/catalog/domain"
	"github.com/sardorbek/bozor/internal/httpapi"
	"github.com/sardorbek/bozor/internal/pricing"
	"github.com/sardorbek/bozor/pkg/logger"
)

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	addHandler    *command.AddToCartHandler
	updateHandler *command.UpdateQuantityHandler
	removeHandler *command.RemoveItemHandler
	clearHandler  *command.ClearCartHandler

	getHandler *query.GetCartHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts domain.CartRepository, products catalog.ProductRepository, cfg pricing.Config) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_requests_total",
			Help: "Total number of requests to the cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CartHandler{
		addHandler:     command.NewAddToCartHandler(carts, products),
		updateHandler:  command.NewUpdateQuantityHandler(carts),
		removeHandler:  command.NewRemoveItemHandler(carts),
		clearHandler:   command.NewClearCartHandler(carts),
		getHandler:     query.NewGetCartHandler(carts, cfg),
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

func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", httpapi.AuthMiddleware(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", httpapi.AuthMiddleware(h.ClearCart))).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", httpapi.AuthMiddleware(h.AddToCart))).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", httpapi.AuthMiddleware(h.UpdateQuantity))).Methods("PUT")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", httpapi.AuthMiddleware(h.RemoveItem))).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	view, err := h.getHandler.Handle(query.GetCartQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to load cart")
		httpapi.RespondError(w, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    view,
	})
}

// AddToCart handles POST /api/cart/items
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.addHandler.Handle(command.AddToCartCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to add to cart")
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Added to cart",
	})
}

// UpdateQuantity handles PUT /api/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	itemID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.updateHandler.Handle(command.UpdateQuantityCommand{
		UserID:   userID,
		ItemID:   uint(itemID),
		Quantity: req.Quantity,
	})
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Cart updated",
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	itemID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	err = h.removeHandler.Handle(command.RemoveItemCommand{
		UserID: userID,
		ItemID: uint(itemID),
	})
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Item removed",
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := h.clearHandler.Handle(command.ClearCartCommand{UserID: userID}); err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to clear cart")
		httpapi.RespondError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Cart cleared",
	})
}
