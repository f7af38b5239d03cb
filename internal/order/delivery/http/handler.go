package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	cart "github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/httpapi"
	"github.com/sardorbek/bozor/internal/order/domain"
	"github.com/sardorbek/bozor/internal/order/usecase/command"
	"github.com/sardorbek/bozor/internal/order/usecase/query"
	"github.com/sardorbek/bozor/internal/pricing"
	"github.com/sardorbek/bozor/pkg/logger"
)

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	placeHandler        *command.PlaceOrderHandler
	updateStatusHandler *command.UpdateStatusHandler
	listHandler         *query.ListOrdersHandler
	getHandler          *query.GetOrderHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders domain.OrderRepository, carts cart.CartRepository, cfg pricing.Config, publisher command.OrderEventPublisher) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_requests_total",
			Help: "Total number of requests to the order endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_request_duration_seconds",
			Help:    "Duration of order requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)

	return &OrderHandler{
		placeHandler:        command.NewPlaceOrderHandler(orders, carts, cfg, publisher),
		updateStatusHandler: command.NewUpdateStatusHandler(orders),
		listHandler:         query.NewListOrdersHandler(orders),
		getHandler:          query.NewGetOrderHandler(orders),
		requestCounter:      requestCounter,
		requestLatency:      requestLatency,
		ordersPlaced:        ordersPlaced,
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

func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", httpapi.AuthMiddleware(h.PlaceOrder))).Methods("POST")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", httpapi.AuthMiddleware(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", httpapi.AuthMiddleware(h.GetOrder))).Methods("GET")
	router.HandleFunc("/api/orders/{id}/status", h.metricsMiddleware("/api/orders/{id}/status", httpapi.AdminMiddleware(h.UpdateStatus))).Methods("PUT")
}

type placeOrderRequest struct {
	IdempotencyKey  string                 `json:"idempotency_key"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	SaveAddress     bool                   `json:"save_address"`
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.placeHandler.Handle(r.Context(), command.PlaceOrderCommand{
		UserID:          userID,
		IdempotencyKey:  req.IdempotencyKey,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		SaveAddress:     req.SaveAddress,
	})
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "already in progress") {
			status = http.StatusConflict
		}
		httpapi.RespondError(w, status, err.Error())
		return
	}

	h.ordersPlaced.Inc()
	logger.Logger.Info().
		Uint("user_id", userID).
		Str("order_number", order.Number).
		Float64("total_amount", order.TotalAmount).
		Msg("Order placed")

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	orders, err := h.listHandler.Handle(query.ListOrdersQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to list orders")
		httpapi.RespondError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    orders,
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := parseID(r)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.getHandler.Handle(query.GetOrderQuery{OrderID: id, UserID: userID})
	if err != nil {
		httpapi.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    order,
	})
}

// UpdateStatus handles PUT /api/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.updateStatusHandler.Handle(command.UpdateStatusCommand{OrderID: id, Status: req.Status}); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Order status updated",
	})
}

func parseID(r *http.Request) (uint, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
