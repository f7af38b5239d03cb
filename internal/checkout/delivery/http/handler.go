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
	"github.com/sardorbek/bozor/internal/checkout/domain"
	"github.com/sardorbek/bozor/internal/checkout/usecase/command"
	"github.com/sardorbek/bozor/internal/checkout/usecase/query"
	"github.com/sardorbek/bozor/internal/httpapi"
	order "github.com/sardorbek/bozor/internal/order/domain"
	ordercmd "github.com/sardorbek/bozor/internal/order/usecase/command"
)

// CheckoutHandler handles HTTP requests for the checkout wizard
type CheckoutHandler struct {
	startHandler    *command.StartSessionHandler
	shippingHandler *command.SubmitShippingHandler
	paymentHandler  *command.SubmitPaymentHandler
	backHandler     *command.StepBackHandler
	confirmHandler  *command.ConfirmOrderHandler
	getHandler      *query.GetSessionHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sessions domain.SessionStore, carts cart.CartRepository, placeOrder *ordercmd.PlaceOrderHandler) *CheckoutHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_requests_total",
			Help: "Total number of requests to the checkout endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_request_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CheckoutHandler{
		startHandler:    command.NewStartSessionHandler(sessions, carts),
		shippingHandler: command.NewSubmitShippingHandler(sessions),
		paymentHandler:  command.NewSubmitPaymentHandler(sessions),
		backHandler:     command.NewStepBackHandler(sessions),
		confirmHandler:  command.NewConfirmOrderHandler(sessions, placeOrder),
		getHandler:      query.NewGetSessionHandler(sessions),
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
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

func (h *CheckoutHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", httpapi.AuthMiddleware(h.StartSession))).Methods("POST")
	router.HandleFunc("/api/checkout/{id}", h.metricsMiddleware("/api/checkout/{id}", httpapi.AuthMiddleware(h.GetSession))).Methods("GET")
	router.HandleFunc("/api/checkout/{id}/shipping", h.metricsMiddleware("/api/checkout/{id}/shipping", httpapi.AuthMiddleware(h.SubmitShipping))).Methods("PUT")
	router.HandleFunc("/api/checkout/{id}/payment", h.metricsMiddleware("/api/checkout/{id}/payment", httpapi.AuthMiddleware(h.SubmitPayment))).Methods("PUT")
	router.HandleFunc("/api/checkout/{id}/back", h.metricsMiddleware("/api/checkout/{id}/back", httpapi.AuthMiddleware(h.StepBack))).Methods("POST")
	router.HandleFunc("/api/checkout/{id}/confirm", h.metricsMiddleware("/api/checkout/{id}/confirm", httpapi.AuthMiddleware(h.ConfirmOrder))).Methods("POST")
}

// StartSession handles POST /api/checkout
func (h *CheckoutHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	session, err := h.startHandler.Handle(command.StartSessionCommand{UserID: userID})
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "cart is empty") {
			status = http.StatusConflict
		}
		httpapi.RespondError(w, status, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Data:    session,
	})
}

// GetSession handles GET /api/checkout/{id}
func (h *CheckoutHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	session, err := h.getHandler.Handle(query.GetSessionQuery{
		UserID:    userID,
		SessionID: mux.Vars(r)["id"],
	})
	if err != nil {
		httpapi.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    session,
	})
}

// SubmitShipping handles PUT /api/checkout/{id}/shipping
func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		Address     order.ShippingAddress `json:"address"`
		SaveAddress bool                  `json:"save_address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.shippingHandler.Handle(command.SubmitShippingCommand{
		UserID:      userID,
		SessionID:   mux.Vars(r)["id"],
		Address:     req.Address,
		SaveAddress: req.SaveAddress,
	})
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    session,
	})
}

// SubmitPayment handles PUT /api/checkout/{id}/payment
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		Method string             `json:"method"`
		Card   domain.CardDetails `json:"card"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.paymentHandler.Handle(command.SubmitPaymentCommand{
		UserID:    userID,
		SessionID: mux.Vars(r)["id"],
		Method:    req.Method,
		Card:      req.Card,
	})
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    session,
	})
}

// StepBack handles POST /api/checkout/{id}/back
func (h *CheckoutHandler) StepBack(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	session, err := h.backHandler.Handle(command.StepBackCommand{
		UserID:    userID,
		SessionID: mux.Vars(r)["id"],
	})
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    session,
	})
}

// ConfirmOrder handles POST /api/checkout/{id}/confirm
func (h *CheckoutHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpapi.UserIDFromContext(r.Context())
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	session, err := h.confirmHandler.Handle(r.Context(), command.ConfirmOrderCommand{
		UserID:    userID,
		SessionID: mux.Vars(r)["id"],
	})
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "already in progress") {
			status = http.StatusConflict
		}
		httpapi.RespondError(w, status, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    session,
	})
}
