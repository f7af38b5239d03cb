package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sardorbek/bozor/internal/catalog/domain"
	"github.com/sardorbek/bozor/internal/catalog/usecase/command"
	"github.com/sardorbek/bozor/internal/catalog/usecase/query"
	"github.com/sardorbek/bozor/internal/httpapi"
	"github.com/sardorbek/bozor/pkg/logger"
)

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	// Query handlers
	getHandler      *query.GetProductHandler
	listHandler     *query.ListProductsHandler
	featuredHandler *query.FeaturedProductsHandler
	relatedHandler  *query.RelatedProductsHandler
	facetsHandler   *query.GetFacetsHandler
	statsHandler    *query.GetStatsHandler

	repo           domain.ProductRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalProducts  prometheus.Gauge
}

// NewProductHandler creates a new catalog handler
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to the catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalProducts)

	return &ProductHandler{
		createHandler:   command.NewCreateProductHandler(repo),
		updateHandler:   command.NewUpdateProductHandler(repo),
		deleteHandler:   command.NewDeleteProductHandler(repo),
		getHandler:      query.NewGetProductHandler(repo),
		listHandler:     query.NewListProductsHandler(repo),
		featuredHandler: query.NewFeaturedProductsHandler(repo),
		relatedHandler:  query.NewRelatedProductsHandler(repo),
		facetsHandler:   query.NewGetFacetsHandler(repo),
		statsHandler:    query.NewGetStatsHandler(repo),
		repo:            repo,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		totalProducts:   totalProducts,
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

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *ProductHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/featured", h.metricsMiddleware("/api/products/featured", h.FeaturedProducts)).Methods("GET")
	router.HandleFunc("/api/products/facets", h.metricsMiddleware("/api/products/facets", h.GetFacets)).Methods("GET")
	router.HandleFunc("/api/products/stats", h.metricsMiddleware("/api/products/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id}/related", h.metricsMiddleware("/api/products/{id}/related", h.RelatedProducts)).Methods("GET")

	// Admin routes
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", httpapi.AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", httpapi.AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metricsMiddleware("/api/products/{id}", httpapi.AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
}

type productRequest struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Gender      string  `json:"gender"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	OldPrice    float64 `json:"old_price"`
	NewPrice    float64 `json:"new_price"`
	Quantity    int     `json:"quantity"`
	Featured    bool    `json:"featured"`
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.createHandler.Handle(command.CreateProductCommand{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Gender:      req.Gender,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OldPrice:    req.OldPrice,
		NewPrice:    req.NewPrice,
		Quantity:    req.Quantity,
		Featured:    req.Featured,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateProductsMetric()

	httpapi.RespondJSON(w, http.StatusCreated, httpapi.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListProductsQuery{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Brand:    r.URL.Query().Get("brand"),
		Gender:   r.URL.Query().Get("gender"),
		SortBy:   r.URL.Query().Get("sort"),
		Limit:    limit,
		Offset:   offset,
	}

	products, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, _ := h.repo.Count()

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    count,
			"limit":    q.Limit,
			"offset":   offset,
		},
	})
}

// FeaturedProducts handles GET /api/products/featured
func (h *ProductHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := h.featuredHandler.Handle(query.FeaturedProductsQuery{Limit: limit})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list featured products")
		httpapi.RespondError(w, http.StatusInternalServerError, "Failed to list featured products")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    products,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		httpapi.RespondError(w, http.StatusNotFound, "Product not found")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    product,
	})
}

// RelatedProducts handles GET /api/products/{id}/related
func (h *ProductHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	products, err := h.relatedHandler.Handle(query.RelatedProductsQuery{ProductID: id})
	if err != nil {
		httpapi.RespondError(w, http.StatusNotFound, "Product not found")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    products,
	})
}

// GetFacets handles GET /api/products/facets
func (h *ProductHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.facetsHandler.Handle(query.GetFacetsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to load facets")
		httpapi.RespondError(w, http.StatusInternalServerError, "Failed to load facets")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    facets,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ID:          id,
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Gender:      req.Gender,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		OldPrice:    req.OldPrice,
		NewPrice:    req.NewPrice,
		Quantity:    req.Quantity,
		Featured:    req.Featured,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.updateProductsMetric()

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// GetStats handles GET /api/products/stats
func (h *ProductHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get stats")
		httpapi.RespondError(w, http.StatusInternalServerError, "Failed to get statistics")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
		Success: true,
		Data:    stats,
	})
}

func (h *ProductHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			httpapi.RespondError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}

		httpapi.RespondJSON(w, http.StatusOK, httpapi.Response{
			Success: true,
			Message: "Storefront service is healthy",
		})
	}).Methods("GET")
}

// updateProductsMetric updates the total products gauge
func (h *ProductHandler) updateProductsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalProducts.Set(float64(count))
	}
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}
