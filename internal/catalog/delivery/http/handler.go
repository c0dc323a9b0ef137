package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
	"github.com/ispanshop/catalog-service/internal/catalog/usecase/command"
	"github.com/ispanshop/catalog-service/internal/catalog/usecase/query"
	"github.com/ispanshop/catalog-service/kafka"
	"github.com/ispanshop/catalog-service/pkg/logger"
)

// Response is the uniform HTTP envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CatalogHandler exposes the catalog and moderation operations over HTTP
type CatalogHandler struct {
	createHandler   *command.CreateProductHandler
	approveHandler  *command.ApproveProductHandler
	rejectHandler   *command.RejectProductHandler
	batchHandler    *command.BatchUpdateStatusHandler
	searchHandler   *query.SearchProductsHandler
	detailHandler   *query.GetProductDetailHandler
	pendingHandler  *query.ListPendingReviewHandler
	rejectedHandler *query.ListRecentlyRejectedHandler
	taxonomyHandler *query.ListTaxonomyHandler
	publisher       *kafka.Publisher

	requestCounter    *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	moderationCounter *prometheus.CounterVec
	searchResultSize  prometheus.Summary
	pendingGauge      prometheus.Gauge
}

// NewCatalogHandler creates a new catalog HTTP handler and registers its
// Prometheus collectors.
func NewCatalogHandler(
	createHandler *command.CreateProductHandler,
	approveHandler *command.ApproveProductHandler,
	rejectHandler *command.RejectProductHandler,
	batchHandler *command.BatchUpdateStatusHandler,
	searchHandler *query.SearchProductsHandler,
	detailHandler *query.GetProductDetailHandler,
	pendingHandler *query.ListPendingReviewHandler,
	rejectedHandler *query.ListRecentlyRejectedHandler,
	taxonomyHandler *query.ListTaxonomyHandler,
	publisher *kafka.Publisher,
) *CatalogHandler {
	h := &CatalogHandler{
		createHandler:   createHandler,
		approveHandler:  approveHandler,
		rejectHandler:   rejectHandler,
		batchHandler:    batchHandler,
		searchHandler:   searchHandler,
		detailHandler:   detailHandler,
		pendingHandler:  pendingHandler,
		rejectedHandler: rejectedHandler,
		taxonomyHandler: taxonomyHandler,
		publisher:       publisher,

		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_http_requests_total",
				Help: "Total number of catalog HTTP requests",
			},
			[]string{"endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_http_request_duration_seconds",
				Help:    "Catalog HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		moderationCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_moderation_actions_total",
				Help: "Moderation actions by type and outcome",
			},
			[]string{"action", "outcome"},
		),
		searchResultSize: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name:       "catalog_search_result_size",
				Help:       "Number of rows returned per search page",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
		),
		pendingGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_pending_review_products",
				Help: "Products waiting for manual review, as of the last queue read",
			},
		),
	}

	prometheus.MustRegister(
		h.requestCounter,
		h.requestDuration,
		h.moderationCounter,
		h.searchResultSize,
		h.pendingGauge,
	)

	return h
}

// RegisterRoutes registers catalog routes. Moderation and creation routes
// require an admin token; browsing routes are public.
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Fixed paths before the {id} matcher
	router.HandleFunc("/api/products/pending-review", AdminMiddleware(h.instrument("pending_review", h.ListPendingReview))).Methods("GET")
	router.HandleFunc("/api/products/rejected", AdminMiddleware(h.instrument("rejected", h.ListRecentlyRejected))).Methods("GET")
	router.HandleFunc("/api/products/status", AdminMiddleware(h.instrument("batch_status", h.BatchUpdateStatus))).Methods("PATCH")

	router.HandleFunc("/api/products", h.instrument("search", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/api/products", AdminMiddleware(h.instrument("create", h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id:[0-9]+}", h.instrument("detail", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products/{id:[0-9]+}/approve", AdminMiddleware(h.instrument("approve", h.ApproveProduct))).Methods("POST")
	router.HandleFunc("/api/products/{id:[0-9]+}/reject", AdminMiddleware(h.instrument("reject", h.RejectProduct))).Methods("POST")

	router.HandleFunc("/api/categories", h.instrument("categories", h.ListCategories)).Methods("GET")
	router.HandleFunc("/api/brands", h.instrument("brands", h.ListBrands)).Methods("GET")
	router.HandleFunc("/api/stores", h.instrument("stores", h.ListStores)).Methods("GET")
}

// RegisterHealthCheck registers the liveness endpoint
func RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, Response{
					Success: false,
					Error:   "database unreachable",
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "healthy",
		})
	}).Methods("GET")
}

// instrument wraps an endpoint with request counting and latency observation
func (h *CatalogHandler) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(ww, r)

		h.requestCounter.WithLabelValues(endpoint, strconv.Itoa(ww.statusCode)).Inc()
		h.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// SearchProducts handles GET /api/products
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseSearchCriteria(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	result, err := h.searchHandler.Handle(query.SearchProductsQuery{Criteria: criteria})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Product search failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to search products"})
		return
	}

	h.searchResultSize.Observe(float64(len(result.Data)))

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.detailHandler.Handle(query.GetProductDetailQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "product not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Product detail lookup failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to get product"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: detail})
}

type variantRequest struct {
	SkuCode       string  `json:"sku_code"`
	VariantName   string  `json:"variant_name"`
	SpecValueJSON string  `json:"spec_value_json"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	SafetyStock   int     `json:"safety_stock"`
}

type imageRequest struct {
	ImageURL  string `json:"image_url"`
	IsMain    bool   `json:"is_main"`
	SortOrder int    `json:"sort_order"`
}

type createProductRequest struct {
	StoreID     uint             `json:"store_id"`
	CategoryID  uint             `json:"category_id"`
	BrandID     uint             `json:"brand_id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Variants    []variantRequest `json:"variants"`
	Images      []imageRequest   `json:"images"`
}

// CreateProduct handles POST /api/products
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	cmd := command.CreateProductCommand{
		StoreID:     req.StoreID,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
		Name:        req.Name,
		Description: req.Description,
	}
	for _, v := range req.Variants {
		cmd.Variants = append(cmd.Variants, command.VariantInput{
			SkuCode:       v.SkuCode,
			VariantName:   v.VariantName,
			SpecValueJSON: v.SpecValueJSON,
			Price:         v.Price,
			Stock:         v.Stock,
			SafetyStock:   v.SafetyStock,
		})
	}
	for _, img := range req.Images {
		cmd.Images = append(cmd.Images, command.ImageInput{
			ImageURL:  img.ImageURL,
			IsMain:    img.IsMain,
			SortOrder: img.SortOrder,
		})
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.moderationCounter.WithLabelValues("create", product.Status.String()).Inc()

	if err := h.publisher.PublishProductModerated(r.Context(), kafka.ProductModeratedEvent{
		ProductID:    product.ID,
		Status:       int(product.Status),
		RejectReason: product.RejectReason,
	}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to publish moderation event")
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "product created",
		Data: map[string]interface{}{
			"id":     product.ID,
			"status": product.Status,
		},
	})
}

// ApproveProduct handles POST /api/products/{id}/approve
func (h *CatalogHandler) ApproveProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	outcome, err := h.approveHandler.Handle(command.ApproveProductCommand{ProductID: id})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Product approval failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to approve product"})
		return
	}

	h.moderationCounter.WithLabelValues("approve", outcome.String()).Inc()

	if outcome == command.OutcomeUpdated {
		if err := h.publisher.PublishProductModerated(r.Context(), kafka.ProductModeratedEvent{
			ProductID: id,
			Status:    int(domain.StatusPublished),
		}); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Failed to publish moderation event")
		}
	}

	// A missing id gets the same acknowledgement as a hit
	respondJSON(w, http.StatusOK, Response{Success: true, Message: "product approved"})
}

type rejectProductRequest struct {
	Reason *string `json:"reason"`
}

// RejectProduct handles POST /api/products/{id}/reject
func (h *CatalogHandler) RejectProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req rejectProductRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
			return
		}
	}

	outcome, err := h.rejectHandler.Handle(command.RejectProductCommand{ProductID: id, Reason: req.Reason})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Product rejection failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to reject product"})
		return
	}

	h.moderationCounter.WithLabelValues("reject", outcome.String()).Inc()

	if outcome == command.OutcomeUpdated {
		if err := h.publisher.PublishProductModerated(r.Context(), kafka.ProductModeratedEvent{
			ProductID:    id,
			Status:       int(domain.StatusRejected),
			RejectReason: req.Reason,
		}); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Failed to publish moderation event")
		}
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "product rejected"})
}

type batchUpdateStatusRequest struct {
	ProductIDs   []uint `json:"product_ids"`
	TargetStatus int    `json:"target_status"`
}

// BatchUpdateStatus handles PATCH /api/products/status
func (h *CatalogHandler) BatchUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req batchUpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	affected, err := h.batchHandler.Handle(command.BatchUpdateStatusCommand{
		ProductIDs:   req.ProductIDs,
		TargetStatus: domain.ProductStatus(req.TargetStatus),
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	h.moderationCounter.WithLabelValues("batch", domain.ProductStatus(req.TargetStatus).String()).Inc()

	logger.WithContext(r.Context()).Info().
		Int("requested", len(req.ProductIDs)).
		Int64("affected", affected).
		Int("target_status", req.TargetStatus).
		Msg("Batch status update applied")

	if affected > 0 {
		if err := h.publisher.PublishProductBatchModerated(r.Context(), kafka.ProductBatchModeratedEvent{
			ProductIDs:    req.ProductIDs,
			Status:        req.TargetStatus,
			AffectedCount: affected,
		}); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Failed to publish batch moderation event")
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "status updated",
		Data:    map[string]interface{}{"affected": affected},
	})
}

// ListPendingReview handles GET /api/products/pending-review
func (h *CatalogHandler) ListPendingReview(w http.ResponseWriter, r *http.Request) {
	items, err := h.pendingHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Pending review listing failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to list pending products"})
		return
	}

	h.pendingGauge.Set(float64(len(items)))

	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// ListRecentlyRejected handles GET /api/products/rejected
func (h *CatalogHandler) ListRecentlyRejected(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	items, err := h.rejectedHandler.Handle(query.ListRecentlyRejectedQuery{Limit: limit})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := h.taxonomyHandler.Categories()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Category listing failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to list categories"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// ListBrands handles GET /api/brands, optionally scoped by category_id
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	categoryID, err := optionalUintParam(r, "category_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "invalid category_id"})
		return
	}

	var items []query.ReferenceItem
	if categoryID != nil {
		items, err = h.taxonomyHandler.BrandsForCategory(categoryID)
	} else {
		items, err = h.taxonomyHandler.Brands()
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Brand listing failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to list brands"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// ListStores handles GET /api/stores
func (h *CatalogHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	items, err := h.taxonomyHandler.Stores()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Store listing failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to list stores"})
		return
	}
	respondJSON(w, http.StatusOK, Response{Success: true, Data: items})
}

// parseSearchCriteria maps query string filters onto SearchCriteria
func parseSearchCriteria(r *http.Request) (domain.SearchCriteria, error) {
	var criteria domain.SearchCriteria
	q := r.URL.Query()

	var err error
	if criteria.ParentCategoryID, err = optionalUintParam(r, "parent_category_id"); err != nil {
		return criteria, errors.New("invalid parent_category_id")
	}
	if criteria.CategoryID, err = optionalUintParam(r, "category_id"); err != nil {
		return criteria, errors.New("invalid category_id")
	}
	if criteria.StoreID, err = optionalUintParam(r, "store_id"); err != nil {
		return criteria, errors.New("invalid store_id")
	}
	if criteria.BrandID, err = optionalUintParam(r, "brand_id"); err != nil {
		return criteria, errors.New("invalid brand_id")
	}

	criteria.Keyword = q.Get("keyword")

	if raw := q.Get("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !domain.ProductStatus(parsed).IsValid() {
			return criteria, errors.New("invalid status")
		}
		status := domain.ProductStatus(parsed)
		criteria.Status = &status
	}

	if raw := q.Get("start_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return criteria, errors.New("invalid start_date")
		}
		criteria.StartDate = &t
	}
	if raw := q.Get("end_date"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return criteria, errors.New("invalid end_date")
		}
		criteria.EndDate = &t
	}

	if raw := q.Get("page"); raw != "" {
		if criteria.PageNumber, err = strconv.Atoi(raw); err != nil {
			return criteria, errors.New("invalid page")
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		if criteria.PageSize, err = strconv.Atoi(raw); err != nil {
			return criteria, errors.New("invalid page_size")
		}
	}

	return criteria, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func optionalUintParam(r *http.Request, name string) (*uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	value := uint(parsed)
	return &value, nil
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "invalid product id"})
		return 0, false
	}
	return uint(parsed), true
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
