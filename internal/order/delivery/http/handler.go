package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ispanshop/catalog-service/internal/order/domain"
	"github.com/ispanshop/catalog-service/internal/order/usecase/command"
	"github.com/ispanshop/catalog-service/internal/order/usecase/query"
	"github.com/ispanshop/catalog-service/pkg/logger"
)

// Response is the uniform HTTP envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// OrderHandler exposes the admin order operations over HTTP
type OrderHandler struct {
	listHandler   *query.ListOrdersHandler
	detailHandler *query.GetOrderDetailHandler
	statusHandler *command.UpdateOrderStatusHandler
}

// NewOrderHandler creates a new order HTTP handler
func NewOrderHandler(repo domain.OrderRepository) *OrderHandler {
	return &OrderHandler{
		listHandler:   query.NewListOrdersHandler(repo),
		detailHandler: query.NewGetOrderDetailHandler(repo),
		statusHandler: command.NewUpdateOrderStatusHandler(repo),
	}
}

// RegisterRoutes registers order routes; every route requires an admin token
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/admin/orders", AdminMiddleware(h.ListOrders)).Methods("GET")
	router.HandleFunc("/api/admin/orders/{id:[0-9]+}", AdminMiddleware(h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/admin/orders/{id:[0-9]+}/status", AdminMiddleware(h.UpdateStatus)).Methods("PATCH")
}

// ListOrders handles GET /api/admin/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseOrderCriteria(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	result, err := h.listHandler.Handle(query.ListOrdersQuery{Criteria: criteria})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Order listing failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to list orders"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// GetOrder handles GET /api/admin/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.detailHandler.Handle(query.GetOrderDetailQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "order not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Order detail lookup failed")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "failed to get order"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: detail})
}

type updateStatusRequest struct {
	Status int `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	err := h.statusHandler.Handle(command.UpdateOrderStatusCommand{
		OrderID: id,
		Status:  domain.OrderStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondJSON(w, http.StatusNotFound, Response{Success: false, Error: "order not found"})
			return
		}
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "order status updated"})
}

// parseOrderCriteria maps query string filters onto OrderSearchCriteria
func parseOrderCriteria(r *http.Request) (domain.OrderSearchCriteria, error) {
	var criteria domain.OrderSearchCriteria
	q := r.URL.Query()

	criteria.Keyword = q.Get("keyword")

	if raw := q.Get("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !domain.OrderStatus(parsed).IsValid() {
			return criteria, errors.New("invalid status")
		}
		status := domain.OrderStatus(parsed)
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

	var err error
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

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "invalid order id"})
		return 0, false
	}
	return uint(parsed), true
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
