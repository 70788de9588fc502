package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/rocketshoes-cart/internal/cart"
	"github.com/nikolayk812/rocketshoes-cart/internal/domain"
	"github.com/nikolayk812/rocketshoes-cart/internal/notify"
	"github.com/nikolayk812/rocketshoes-cart/internal/storefront"
	"golang.org/x/text/message"
)

// CartStore is the cart surface the handlers drive.
type CartStore interface {
	Cart() domain.Cart
	AddProduct(ctx context.Context, productID int64) cart.Outcome
	RemoveProduct(ctx context.Context, productID int64) cart.Outcome
	UpdateProductAmount(ctx context.Context, productID int64, amount int) cart.Outcome
}

type Storefront interface {
	List(ctx context.Context) ([]storefront.ProductView, error)
	Summary(c domain.Cart) storefront.CartView
}

type CartHandler struct {
	store      CartStore
	storefront Storefront
	notifier   notify.Notifier
	printer    *message.Printer
	logger     *slog.Logger
}

func NewCartHandler(store CartStore, sf Storefront, notifier notify.Notifier, printer *message.Printer, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		store:      store,
		storefront: sf,
		notifier:   notifier,
		printer:    printer,
		logger:     logger,
	}
}

type AddProductRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type UpdateAmountRequestDTO struct {
	Amount int `json:"amount"`
}

type CartResponse struct {
	Cart         storefront.CartView `json:"cart"`
	Notification string              `json:"notification,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *CartHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.storefront.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "list products", "error", err)
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CartResponse{
		Cart: h.storefront.Summary(h.store.Cart()),
	})
}

func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	h.respondOutcome(w, r, h.store.AddProduct(r.Context(), req.ProductID))
}

func (h *CartHandler) UpdateProductAmount(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.respondOutcome(w, r, h.store.UpdateProductAmount(r.Context(), productID, req.Amount))
}

func (h *CartHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	h.respondOutcome(w, r, h.store.RemoveProduct(r.Context(), productID))
}

func (h *CartHandler) respondOutcome(w http.ResponseWriter, r *http.Request, out cart.Outcome) {
	resp := CartResponse{
		Cart: h.storefront.Summary(out.Cart),
	}

	if signal, ok := notify.Surface(r.Context(), h.notifier, out); ok {
		resp.Notification = signal.Message(h.printer)
	}

	respondJSON(w, outcomeStatus(out), resp)
}

func outcomeStatus(out cart.Outcome) int {
	switch out.Kind {
	case cart.Applied, cart.Unchanged:
		return http.StatusOK
	case cart.StockExceeded:
		return http.StatusConflict
	case cart.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return 0, false
	}
	return productID, true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
