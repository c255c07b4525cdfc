package dataservice

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/inbound"
	sqlstore "github.com/goliatone/go-catalog/store/sql"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/shopspring/decimal"
)

// Store is the persistence the data service serves over HTTP.
type Store interface {
	ListProducts(ctx context.Context) ([]core.ProductRecord, error)
	GetProduct(ctx context.Context, id int64) (core.ProductRecord, error)
	CreateProduct(ctx context.Context, in sqlstore.ProductInput) (core.ProductRecord, error)
	UpdateProduct(ctx context.Context, id int64, in sqlstore.ProductInput) (core.ProductRecord, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListProductsByCategory(ctx context.Context, name string) ([]core.ProductRecord, error)
	ListCategories(ctx context.Context) ([]core.CategoryRecord, error)
	ListLowStock(ctx context.Context) ([]core.InventoryRecord, error)
}

// productPayload is the wire body of create and update. Absent fields stay
// nil so updates can be partial.
type productPayload struct {
	Name         *string          `json:"nombre"`
	Description  *string          `json:"descripcion"`
	Price        *decimal.Decimal `json:"precio"`
	CategoryID   *int64           `json:"categoriaId"`
	Stock        *int             `json:"stock"`
	MinimumStock *int             `json:"stockMinimo"`
}

func (p productPayload) input() sqlstore.ProductInput {
	return sqlstore.ProductInput{
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		Stock:        p.Stock,
		MinimumStock: p.MinimumStock,
	}
}

type handler struct {
	store        Store
	logger       glog.Logger
	maxBodyBytes int64
}

// NewRouter mounts the data service routes under /data.
func NewRouter(store Store, logger glog.Logger, maxBodyBytes int64) http.Handler {
	logger = glog.Ensure(logger)
	h := &handler{store: store, logger: logger, maxBodyBytes: maxBodyBytes}

	router := inbound.NewRouter(logger)
	router.Get("/healthz", inbound.Healthz)
	router.Route("/data", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Post("/products", h.createProduct)
		r.Get("/products/category/{name}", h.listProductsByCategory)
		r.Get("/products/{id}", h.getProduct)
		r.Put("/products/{id}", h.updateProduct)
		r.Delete("/products/{id}", h.deleteProduct)
		r.Get("/categories", h.listCategories)
		r.Get("/inventory/stock-low", h.listLowStock)
	})
	return router
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, products)
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	product, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, product)
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if envelope := inbound.DecodeJSON(w, r, &payload, h.maxBodyBytes); envelope != nil {
		inbound.WriteError(w, r, h.logger, envelope)
		return
	}
	product, err := h.store.CreateProduct(r.Context(), payload.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusCreated, product)
}

func (h *handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	var payload productPayload
	if envelope := inbound.DecodeJSON(w, r, &payload, h.maxBodyBytes); envelope != nil {
		inbound.WriteError(w, r, h.logger, envelope)
		return
	}
	product, err := h.store.UpdateProduct(r.Context(), id, payload.input())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, product)
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	inbound.WriteNoContent(w)
}

func (h *handler) listProductsByCategory(w http.ResponseWriter, r *http.Request) {
	name, envelope := inbound.NonBlank(r, "name")
	if envelope != nil {
		inbound.WriteError(w, r, h.logger, envelope)
		return
	}
	products, err := h.store.ListProductsByCategory(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, products)
}

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, categories)
}

func (h *handler) listLowStock(w http.ResponseWriter, r *http.Request) {
	inventory, err := h.store.ListLowStock(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, inventory)
}

func (h *handler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, envelope := inbound.PositiveID(r, "id")
	if envelope != nil {
		inbound.WriteError(w, r, h.logger, envelope)
		return 0, false
	}
	return id, true
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	inbound.WriteError(w, r, h.logger, inbound.ErrorFor(err))
}
