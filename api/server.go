package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	catalog "github.com/goliatone/go-catalog"
	catalogcommand "github.com/goliatone/go-catalog/command"
	"github.com/goliatone/go-catalog/core"
	"github.com/goliatone/go-catalog/inbound"
	catalogquery "github.com/goliatone/go-catalog/query"
	gocmd "github.com/goliatone/go-command"
	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

type Option func(*Server)

func WithLogger(logger glog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

func WithMaxBodyBytes(limit int64) Option {
	return func(s *Server) {
		s.maxBodyBytes = limit
	}
}

type Server struct {
	commands     catalog.Commands
	queries      catalog.Queries
	logger       glog.Logger
	maxBodyBytes int64
	router       *chi.Mux
}

func NewServer(facade *catalog.Facade, opts ...Option) (*Server, error) {
	if facade == nil {
		return nil, goerrors.New("catalog facade is required", goerrors.CategoryInternal).
			WithTextCode(core.ErrorInternal)
	}
	s := &Server{
		commands:     facade.Commands(),
		queries:      facade.Queries(),
		maxBodyBytes: inbound.DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.logger = glog.Ensure(s.logger)
	s.router = inbound.NewRouter(s.logger)
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Get("/healthz", inbound.Healthz)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/products", s.listProducts)
		r.Post("/products", s.createProduct)
		r.Get("/products/category/{name}", s.listProductsByCategory)
		r.Get("/products/{id}", s.getProduct)
		r.Put("/products/{id}", s.updateProduct)
		r.Delete("/products/{id}", s.deleteProduct)
		r.Get("/categories", s.listCategories)
		r.Get("/reports/stock-low", s.stockLowReport)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.queries.ListProducts.Query(r.Context(), catalogquery.ListProductsMessage{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	msg := catalogquery.GetProductMessage{ID: id}
	if err := msg.Validate(); err != nil {
		s.fail(w, r, parameterError(err, "id"))
		return
	}
	product, err := s.queries.GetProduct.Query(r.Context(), msg)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, product)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req core.ProductMutationRequest
	if envelope := inbound.DecodeJSON(w, r, &req, s.maxBodyBytes); envelope != nil {
		inbound.WriteError(w, r, s.logger, envelope)
		return
	}
	msg := catalogcommand.CreateProductMessage{Request: req}
	if err := msg.Validate(); err != nil {
		s.fail(w, r, parameterError(err, "body"))
		return
	}
	collector := gocmd.NewResult[core.ProductRecord]()
	if err := s.commands.CreateProduct.Execute(gocmd.ContextWithResult(r.Context(), collector), msg); err != nil {
		s.fail(w, r, err)
		return
	}
	product, _ := collector.Load()
	inbound.WriteJSON(w, http.StatusCreated, product)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var req core.ProductMutationRequest
	if envelope := inbound.DecodeJSON(w, r, &req, s.maxBodyBytes); envelope != nil {
		inbound.WriteError(w, r, s.logger, envelope)
		return
	}
	msg := catalogcommand.UpdateProductMessage{ID: id, Request: req}
	if err := msg.Validate(); err != nil {
		s.fail(w, r, parameterError(err, "id"))
		return
	}
	collector := gocmd.NewResult[core.ProductRecord]()
	if err := s.commands.UpdateProduct.Execute(gocmd.ContextWithResult(r.Context(), collector), msg); err != nil {
		s.fail(w, r, err)
		return
	}
	product, _ := collector.Load()
	inbound.WriteJSON(w, http.StatusOK, product)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	msg := catalogcommand.DeleteProductMessage{ID: id}
	if err := msg.Validate(); err != nil {
		s.fail(w, r, parameterError(err, "id"))
		return
	}
	if err := s.commands.DeleteProduct.Execute(r.Context(), msg); err != nil {
		s.fail(w, r, err)
		return
	}
	inbound.WriteNoContent(w)
}

func (s *Server) listProductsByCategory(w http.ResponseWriter, r *http.Request) {
	msg := catalogquery.ListProductsByCategoryMessage{Name: inbound.PathParam(r, "name")}
	if err := msg.Validate(); err != nil {
		s.fail(w, r, parameterError(err, "name"))
		return
	}
	products, err := s.queries.ListProductsByCategory.Query(r.Context(), msg)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.queries.ListCategories.Query(r.Context(), catalogquery.ListCategoriesMessage{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, categories)
}

func (s *Server) stockLowReport(w http.ResponseWriter, r *http.Request) {
	inventory, err := s.queries.ListLowStock.Query(r.Context(), catalogquery.ListLowStockMessage{})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	inbound.WriteJSON(w, http.StatusOK, inventory)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	inbound.WriteError(w, r, s.logger, inbound.ErrorFor(err))
}

func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(inbound.PathParam(r, "id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, core.NewParameterValidationError("id", "must be a valid integer")
	}
	return id, nil
}
