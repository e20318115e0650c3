package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// DTOService is the set of operations a catalog resource exposes over HTTP.
type DTOService[D any] interface {
	GetEntities(ctx context.Context) ([]D, error)
	GetByID(ctx context.Context, id int64) (*D, error)
	Add(ctx context.Context, d *D) (*D, error)
	Update(ctx context.Context, d *D) (*D, error)
	Delete(ctx context.Context, id int64) error
}

// crudHandler serves the five CRUD endpoints of one resource.
type crudHandler[D any] struct {
	service DTOService[D]
	setID   func(d *D, id int64)
	logger  *slog.Logger
}

// Routes mounts the handler on r:
//
//	GET    /      list
//	GET    /{id}  get
//	POST   /      create
//	PUT    /{id}  update
//	DELETE /{id}  delete
func (h *crudHandler[D]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET on the collection.
func (h *crudHandler[D]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetEntities(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, items)
}

// Get handles GET /{id}.
func (h *crudHandler[D]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, item)
}

// Create handles POST on the collection. Any id in the body is ignored.
func (h *crudHandler[D]) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decode(w, r)
	if !ok {
		return
	}
	h.setID(body, 0)

	created, err := h.service.Add(r.Context(), body)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusCreated, created)
}

// Update handles PUT /{id}. The path id wins over any id in the body.
func (h *crudHandler[D]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	body, ok := h.decode(w, r)
	if !ok {
		return
	}
	h.setID(body, id)

	updated, err := h.service.Update(r.Context(), body)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, updated)
}

// Delete handles DELETE /{id}.
func (h *crudHandler[D]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *crudHandler[D]) decode(w http.ResponseWriter, r *http.Request) (*D, bool) {
	var body D
	if err := httputil.DecodeJSON(w, r, &body); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()},
		})
		return nil, false
	}
	if err := validator.Validate(body); err != nil {
		httputil.WriteValidationError(w, err)
		return nil, false
	}
	return &body, true
}
