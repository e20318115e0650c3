package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/dto"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/pagination"
)

// ReviewService is implemented by service.ReviewDTOService.
type ReviewService interface {
	DTOService[dto.ReviewDTO]
	GetByProductID(ctx context.Context, productID int64, p pagination.Params) (pagination.Result[dto.ReviewDTO], error)
}

// ReviewHandler handles HTTP requests for review endpoints.
type ReviewHandler struct {
	*crudHandler[dto.ReviewDTO]
	reviews ReviewService
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		crudHandler: &crudHandler[dto.ReviewDTO]{
			service: svc,
			setID:   func(d *dto.ReviewDTO, id int64) { d.ID = id },
			logger:  logger,
		},
		reviews: svc,
	}
}

// ListByProduct handles GET /api/v1/products/{productId}/reviews?page=&per_page=
// The page metadata sits next to data in the envelope.
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	result, err := h.reviews.GetByProductID(r.Context(), productID, pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
