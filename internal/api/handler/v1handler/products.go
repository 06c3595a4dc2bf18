package v1handler

import (
	"net/http"

	"foodtrace/pkg/domain"
)

func productID(r *http.Request) domain.ProductID {
	return domain.ProductID(r.PathValue("product_id"))
}

func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductCreate
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		writeError(w, r, err)

		return
	}

	p, err := h.deps.Catalog.CreateProduct(r.Context(), GetPrincipalFromContext(r.Context()), draft)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, DomainProductToV1(p))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Catalog.Product(r.Context(), productID(r))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainProductToV1(p))
}

func (h *Handler) ManufacturerProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.deps.Catalog.ManufacturerProducts(r.Context(), GetPrincipalFromContext(r.Context()).ID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	out := make([]Product, 0, len(products))
	for i := range products {
		out = append(out, DomainProductToV1(&products[i]))
	}

	writeJSON(w, r, http.StatusOK, out)
}

// AnalyzeProduct evaluates the product against the caller's health profile.
func (h *Handler) AnalyzeProduct(w http.ResponseWriter, r *http.Request) {
	issues, err := h.deps.Catalog.Analyze(r.Context(), GetPrincipalFromContext(r.Context()).ID, productID(r))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, Analysis{Issues: issues})
}

func (h *Handler) AddRecall(w http.ResponseWriter, r *http.Request) {
	var req RecallCreate
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	recall, err := h.deps.Catalog.AddRecall(r.Context(),
		GetPrincipalFromContext(r.Context()).ID, req.BatchNumber, req.Reason)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, DomainRecallToV1(*recall))
}

func (h *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewCreate
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	review, err := h.deps.Catalog.AddReview(r.Context(),
		GetPrincipalFromContext(r.Context()), domain.ProductID(req.ProductID), req.Rating, req.Comment)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, DomainReviewToV1(*review))
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.deps.Catalog.Reviews(r.Context(), productID(r))
	if err != nil {
		writeError(w, r, err)

		return
	}

	out := make([]Review, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, DomainReviewToV1(rv))
	}

	writeJSON(w, r, http.StatusOK, out)
}
