// Package v1handler serves the v1 REST API of FoodTrace.
package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"foodtrace/internal/account"
	"foodtrace/internal/catalog"
	"foodtrace/internal/traceability"
	"foodtrace/pkg/controller"
	"foodtrace/pkg/serrors"
)

// DefaultMaxBodyBytes caps request bodies when Options leave it unset.
const DefaultMaxBodyBytes = 1 << 20

// Deps are the services the handlers delegate to.
type Deps struct {
	Accounts account.Accounts
	Catalog  catalog.Catalog
	Ledger   traceability.Ledger
}

// Options tune request decoding.
type Options struct {
	MaxBodyBytes int64
}

type Handler struct {
	deps         Deps
	maxBodyBytes int64
}

func New(deps Deps, opts Options) *Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{deps: deps, maxBodyBytes: opts.MaxBodyBytes}
}

// Register mounts every v1 route on mux. Routes are declared with their full
// /v1 path so that the matched pattern can label request metrics.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	consumer := sec.Require(scopeConsumer)
	manufacturer := sec.Require(scopeManufacturer)

	// accounts
	mux.HandleFunc("POST /v1/token", h.ManufacturerToken)
	mux.HandleFunc("POST /v1/users/register", h.Register)
	mux.HandleFunc("POST /v1/users/token", h.ConsumerToken)
	mux.Handle("GET /v1/users/me", consumer(http.HandlerFunc(h.Me)))
	mux.Handle("PUT /v1/users/me", consumer(http.HandlerFunc(h.UpdateMe)))

	// products
	mux.Handle("POST /v1/products/add", manufacturer(http.HandlerFunc(h.AddProduct)))
	mux.HandleFunc("GET /v1/product/{product_id}", h.GetProduct)
	mux.Handle("GET /v1/manufacturer/products", manufacturer(http.HandlerFunc(h.ManufacturerProducts)))
	mux.Handle("GET /v1/product/{product_id}/analysis", consumer(http.HandlerFunc(h.AnalyzeProduct)))

	// traceability
	mux.HandleFunc("POST /v1/traceability/add", h.AddTraceability)
	mux.HandleFunc("GET /v1/product/{product_id}/traceability/verify", h.VerifyTraceability)

	// recalls and reviews
	mux.Handle("POST /v1/recalls/add", manufacturer(http.HandlerFunc(h.AddRecall)))
	mux.Handle("POST /v1/reviews/add", consumer(http.HandlerFunc(h.AddReview)))
	mux.HandleFunc("GET /v1/reviews/{product_id}", h.ListReviews)
}

// decodeJSON reads a single JSON document from the request body into v.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
		case errors.Is(err, io.EOF):
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		default:
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body: %s", err.Error())
		}
	}

	return nil
}

// parseForm reads an application/x-www-form-urlencoded body, as sent by the
// OAuth2 password flow of the portals.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid form body")
	}

	return nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	controller.WriteError(r.Context(), w, err)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	controller.WriteJSON(r.Context(), w, status, v)
}
