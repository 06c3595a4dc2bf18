package v1handler

import (
	"net/http"
)

// AddTraceability appends a supply chain event. The route is public: the
// logistics portal reports events without an account.
func (h *Handler) AddTraceability(w http.ResponseWriter, r *http.Request) {
	var req LocationUpdate
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	entry, err := h.deps.Ledger.Append(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, DomainEntryToV1(*entry))
}

func (h *Handler) VerifyTraceability(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Ledger.Verify(r.Context(), productID(r))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ChainVerification{
		Valid:    res.Valid,
		Entries:  res.Entries,
		BrokenAt: res.BrokenAt,
	})
}
