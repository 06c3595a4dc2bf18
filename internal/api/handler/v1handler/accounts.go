package v1handler

import (
	"net/http"

	"foodtrace/internal/account"
)

func tokenResponse(t *account.Token) TokenResponse {
	return TokenResponse{AccessToken: t.AccessToken, TokenType: t.TokenType}
}

// ManufacturerToken exchanges manufacturer credentials (form fields username
// and password) for a manufacturer scoped token.
func (h *Handler) ManufacturerToken(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		writeError(w, r, err)

		return
	}

	t, err := h.deps.Accounts.LoginManufacturer(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, tokenResponse(t))
}

// ConsumerToken exchanges consumer credentials for a consumer scoped token.
func (h *Handler) ConsumerToken(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		writeError(w, r, err)

		return
	}

	t, err := h.deps.Accounts.LoginConsumer(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, tokenResponse(t))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Accounts.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, DomainConsumerToV1(c))
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	c, err := h.deps.Accounts.Profile(r.Context(), GetPrincipalFromContext(r.Context()).ID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainConsumerToV1(c))
}

// UpdateMe replaces the caller's Swasth Wallet.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req Profile
	if err := h.decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	c, err := h.deps.Accounts.UpdateProfile(r.Context(), GetPrincipalFromContext(r.Context()).ID, req.ToDomain())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, DomainConsumerToV1(c))
}
