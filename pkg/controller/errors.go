package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"foodtrace/pkg/logger"
	"foodtrace/pkg/serrors"

	"go.uber.org/zap"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// WriteError maps err to its semantic kind and writes the matching status
// with an ErrorBody. Internal errors are logged and their cause is hidden.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}
	if kind == serrors.ErrUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	WriteJSON(ctx, w, kind.Status(), ErrorBody{
		Code:   kind.Error(),
		Detail: serrors.PublicMessage(err),
	})
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response body", zap.Error(err))
	}
}
