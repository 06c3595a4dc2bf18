package v1handler_test

import (
	"net/http"
	"testing"
	"time"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddTraceability_DefaultActor(t *testing.T) {
	s := newTestServer(t)
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	s.ledger.EXPECT().Append(gomock.Any(), domain.LocationUpdate{
		ProductID: "BFT_B1_AAAAAA",
		Location:  "Warehouse, Pune",
		Stage:     "storage",
		Actor:     domain.DefaultActor,
	}).Return(&domain.TraceabilityEntry{
		LogID:        2,
		ProductID:    "BFT_B1_AAAAAA",
		Timestamp:    ts,
		Location:     "Warehouse, Pune",
		Stage:        "storage",
		Actor:        domain.DefaultActor,
		PreviousHash: "aaa",
		CurrentHash:  "bbb",
	}, nil)

	rec := s.do(t, http.MethodPost, "/v1/traceability/add", "",
		`{"product_id":"BFT_B1_AAAAAA","location":"Warehouse, Pune","stage":"storage"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{
		"log_id": 2, "product_id": "BFT_B1_AAAAAA", "timestamp": "2025-03-01T10:00:00Z",
		"location": "Warehouse, Pune", "stage": "storage", "actor": "Supply Chain Partner",
		"status": null, "notes": null, "previous_hash": "aaa", "current_hash": "bbb",
		"blockchain_tx_id": null
	}`, rec.Body.String())
}

func TestAddTraceability_NoChain(t *testing.T) {
	s := newTestServer(t)

	s.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, "Product ID not found or has no initial log."))

	rec := s.do(t, http.MethodPost, "/v1/traceability/add", "",
		`{"product_id":"BFT_NOPE","location":"x","stage":"y","actor":"Truck 7"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product ID not found or has no initial log.", decodeError(t, rec).Detail)
}

func TestVerifyTraceability(t *testing.T) {
	s := newTestServer(t)

	s.ledger.EXPECT().Verify(gomock.Any(), domain.ProductID("BFT_B1_AAAAAA")).
		Return(&domain.ChainVerification{Valid: true, Entries: 3}, nil)

	rec := s.do(t, http.MethodGet, "/v1/product/BFT_B1_AAAAAA/traceability/verify", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"valid":true,"entries":3}`, rec.Body.String())
}

func TestVerifyTraceability_Broken(t *testing.T) {
	s := newTestServer(t)
	brokenAt := int64(5)

	s.ledger.EXPECT().Verify(gomock.Any(), gomock.Any()).
		Return(&domain.ChainVerification{Valid: false, Entries: 4, BrokenAt: &brokenAt}, nil)

	rec := s.do(t, http.MethodGet, "/v1/product/BFT_B1_AAAAAA/traceability/verify", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"valid":false,"entries":4,"broken_at":5}`, rec.Body.String())
}
