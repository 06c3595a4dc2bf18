package traceability

import (
	"context"

	"foodtrace/pkg/domain"
)

// Ledger records and verifies product hash chains.
//
//go:generate mockgen -package mocktraceability -source=interface.go -destination=mock/mocktraceability.go *
type Ledger interface {
	// Append chains a supply chain event to the product's latest entry.
	Append(ctx context.Context, update domain.LocationUpdate) (*domain.TraceabilityEntry, error)
	// Verify recomputes every hash of the product's chain.
	Verify(ctx context.Context, productID domain.ProductID) (*domain.ChainVerification, error)
}
