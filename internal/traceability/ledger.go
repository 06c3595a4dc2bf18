// Package traceability maintains the per-product hash chain of supply chain
// events.
package traceability

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/logger"
	"foodtrace/pkg/metrics"
	"foodtrace/pkg/serrors"
	"foodtrace/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "foodtrace/internal/traceability"

type ledger struct {
	storage storage.Storage
	tracer  trace.Tracer
	now     func() time.Time
}

// Append validates update and chains it to the product's latest entry. The
// product row is locked for the duration of the transaction so that two
// concurrent appends cannot fork the chain.
func (l ledger) Append(ctx context.Context, update domain.LocationUpdate) (*domain.TraceabilityEntry, error) {
	ctx, span := l.tracer.Start(ctx, "Ledger.Append",
		trace.WithAttributes(attribute.String("product.id", string(update.ProductID))))
	defer span.End()

	update, err := normalizeUpdate(update)
	if err != nil {
		return nil, err
	}

	var entry *domain.TraceabilityEntry
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		found, err := tx.LockProduct(ctx, update.ProductID)
		if err != nil {
			return fmt.Errorf("could not lock product: %w", err)
		}
		if !found {
			return serrors.With(serrors.ErrNotFound, "Product ID not found or has no initial log.")
		}

		latest, err := tx.LatestTraceabilityEntry(ctx, update.ProductID)
		if err != nil {
			return fmt.Errorf("could not get latest traceability entry: %w", err)
		}
		if latest == nil {
			return serrors.With(serrors.ErrNotFound, "Product ID not found or has no initial log.")
		}

		entry, err = tx.StoreTraceabilityEntry(ctx, NewEntry(update, latest.CurrentHash, l.now()))
		if err != nil {
			return fmt.Errorf("could not store traceability entry: %w", err)
		}

		return nil
	}); err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not append traceability entry: %w", err)
	}

	metrics.TraceabilityEntries.WithLabelValues(entry.Stage).Inc()
	logger.Debug(ctx, "traceability entry appended",
		zap.String("product_id", string(entry.ProductID)),
		zap.Int64("log_id", entry.LogID),
		zap.String("stage", entry.Stage))

	return entry, nil
}

// Verify reloads the product's chain and recomputes its hashes.
func (l ledger) Verify(ctx context.Context, productID domain.ProductID) (*domain.ChainVerification, error) {
	ctx, span := l.tracer.Start(ctx, "Ledger.Verify",
		trace.WithAttributes(attribute.String("product.id", string(productID))))
	defer span.End()

	chain, err := l.storage.TraceabilityByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("could not get traceability: %w", err)
	}
	if len(chain) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "Product ID not found or has no initial log.")
	}

	res := VerifyChain(chain)
	metrics.ChainVerifications.WithLabelValues(strconv.FormatBool(res.Valid)).Inc()
	span.SetAttributes(attribute.Bool("chain.valid", res.Valid))
	if !res.Valid {
		logger.Warn(ctx, "traceability chain broken",
			zap.String("product_id", string(productID)),
			zap.Int64p("broken_at", res.BrokenAt))
	}

	return &res, nil
}

func normalizeUpdate(update domain.LocationUpdate) (domain.LocationUpdate, error) {
	update.ProductID = domain.ProductID(strings.TrimSpace(string(update.ProductID)))
	update.Location = strings.TrimSpace(update.Location)
	update.Stage = strings.TrimSpace(update.Stage)
	update.Actor = strings.TrimSpace(update.Actor)

	switch {
	case update.ProductID == "":
		return update, serrors.With(serrors.ErrBadRequest, "product_id is required")
	case update.Location == "":
		return update, serrors.With(serrors.ErrBadRequest, "location is required")
	case update.Stage == "":
		return update, serrors.With(serrors.ErrBadRequest, "stage is required")
	}
	if update.Actor == "" {
		update.Actor = domain.DefaultActor
	}

	return update, nil
}

// New creates a Ledger backed by storage.
func New(storage storage.Storage) Ledger {
	return &ledger{
		storage: storage,
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
}
