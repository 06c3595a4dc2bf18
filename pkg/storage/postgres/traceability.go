package postgres

import (
	"context"
	"fmt"

	"foodtrace/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const traceabilityTable = "traceability_log"

func (p *PgSQL) StoreTraceabilityEntry(ctx context.Context,
	entry domain.TraceabilityEntry) (*domain.TraceabilityEntry, error) {
	var row PgTraceabilityEntry
	row.FromDomain(entry)

	if _, err := p.Builder.Insert(traceabilityTable).
		Rows(row).
		Returning(&PgTraceabilityEntry{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store traceability entry into pg: %w", translateError(err))
	}

	e := row.ToDomain()

	return &e, nil
}

// LatestTraceabilityEntry returns the entry with the highest log ID.
func (p *PgSQL) LatestTraceabilityEntry(ctx context.Context,
	productID domain.ProductID) (*domain.TraceabilityEntry, error) {
	var row PgTraceabilityEntry
	found, err := p.Builder.From(traceabilityTable).
		Where(goqu.I("product_id").Eq(string(productID))).
		Order(goqu.I("log_id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest traceability entry from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	e := row.ToDomain()

	return &e, nil
}

// TraceabilityByProduct orders the chain by timestamp, then log ID.
func (p *PgSQL) TraceabilityByProduct(ctx context.Context,
	productID domain.ProductID) ([]domain.TraceabilityEntry, error) {
	var rows []PgTraceabilityEntry
	if err := p.Builder.From(traceabilityTable).
		Where(goqu.I("product_id").Eq(string(productID))).
		Order(goqu.I("timestamp").Asc(), goqu.I("log_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch traceability from pg: %w", err)
	}

	out := make([]domain.TraceabilityEntry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
