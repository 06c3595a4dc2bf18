package postgres

import (
	"context"
	"fmt"

	"foodtrace/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const recallsTable = "product_recalls"

func (p *PgSQL) StoreRecall(ctx context.Context, recall domain.Recall) (*domain.Recall, error) {
	row := PgRecall{
		BatchNumber: recall.BatchNumber,
		Reason:      recall.Reason,
		RecallDate:  recall.RecallDate,
	}
	if _, err := p.Builder.Insert(recallsTable).
		Rows(row).
		Returning(&PgRecall{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store recall into pg: %w", translateError(err))
	}

	r := row.ToDomain()

	return &r, nil
}

func (p *PgSQL) RecallByID(ctx context.Context, id int64) (*domain.Recall, error) {
	var row PgRecall
	found, err := p.Builder.From(recallsTable).
		Where(goqu.I("recall_id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch recall from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	r := row.ToDomain()

	return &r, nil
}

func (p *PgSQL) RecallsByBatch(ctx context.Context, batchNumber string) ([]domain.Recall, error) {
	var rows []PgRecall
	if err := p.Builder.From(recallsTable).
		Where(goqu.I("batch_number").Eq(batchNumber)).
		Order(goqu.I("recall_id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch batch recalls from pg: %w", err)
	}

	out := make([]domain.Recall, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
