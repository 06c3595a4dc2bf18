package postgres

import (
	"context"
	"fmt"

	"foodtrace/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const productsTable = "products"

func (p *PgSQL) StoreProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var row PgProduct
	row.FromDomain(product)

	if _, err := p.Builder.Insert(productsTable).
		Rows(row).
		Returning(&PgProduct{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store product into pg: %w", translateError(err))
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ProductByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.From(productsTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch product from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// LockProduct selects the product row FOR UPDATE. Outside a transaction the
// lock is released immediately, so callers use it within WithTx.
func (p *PgSQL) LockProduct(ctx context.Context, id domain.ProductID) (bool, error) {
	var locked string
	found, err := p.Builder.From(productsTable).
		Select("id").
		Where(goqu.I("id").Eq(string(id))).
		ForUpdate(exp.Wait).
		Executor().ScanValContext(ctx, &locked)
	if err != nil {
		return false, fmt.Errorf("could not lock product in pg: %w", err)
	}

	return found, nil
}

func (p *PgSQL) ProductsByManufacturer(ctx context.Context, manufacturerID domain.UserID) ([]domain.Product, error) {
	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(goqu.I("manufacturer_id").Eq(uuid.UUID(manufacturerID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch manufacturer products from pg: %w", err)
	}

	out := make([]domain.Product, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) ProductIDsByBatch(ctx context.Context, batchNumber string) ([]domain.ProductID, error) {
	var ids []string
	if err := p.Builder.From(productsTable).
		Select("id").
		Where(goqu.I("batch_number").Eq(batchNumber)).
		Order(goqu.I("id").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch batch products from pg: %w", err)
	}

	out := make([]domain.ProductID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.ProductID(id))
	}

	return out, nil
}

func (p *PgSQL) ManufacturerOwnsBatch(ctx context.Context,
	manufacturerID domain.UserID,
	batchNumber string) (bool, error) {
	var one int
	found, err := p.Builder.From(productsTable).
		Select(goqu.L("1")).
		Where(
			goqu.I("manufacturer_id").Eq(uuid.UUID(manufacturerID)),
			goqu.I("batch_number").Eq(batchNumber),
		).
		Limit(1).
		Executor().ScanValContext(ctx, &one)
	if err != nil {
		return false, fmt.Errorf("could not check batch ownership in pg: %w", err)
	}

	return found, nil
}
