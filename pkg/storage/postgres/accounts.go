package postgres

import (
	"context"
	"fmt"

	"foodtrace/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	consumersTable     = "consumers"
	manufacturersTable = "manufacturers"
)

func (p *PgSQL) StoreConsumer(ctx context.Context, consumer domain.Consumer) (*domain.Consumer, error) {
	var row PgConsumer
	if err := row.FromDomain(consumer); err != nil {
		return nil, err
	}

	if _, err := p.Builder.Insert(consumersTable).
		Rows(row).
		Returning(&PgConsumer{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store consumer into pg: %w", translateError(err))
	}

	return row.ToDomain()
}

func (p *PgSQL) ConsumerByEmail(ctx context.Context, email string) (*domain.Consumer, error) {
	return p.consumerWhere(ctx, goqu.I("email").Eq(email))
}

func (p *PgSQL) ConsumerByID(ctx context.Context, id domain.UserID) (*domain.Consumer, error) {
	return p.consumerWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) consumerWhere(ctx context.Context, where goqu.Expression) (*domain.Consumer, error) {
	var row PgConsumer
	found, err := p.Builder.From(consumersTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch consumer from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateConsumerProfile replaces profile_json and sets updated_at.
func (p *PgSQL) UpdateConsumerProfile(ctx context.Context,
	id domain.UserID,
	profile domain.HealthProfile) (*domain.Consumer, error) {
	var patch PgConsumer
	if err := patch.FromDomain(domain.Consumer{Profile: profile}); err != nil {
		return nil, err
	}

	var row PgConsumer
	found, err := p.Builder.Update(consumersTable).
		Set(goqu.Record{
			"profile_json": patch.ProfileJSON,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgConsumer{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update consumer profile in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreManufacturer(ctx context.Context,
	manufacturer domain.Manufacturer) (*domain.Manufacturer, error) {
	row := PgManufacturer{
		Email:          manufacturer.Email,
		Name:           manufacturer.Name,
		HashedPassword: manufacturer.HashedPassword,
	}
	if _, err := p.Builder.Insert(manufacturersTable).
		Rows(row).
		Returning(&PgManufacturer{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store manufacturer into pg: %w", translateError(err))
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ManufacturerByEmail(ctx context.Context, email string) (*domain.Manufacturer, error) {
	var row PgManufacturer
	found, err := p.Builder.From(manufacturersTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch manufacturer from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
