package postgres

import (
	"context"
	"fmt"

	"foodtrace/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const reviewsTable = "reviews"

func (p *PgSQL) StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	row := PgReview{
		ProductID:     string(review.ProductID),
		ConsumerEmail: review.ConsumerEmail,
		Rating:        review.Rating,
		Comment:       ptrNullString(review.Comment),
		ReviewDate:    review.ReviewDate,
	}
	if _, err := p.Builder.Insert(reviewsTable).
		Rows(row).
		Returning(&PgReview{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store review into pg: %w", translateError(err))
	}

	r := row.ToDomain()

	return &r, nil
}

func (p *PgSQL) ReviewsByProduct(ctx context.Context, productID domain.ProductID) ([]domain.Review, error) {
	var rows []PgReview
	if err := p.Builder.From(reviewsTable).
		Where(goqu.I("product_id").Eq(string(productID))).
		Order(goqu.I("review_date").Desc(), goqu.I("review_id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch product reviews from pg: %w", err)
	}

	out := make([]domain.Review, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
