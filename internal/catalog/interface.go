package catalog

import (
	"context"

	"foodtrace/pkg/domain"
)

// Catalog is the product catalog service.
//
//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	// CreateProduct lists a product and writes its genesis traceability entry.
	CreateProduct(ctx context.Context, manufacturer domain.Principal, draft domain.ProductDraft) (*domain.Product, error)
	// Product returns the full product record.
	Product(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	// ManufacturerProducts returns the full records of the manufacturer's products.
	ManufacturerProducts(ctx context.Context, manufacturerID domain.UserID) ([]domain.Product, error)
	// Analyze evaluates the product against the consumer's health profile.
	Analyze(ctx context.Context, consumerID domain.UserID, productID domain.ProductID) ([]domain.Issue, error)
	// AddRecall records a recall of one of the manufacturer's batches and
	// schedules the recall notice.
	AddRecall(ctx context.Context, manufacturerID domain.UserID, batchNumber, reason string) (*domain.Recall, error)
	AddReview(ctx context.Context,
		consumer domain.Principal,
		productID domain.ProductID,
		rating int,
		comment *string) (*domain.Review, error)
	Reviews(ctx context.Context, productID domain.ProductID) ([]domain.Review, error)
	// PublishRecall sends the notice of a recorded recall to subscribers.
	PublishRecall(ctx context.Context, recallID int64) error
}
