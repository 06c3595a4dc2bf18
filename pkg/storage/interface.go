// Package storage defines the persistence interfaces the services rely on.
// Concrete backends live in subpackages (see postgres).
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"

	"foodtrace/pkg/domain"

	"github.com/riverqueue/river"
)

// AllStorage is the union of every domain storage capability. It is what
// services see both inside and outside a transaction.
type AllStorage interface {
	ConsumerStorage
	ManufacturerStorage
	ProductStorage
	TraceabilityStorage
	RecallStorage
	ReviewStorage
	JobStorage
}

// TxStorage is a storage handle bound to a database transaction.
// Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the non-transactional handle, able to open transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// Lookups returning a pointer report a missing row as (nil, nil).

// ConsumerStorage persists consumer accounts and their health profiles.
type ConsumerStorage interface {
	// StoreConsumer inserts a consumer. A taken email yields ErrDuplicate.
	StoreConsumer(ctx context.Context, consumer domain.Consumer) (*domain.Consumer, error)
	ConsumerByEmail(ctx context.Context, email string) (*domain.Consumer, error)
	ConsumerByID(ctx context.Context, id domain.UserID) (*domain.Consumer, error)
	// UpdateConsumerProfile replaces the stored profile and bumps updated_at.
	UpdateConsumerProfile(ctx context.Context,
		id domain.UserID,
		profile domain.HealthProfile) (*domain.Consumer, error)
}

// ManufacturerStorage persists manufacturer accounts.
type ManufacturerStorage interface {
	// StoreManufacturer inserts a manufacturer. A taken email yields ErrDuplicate.
	StoreManufacturer(ctx context.Context, manufacturer domain.Manufacturer) (*domain.Manufacturer, error)
	ManufacturerByEmail(ctx context.Context, email string) (*domain.Manufacturer, error)
}

// ProductStorage persists product listings. Returned products never carry
// their traceability, recalls or reviews; callers load those separately.
type ProductStorage interface {
	// StoreProduct inserts a product. A taken ID yields ErrDuplicate.
	StoreProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	ProductByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	// LockProduct takes a row lock on the product for the rest of the
	// transaction. It reports false when the product does not exist.
	LockProduct(ctx context.Context, id domain.ProductID) (bool, error)
	// ProductsByManufacturer lists the manufacturer's products, newest first.
	ProductsByManufacturer(ctx context.Context, manufacturerID domain.UserID) ([]domain.Product, error)
	// ProductIDsByBatch lists the products carrying the batch number.
	ProductIDsByBatch(ctx context.Context, batchNumber string) ([]domain.ProductID, error)
	// ManufacturerOwnsBatch reports whether any of the manufacturer's products
	// carries the batch number.
	ManufacturerOwnsBatch(ctx context.Context, manufacturerID domain.UserID, batchNumber string) (bool, error)
}

// TraceabilityStorage persists hash chain entries.
type TraceabilityStorage interface {
	StoreTraceabilityEntry(ctx context.Context, entry domain.TraceabilityEntry) (*domain.TraceabilityEntry, error)
	// LatestTraceabilityEntry returns the most recent entry of the chain.
	LatestTraceabilityEntry(ctx context.Context, productID domain.ProductID) (*domain.TraceabilityEntry, error)
	// TraceabilityByProduct returns the chain from genesis to the latest entry.
	TraceabilityByProduct(ctx context.Context, productID domain.ProductID) ([]domain.TraceabilityEntry, error)
}

// RecallStorage persists batch recalls.
type RecallStorage interface {
	StoreRecall(ctx context.Context, recall domain.Recall) (*domain.Recall, error)
	RecallByID(ctx context.Context, id int64) (*domain.Recall, error)
	// RecallsByBatch returns the batch recalls, oldest first.
	RecallsByBatch(ctx context.Context, batchNumber string) ([]domain.Recall, error)
}

// ReviewStorage persists consumer reviews.
type ReviewStorage interface {
	StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	// ReviewsByProduct returns the product reviews, newest first.
	ReviewsByProduct(ctx context.Context, productID domain.ProductID) ([]domain.Review, error)
}

// JobStorage enqueues background jobs. Inside a transaction the job becomes
// visible only once the transaction commits.
type JobStorage interface {
	// AddJob reports false when the job was skipped as a duplicate of a
	// unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
