// Package catalog implements the product side of FoodTrace: listings with
// their genesis traceability entry, health analyses, recalls and reviews.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodtrace/internal/config"
	"foodtrace/internal/traceability"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/healthrisk"
	"foodtrace/pkg/logger"
	"foodtrace/pkg/metrics"
	"foodtrace/pkg/publisher"
	"foodtrace/pkg/serrors"
	"foodtrace/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName = "foodtrace/internal/catalog"

	// RecallEventType is the type header of recall notices.
	RecallEventType = "product.recalled"
)

// Options configure recall notice delivery.
type Options struct {
	// RecallTopic is the topic recall notices are published to.
	RecallTopic string
	// RecallNoticeMaxAttempts bounds the retries of a recall notice job.
	RecallNoticeMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RecallTopic:             cfg.Kafka.RecallTopic,
		RecallNoticeMaxAttempts: cfg.Worker.RecallNoticeMaxAttempts,
	}
}

type catalog struct {
	options   Options
	storage   storage.Storage
	publisher publisher.Publisher
	tracer    trace.Tracer
	now       func() time.Time
	newID     func(batchNumber string) domain.ProductID
}

var errProductNotFound = serrors.With(serrors.ErrNotFound, "Product not found")

// CreateProduct stores the product and its genesis traceability entry in one
// transaction. The genesis entry is logged by the manufacturer's email.
func (c catalog) CreateProduct(ctx context.Context,
	manufacturer domain.Principal,
	draft domain.ProductDraft) (*domain.Product, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	product := domain.Product{
		ID:                c.newID(draft.BatchNumber),
		Name:              draft.Name,
		Brand:             draft.Brand,
		Category:          draft.Category,
		SubCategory:       draft.SubCategory,
		ImageURL:          draft.ImageURL,
		Ingredients:       draft.Ingredients,
		Nutrition:         &draft.Nutrition,
		Allergens:         &draft.Allergens,
		Certifications:    draft.Certifications,
		BatchNumber:       draft.BatchNumber,
		ManufacturingDate: draft.ManufacturingDate,
		ExpiryDate:        draft.ExpiryDate,
		MRP:               draft.MRP,
		NetWeight:         draft.NetWeight,
		ManufacturerID:    manufacturer.ID,
	}

	var stored *domain.Product
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreProduct(ctx, product)
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrConflict, err, "product %s already exists", product.ID)
		}
		if errors.Is(err, storage.ErrMissingReference) {
			return serrors.Wrap(serrors.ErrForbidden, err, "Invalid manufacturer")
		}
		if err != nil {
			return fmt.Errorf("could not store product: %w", err)
		}

		genesis, err := tx.StoreTraceabilityEntry(ctx, traceability.Genesis(*stored, manufacturer.Email, c.now()))
		if err != nil {
			return fmt.Errorf("could not store genesis entry: %w", err)
		}
		stored.Traceability = []domain.TraceabilityEntry{*genesis}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	stored.Recalls = []domain.Recall{}
	stored.Reviews = []domain.Review{}
	metrics.ProductsCreated.Inc()
	logger.Info(ctx, "product created",
		zap.String("product_id", string(stored.ID)),
		zap.String("batch_number", stored.BatchNumber))

	return stored, nil
}

func validateDraft(d domain.ProductDraft) error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return serrors.With(serrors.ErrBadRequest, "name is required")
	case strings.TrimSpace(d.Brand) == "":
		return serrors.With(serrors.ErrBadRequest, "brand is required")
	case strings.TrimSpace(d.BatchNumber) == "":
		return serrors.With(serrors.ErrBadRequest, "batch_number is required")
	case d.MRP.IsNegative():
		return serrors.With(serrors.ErrBadRequest, "mrp must not be negative")
	case !d.ExpiryDate.IsZero() && d.ExpiryDate.Before(d.ManufacturingDate):
		return serrors.With(serrors.ErrBadRequest, "expiry_date is before manufacturing_date")
	}

	return nil
}

func (c catalog) Product(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	product, err := c.storage.ProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get product: %w", err)
	}
	if product == nil {
		return nil, errProductNotFound
	}

	if err := c.complete(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (c catalog) ManufacturerProducts(ctx context.Context, manufacturerID domain.UserID) ([]domain.Product, error) {
	products, err := c.storage.ProductsByManufacturer(ctx, manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("could not get manufacturer products: %w", err)
	}

	for i := range products {
		if err := c.complete(ctx, &products[i]); err != nil {
			return nil, err
		}
	}

	return products, nil
}

// complete loads the traceability, recalls and reviews of product.
func (c catalog) complete(ctx context.Context, product *domain.Product) error {
	var err error
	if product.Traceability, err = c.storage.TraceabilityByProduct(ctx, product.ID); err != nil {
		return fmt.Errorf("could not get traceability: %w", err)
	}
	if product.Recalls, err = c.storage.RecallsByBatch(ctx, product.BatchNumber); err != nil {
		return fmt.Errorf("could not get recalls: %w", err)
	}
	if product.Reviews, err = c.storage.ReviewsByProduct(ctx, product.ID); err != nil {
		return fmt.Errorf("could not get reviews: %w", err)
	}

	return nil
}

// Analyze runs the health evaluator for the consumer's stored profile.
func (c catalog) Analyze(ctx context.Context,
	consumerID domain.UserID,
	productID domain.ProductID) ([]domain.Issue, error) {
	ctx, span := c.tracer.Start(ctx, "Catalog.Analyze",
		trace.WithAttributes(attribute.String("product.id", string(productID))))
	defer span.End()

	consumer, err := c.storage.ConsumerByID(ctx, consumerID)
	if err != nil {
		return nil, fmt.Errorf("could not get consumer: %w", err)
	}
	if consumer == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	}

	product, err := c.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	issues, err := healthrisk.Evaluate(consumer.Profile, *product)
	if err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not evaluate product: %w", err)
	}

	for _, issue := range issues {
		metrics.HealthIssues.WithLabelValues(string(issue.Type)).Inc()
	}
	span.SetAttributes(attribute.Int("issues", len(issues)))

	return issues, nil
}

// AddRecall records the recall and enqueues its notice in the same
// transaction, so a notice exists exactly when the recall does.
func (c catalog) AddRecall(ctx context.Context,
	manufacturerID domain.UserID,
	batchNumber, reason string) (*domain.Recall, error) {
	batchNumber = strings.TrimSpace(batchNumber)
	reason = strings.TrimSpace(reason)
	if batchNumber == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "batch_number is required")
	}
	if reason == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "reason is required")
	}

	owns, err := c.storage.ManufacturerOwnsBatch(ctx, manufacturerID, batchNumber)
	if err != nil {
		return nil, fmt.Errorf("could not check batch ownership: %w", err)
	}
	if !owns {
		return nil, serrors.With(serrors.ErrForbidden,
			"You can only recall products linked to your manufacturer account.")
	}

	var recall *domain.Recall
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		recall, err = tx.StoreRecall(ctx, domain.Recall{
			BatchNumber: batchNumber,
			Reason:      reason,
			RecallDate:  c.now().UTC().Truncate(time.Microsecond),
		})
		if err != nil {
			return fmt.Errorf("could not store recall: %w", err)
		}

		if _, err := tx.AddJob(ctx, RecallNoticeArgs{
			RecallID:    recall.ID,
			maxAttempts: c.options.RecallNoticeMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add recall notice job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not add recall: %w", err)
	}

	logger.Info(ctx, "batch recalled",
		zap.Int64("recall_id", recall.ID),
		zap.String("batch_number", recall.BatchNumber))

	return recall, nil
}

func (c catalog) AddReview(ctx context.Context,
	consumer domain.Principal,
	productID domain.ProductID,
	rating int,
	comment *string) (*domain.Review, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, serrors.With(serrors.ErrBadRequest,
			"rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}

	product, err := c.storage.ProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("could not get product: %w", err)
	}
	if product == nil {
		return nil, errProductNotFound
	}

	review, err := c.storage.StoreReview(ctx, domain.Review{
		ProductID:     productID,
		ConsumerEmail: consumer.Email,
		Rating:        rating,
		Comment:       comment,
		ReviewDate:    c.now().UTC().Truncate(time.Microsecond),
	})
	if errors.Is(err, storage.ErrMissingReference) {
		return nil, errProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not store review: %w", err)
	}

	return review, nil
}

// Reviews lists the product reviews, newest first. An unknown product has no
// reviews.
func (c catalog) Reviews(ctx context.Context, productID domain.ProductID) ([]domain.Review, error) {
	reviews, err := c.storage.ReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("could not get reviews: %w", err)
	}

	return reviews, nil
}

// PublishRecall publishes the notice of a recorded recall keyed by its batch
// number, listing every product of the batch.
func (c catalog) PublishRecall(ctx context.Context, recallID int64) error {
	recall, err := c.storage.RecallByID(ctx, recallID)
	if err != nil {
		return fmt.Errorf("could not get recall: %w", err)
	}
	if recall == nil {
		return serrors.With(serrors.ErrNotFound, "recall %d not found", recallID)
	}

	productIDs, err := c.storage.ProductIDsByBatch(ctx, recall.BatchNumber)
	if err != nil {
		return fmt.Errorf("could not get batch products: %w", err)
	}

	payload, err := json.Marshal(domain.RecallNotice{
		RecallID:    recall.ID,
		BatchNumber: recall.BatchNumber,
		Reason:      recall.Reason,
		RecallDate:  recall.RecallDate,
		ProductIDs:  productIDs,
	})
	if err != nil {
		return fmt.Errorf("could not marshal recall notice: %w", err)
	}

	if err := c.publisher.Publish(ctx, publisher.Event{
		Topic:   c.options.RecallTopic,
		Key:     recall.BatchNumber,
		Type:    RecallEventType,
		Payload: payload,
	}); err != nil {
		return fmt.Errorf("could not publish recall notice: %w", err)
	}

	return nil
}

// New creates a Catalog backed by storage, publishing recall notices through
// pub.
func New(storage storage.Storage, pub publisher.Publisher, options Options) Catalog {
	return &catalog{
		options:   options,
		storage:   storage,
		publisher: pub,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
		newID:     NewProductID,
	}
}
