package catalog

import (
	"time"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/publisher"
	"foodtrace/pkg/storage"
)

// NewForTest builds a catalog with a fixed clock and product ID.
func NewForTest(st storage.Storage, pub publisher.Publisher, options Options,
	now time.Time, id domain.ProductID) Catalog {
	c := New(st, pub, options).(*catalog)
	c.now = func() time.Time { return now }
	c.newID = func(string) domain.ProductID { return id }

	return c
}

// MaxAttempts exposes the retry budget carried by the job arguments.
func (args RecallNoticeArgs) MaxAttempts() int { return args.maxAttempts }
