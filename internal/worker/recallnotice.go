package worker

import (
	"context"
	"errors"
	"time"

	"foodtrace/internal/catalog"
	"foodtrace/pkg/logger"
	"foodtrace/pkg/metrics"
	"foodtrace/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const recallNoticeTimeout = 30 * time.Second

// RecallNoticeWorker publishes the notice of a recorded recall. A recall that
// no longer exists cancels the job; any other failure is retried by River.
type RecallNoticeWorker struct {
	river.WorkerDefaults[catalog.RecallNoticeArgs]

	catalog catalog.Catalog
}

// NewRecallNoticeWorker constructs a RecallNoticeWorker publishing through c.
func NewRecallNoticeWorker(c catalog.Catalog) *RecallNoticeWorker {
	return &RecallNoticeWorker{catalog: c}
}

func (w *RecallNoticeWorker) Timeout(*river.Job[catalog.RecallNoticeArgs]) time.Duration {
	return recallNoticeTimeout
}

func (w *RecallNoticeWorker) Work(ctx context.Context, job *river.Job[catalog.RecallNoticeArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("recallID", job.Args.RecallID))

	if err := w.catalog.PublishRecall(ctx, job.Args.RecallID); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			metrics.RecallNotices.WithLabelValues("cancelled").Inc()
			logger.Warn(ctx, "recall vanished, cancelling notice", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		metrics.RecallNotices.WithLabelValues("failed").Inc()
		logger.Error(ctx, "could not publish recall notice", zap.Error(err))

		return err //nolint: wrapcheck
	}

	metrics.RecallNotices.WithLabelValues("published").Inc()
	logger.Info(ctx, "recall notice published")

	return nil
}
