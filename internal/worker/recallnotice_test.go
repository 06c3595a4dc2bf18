package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodtrace/internal/catalog"
	mockcatalog "foodtrace/internal/catalog/mock"
	"foodtrace/internal/worker"
	"foodtrace/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func makeJob(id, recallID int64) *river.Job[catalog.RecallNoticeArgs] {
	return &river.Job[catalog.RecallNoticeArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   catalog.RecallNoticeArgs{RecallID: recallID},
	}
}

func TestRecallNoticeWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockcatalog.NewMockCatalog(ctrl)
	w := worker.NewRecallNoticeWorker(mock)

	mock.EXPECT().PublishRecall(gomock.Any(), int64(7)).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, 7)))
}

func TestRecallNoticeWorker_Work_MissingRecallCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockcatalog.NewMockCatalog(ctrl)
	w := worker.NewRecallNoticeWorker(mock)

	mock.EXPECT().PublishRecall(gomock.Any(), int64(8)).
		Return(serrors.With(serrors.ErrNotFound, "recall 8 not found"))

	err := w.Work(context.Background(), makeJob(2, 8))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestRecallNoticeWorker_Work_PublishErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockcatalog.NewMockCatalog(ctrl)
	w := worker.NewRecallNoticeWorker(mock)

	boom := errors.New("broker down")
	mock.EXPECT().PublishRecall(gomock.Any(), int64(9)).Return(boom)

	err := w.Work(context.Background(), makeJob(3, 9))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestRecallNoticeWorker_Timeout(t *testing.T) {
	w := worker.NewRecallNoticeWorker(nil)
	require.Equal(t, 30*time.Second, w.Timeout(makeJob(1, 1)))
}
