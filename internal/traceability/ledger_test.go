package traceability_test

import (
	"context"
	"errors"
	"testing"

	"foodtrace/internal/traceability"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"
	"foodtrace/pkg/storage"
	mockstorage "foodtrace/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLedger(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, traceability.Ledger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, traceability.New(st)
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestLedger_Append_ChainsToLatest(t *testing.T) {
	ctrl, st, l := newTestLedger(t)
	latest := buildChain(2)[1]

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().LockProduct(gomock.Any(), domain.ProductID("P")).Return(true, nil),
			tx.EXPECT().LatestTraceabilityEntry(gomock.Any(), domain.ProductID("P")).Return(&latest, nil),
			tx.EXPECT().StoreTraceabilityEntry(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e domain.TraceabilityEntry) (*domain.TraceabilityEntry, error) {
					e.LogID = 3

					return &e, nil
				}),
		)
	})

	entry, err := l.Append(context.Background(), domain.LocationUpdate{
		ProductID: " P ",
		Location:  "Cold Store, Nashik",
		Stage:     "storage",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), entry.LogID)
	require.Equal(t, latest.CurrentHash, entry.PreviousHash)
	require.Equal(t, domain.DefaultActor, entry.Actor)
	require.Equal(t, traceability.Hash(*entry), entry.CurrentHash)
	require.True(t, traceability.VerifyChain(append(buildChain(2), *entry)).Valid)
}

func TestLedger_Append_UnknownProduct(t *testing.T) {
	ctrl, st, l := newTestLedger(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockProduct(gomock.Any(), domain.ProductID("P")).Return(false, nil)
	})

	_, err := l.Append(context.Background(), domain.LocationUpdate{ProductID: "P", Location: "x", Stage: "y"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLedger_Append_NoGenesis(t *testing.T) {
	ctrl, st, l := newTestLedger(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockProduct(gomock.Any(), domain.ProductID("P")).Return(true, nil)
		tx.EXPECT().LatestTraceabilityEntry(gomock.Any(), domain.ProductID("P")).Return(nil, nil)
	})

	_, err := l.Append(context.Background(), domain.LocationUpdate{ProductID: "P", Location: "x", Stage: "y"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestLedger_Append_Validation(t *testing.T) {
	_, _, l := newTestLedger(t)

	for _, u := range []domain.LocationUpdate{
		{Location: "x", Stage: "y"},
		{ProductID: "P", Stage: "y"},
		{ProductID: "P", Location: "  "},
	} {
		_, err := l.Append(context.Background(), u)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
}

func TestLedger_Append_StorageError(t *testing.T) {
	ctrl, st, l := newTestLedger(t)
	boom := errors.New("boom")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockProduct(gomock.Any(), gomock.Any()).Return(false, boom)
	})

	_, err := l.Append(context.Background(), domain.LocationUpdate{ProductID: "P", Location: "x", Stage: "y"})
	require.ErrorIs(t, err, boom)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestLedger_Verify(t *testing.T) {
	_, st, l := newTestLedger(t)

	chain := buildChain(3)
	st.EXPECT().TraceabilityByProduct(gomock.Any(), domain.ProductID("P")).Return(chain, nil)

	res, err := l.Verify(context.Background(), "P")
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.Equal(t, 3, res.Entries)

	tampered := buildChain(3)
	tampered[1].Actor = "Mallory"
	st.EXPECT().TraceabilityByProduct(gomock.Any(), domain.ProductID("P")).Return(tampered, nil)

	res, err = l.Verify(context.Background(), "P")
	require.NoError(t, err)
	require.False(t, res.Valid)
	require.Equal(t, int64(2), *res.BrokenAt)
}

func TestLedger_Verify_NoChain(t *testing.T) {
	_, st, l := newTestLedger(t)
	st.EXPECT().TraceabilityByProduct(gomock.Any(), domain.ProductID("P")).Return(nil, nil)

	_, err := l.Verify(context.Background(), "P")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
