package postgres_test

import (
	"testing"
	"time"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Products(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	m := seedManufacturer(t, pg, "qa@amul.example")

	want := testProduct("BFT_B1_AAAAAA", "B1", m.ID)
	stored, err := pg.StoreProduct(ctx, want)
	require.NoError(t, err)
	require.Equal(t, want.ID, stored.ID)

	_, err = pg.StoreProduct(ctx, want)
	require.ErrorIs(t, err, storage.ErrDuplicate)

	_, err = pg.StoreProduct(ctx, testProduct("BFT_B1_BBBBBB", "B1", domain.UserID(uuid.New())))
	require.ErrorIs(t, err, storage.ErrMissingReference)

	got, err := pg.ProductByID(ctx, want.ID)
	require.NoError(t, err)
	require.Equal(t, want.Ingredients, got.Ingredients)
	require.Equal(t, *want.Nutrition, *got.Nutrition)
	require.Equal(t, want.Allergens.Flags, got.Allergens.Flags)
	require.Equal(t, *want.Certifications.ISOCertification, *got.Certifications.ISOCertification)
	require.True(t, want.MRP.Equal(got.MRP))
	require.True(t, want.ExpiryDate.Equal(got.ExpiryDate))
	require.Equal(t, m.ID, got.ManufacturerID)

	missing, err := pg.ProductByID(ctx, "BFT_NOPE_000000")
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = pg.StoreProduct(ctx, testProduct("BFT_B2_CCCCCC", "B2", m.ID))
	require.NoError(t, err)

	list, err := pg.ProductsByManufacturer(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, domain.ProductID("BFT_B2_CCCCCC"), list[0].ID)

	ids, err := pg.ProductIDsByBatch(ctx, "B1")
	require.NoError(t, err)
	require.Equal(t, []domain.ProductID{"BFT_B1_AAAAAA"}, ids)

	owns, err := pg.ManufacturerOwnsBatch(ctx, m.ID, "B2")
	require.NoError(t, err)
	require.True(t, owns)

	owns, err = pg.ManufacturerOwnsBatch(ctx, domain.UserID(uuid.New()), "B2")
	require.NoError(t, err)
	require.False(t, owns)
}

func TestPgSQL_LockProduct(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	m := seedManufacturer(t, pg, "qa@amul.example")
	_, err := pg.StoreProduct(ctx, testProduct("BFT_B1_AAAAAA", "B1", m.ID))
	require.NoError(t, err)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		found, err := s.LockProduct(ctx, "BFT_B1_AAAAAA")
		require.NoError(t, err)
		require.True(t, found)

		found, err = s.LockProduct(ctx, "BFT_NOPE_000000")
		require.NoError(t, err)
		require.False(t, found)

		return nil
	})
	require.NoError(t, err)
}

func TestPgSQL_Traceability(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	m := seedManufacturer(t, pg, "qa@amul.example")
	_, err := pg.StoreProduct(ctx, testProduct("BFT_B1_AAAAAA", "B1", m.ID))
	require.NoError(t, err)

	latest, err := pg.LatestTraceabilityEntry(ctx, "BFT_B1_AAAAAA")
	require.NoError(t, err)
	require.Nil(t, latest)

	ts := time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC)
	status := "Completed"
	genesis, err := pg.StoreTraceabilityEntry(ctx, domain.TraceabilityEntry{
		ProductID:    "BFT_B1_AAAAAA",
		Timestamp:    ts,
		Location:     "Manufacturing Unit, Amul",
		Stage:        domain.StageManufacturing,
		Actor:        "qa@amul.example",
		Status:       &status,
		PreviousHash: domain.GenesisPreviousHash,
		CurrentHash:  "h1",
	})
	require.NoError(t, err)
	require.Positive(t, genesis.LogID)
	require.True(t, ts.Equal(genesis.Timestamp))
	require.Equal(t, "Completed", *genesis.Status)
	require.Nil(t, genesis.Notes)

	second, err := pg.StoreTraceabilityEntry(ctx, domain.TraceabilityEntry{
		ProductID:    "BFT_B1_AAAAAA",
		Timestamp:    ts.Add(time.Hour),
		Location:     "Warehouse, Pune",
		Stage:        "storage",
		Actor:        domain.DefaultActor,
		PreviousHash: "h1",
		CurrentHash:  "h2",
	})
	require.NoError(t, err)

	latest, err = pg.LatestTraceabilityEntry(ctx, "BFT_B1_AAAAAA")
	require.NoError(t, err)
	require.Equal(t, second.LogID, latest.LogID)

	chain, err := pg.TraceabilityByProduct(ctx, "BFT_B1_AAAAAA")
	require.NoError(t, err)
	require.Len(t, chain, 2)
	require.Equal(t, "h1", chain[0].CurrentHash)
	require.Equal(t, "h2", chain[1].CurrentHash)

	_, err = pg.StoreTraceabilityEntry(ctx, domain.TraceabilityEntry{
		ProductID: "BFT_NOPE_000000", Timestamp: ts, PreviousHash: "0", CurrentHash: "x",
	})
	require.ErrorIs(t, err, storage.ErrMissingReference)
}

func TestPgSQL_RecallsAndReviews(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := t.Context()
	m := seedManufacturer(t, pg, "qa@amul.example")
	_, err := pg.StoreProduct(ctx, testProduct("BFT_B1_AAAAAA", "B1", m.ID))
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	first, err := pg.StoreRecall(ctx, domain.Recall{BatchNumber: "B1", Reason: "Salmonella", RecallDate: now})
	require.NoError(t, err)
	_, err = pg.StoreRecall(ctx, domain.Recall{BatchNumber: "B1", Reason: "Mislabel", RecallDate: now})
	require.NoError(t, err)

	recalls, err := pg.RecallsByBatch(ctx, "B1")
	require.NoError(t, err)
	require.Len(t, recalls, 2)
	require.Equal(t, "Salmonella", recalls[0].Reason)

	byID, err := pg.RecallByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "B1", byID.BatchNumber)

	missing, err := pg.RecallByID(ctx, first.ID+100)
	require.NoError(t, err)
	require.Nil(t, missing)

	comment := "Tasty"
	_, err = pg.StoreReview(ctx, domain.Review{
		ProductID: "BFT_B1_AAAAAA", ConsumerEmail: "asha@example.com", Rating: 4,
		Comment: &comment, ReviewDate: now.Add(-time.Hour),
	})
	require.NoError(t, err)
	newest, err := pg.StoreReview(ctx, domain.Review{
		ProductID: "BFT_B1_AAAAAA", ConsumerEmail: "ravi@example.com", Rating: 2, ReviewDate: now,
	})
	require.NoError(t, err)

	reviews, err := pg.ReviewsByProduct(ctx, "BFT_B1_AAAAAA")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.Equal(t, newest.ID, reviews[0].ID)
	require.Nil(t, reviews[0].Comment)
	require.Equal(t, "Tasty", *reviews[1].Comment)

	empty, err := pg.ReviewsByProduct(ctx, "BFT_NOPE_000000")
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = pg.StoreReview(ctx, domain.Review{
		ProductID: "BFT_NOPE_000000", ConsumerEmail: "x@example.com", Rating: 3, ReviewDate: now,
	})
	require.ErrorIs(t, err, storage.ErrMissingReference)
}
