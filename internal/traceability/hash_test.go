package traceability_test

import (
	"testing"
	"time"

	"foodtrace/internal/traceability"
	"foodtrace/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "microseconds",
			in:   time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC),
			want: "2025-03-01T10:00:00.123456+00:00",
		},
		{
			name: "whole second omits fraction",
			in:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			want: "2025-03-01T10:00:00+00:00",
		},
		{
			name: "leading zero micros kept",
			in:   time.Date(2025, 3, 1, 10, 0, 0, 1000, time.UTC),
			want: "2025-03-01T10:00:00.000001+00:00",
		},
		{
			name: "nanoseconds truncated",
			in:   time.Date(2025, 3, 1, 10, 0, 0, 999, time.UTC),
			want: "2025-03-01T10:00:00+00:00",
		},
		{
			name: "converted to utc",
			in:   time.Date(2025, 3, 1, 15, 30, 0, 500000000, time.FixedZone("IST", 5*3600+1800)),
			want: "2025-03-01T10:00:00.500000+00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, traceability.FormatTimestamp(tt.in))
		})
	}
}

func TestGenesis(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 123456789, time.UTC)
	entry := traceability.Genesis(domain.Product{ID: "BFT_B1_AAAAAA", Brand: "Amul"}, "qa@amul.example", now)

	require.Equal(t, domain.ProductID("BFT_B1_AAAAAA"), entry.ProductID)
	require.Equal(t, "Manufacturing Unit, Amul", entry.Location)
	require.Equal(t, domain.StageManufacturing, entry.Stage)
	require.Equal(t, "qa@amul.example", entry.Actor)
	require.Equal(t, "Completed", *entry.Status)
	require.Equal(t, "Product created.", *entry.Notes)
	require.Equal(t, domain.GenesisPreviousHash, entry.PreviousHash)
	require.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 123456000, time.UTC), entry.Timestamp)
	require.Equal(t, "ce8f73063c59482f4e0a6b9df717c146ba3828bd200f0c74e248943ff2c99fab", entry.CurrentHash)
}

func TestHash_IgnoresStatusAndNotes(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	status := "In Transit"
	a := traceability.NewEntry(domain.LocationUpdate{
		ProductID: "P", Location: "Pune", Stage: "distribution", Actor: "Truck 7",
	}, "abc", now)
	b := traceability.NewEntry(domain.LocationUpdate{
		ProductID: "P", Location: "Pune", Stage: "distribution", Actor: "Truck 7", Status: &status,
	}, "abc", now)

	require.Equal(t, a.CurrentHash, b.CurrentHash)
	require.Len(t, a.CurrentHash, 64)

	c := traceability.NewEntry(domain.LocationUpdate{
		ProductID: "P", Location: "Pune", Stage: "distribution", Actor: "Truck 7",
	}, "abd", now)
	require.NotEqual(t, a.CurrentHash, c.CurrentHash)
}

func buildChain(n int) []domain.TraceabilityEntry {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	chain := make([]domain.TraceabilityEntry, 0, n)
	genesis := traceability.Genesis(domain.Product{ID: "P", Brand: "Amul"}, "qa@amul.example", start)
	genesis.LogID = 1
	chain = append(chain, genesis)
	for i := 1; i < n; i++ {
		e := traceability.NewEntry(domain.LocationUpdate{
			ProductID: "P", Location: "Hub", Stage: "distribution", Actor: domain.DefaultActor,
		}, chain[i-1].CurrentHash, start.Add(time.Duration(i)*time.Hour))
		e.LogID = int64(i + 1)
		chain = append(chain, e)
	}

	return chain
}

func TestVerifyChain(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res := traceability.VerifyChain(buildChain(4))
		require.True(t, res.Valid)
		require.Equal(t, 4, res.Entries)
		require.Nil(t, res.BrokenAt)
	})

	t.Run("tampered location", func(t *testing.T) {
		chain := buildChain(4)
		chain[2].Location = "Elsewhere"

		res := traceability.VerifyChain(chain)
		require.False(t, res.Valid)
		require.Equal(t, int64(3), *res.BrokenAt)
	})

	t.Run("broken link", func(t *testing.T) {
		chain := buildChain(3)
		chain[1].PreviousHash = "deadbeef"
		chain[1].CurrentHash = traceability.Hash(chain[1])

		res := traceability.VerifyChain(chain)
		require.False(t, res.Valid)
		require.Equal(t, int64(2), *res.BrokenAt)
	})

	t.Run("genesis must link to zero", func(t *testing.T) {
		chain := buildChain(1)
		chain[0].PreviousHash = "1"
		chain[0].CurrentHash = traceability.Hash(chain[0])

		res := traceability.VerifyChain(chain)
		require.False(t, res.Valid)
		require.Equal(t, int64(1), *res.BrokenAt)
	})
}
