package traceability

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"foodtrace/pkg/domain"
)

const (
	timestampLayout = "2006-01-02T15:04:05"
	utcOffset       = "+00:00"
)

// FormatTimestamp renders t in UTC as it is fed to the chain hash: seconds
// precision when the microseconds are zero, six fractional digits otherwise,
// always followed by a +00:00 offset.
func FormatTimestamp(t time.Time) string {
	t = t.UTC().Truncate(time.Microsecond)

	var b strings.Builder
	b.WriteString(t.Format(timestampLayout))
	if t.Nanosecond() != 0 {
		b.WriteString(t.Format(".000000"))
	}
	b.WriteString(utcOffset)

	return b.String()
}

// Hash computes the hex SHA-256 digest linking entry to its predecessor.
func Hash(entry domain.TraceabilityEntry) string {
	sum := sha256.Sum256([]byte(string(entry.ProductID) +
		FormatTimestamp(entry.Timestamp) +
		entry.Location +
		entry.Stage +
		entry.Actor +
		entry.PreviousHash))

	return hex.EncodeToString(sum[:])
}

// NewEntry builds the entry for update chained after previousHash, with its
// hash already computed. The timestamp is truncated to microseconds so that
// the stored value hashes the same once read back.
func NewEntry(update domain.LocationUpdate, previousHash string, now time.Time) domain.TraceabilityEntry {
	entry := domain.TraceabilityEntry{
		ProductID:    update.ProductID,
		Timestamp:    now.UTC().Truncate(time.Microsecond),
		Location:     update.Location,
		Stage:        update.Stage,
		Actor:        update.Actor,
		Status:       update.Status,
		Notes:        update.Notes,
		PreviousHash: previousHash,
	}
	entry.CurrentHash = Hash(entry)

	return entry
}

// Genesis builds the first entry of a product's chain, logged by the
// manufacturer account that listed it.
func Genesis(product domain.Product, actor string, now time.Time) domain.TraceabilityEntry {
	status := "Completed"
	notes := "Product created."

	return NewEntry(domain.LocationUpdate{
		ProductID: product.ID,
		Location:  "Manufacturing Unit, " + product.Brand,
		Stage:     domain.StageManufacturing,
		Status:    &status,
		Notes:     &notes,
		Actor:     actor,
	}, domain.GenesisPreviousHash, now)
}

// VerifyChain checks every hash of chain and that each entry links to the
// one before it. The first entry must link to the genesis marker.
func VerifyChain(chain []domain.TraceabilityEntry) domain.ChainVerification {
	res := domain.ChainVerification{Valid: true, Entries: len(chain)}
	previous := domain.GenesisPreviousHash
	for _, entry := range chain {
		if entry.PreviousHash != previous || Hash(entry) != entry.CurrentHash {
			logID := entry.LogID
			res.Valid = false
			res.BrokenAt = &logID

			return res
		}
		previous = entry.CurrentHash
	}

	return res
}
