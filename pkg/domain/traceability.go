package domain

import "time"

// GenesisPreviousHash is the previous hash of the first entry of every chain.
const GenesisPreviousHash = "0"

// Well-known traceability stages.
const (
	StageManufacturing = "manufacturing"
	DefaultActor       = "Supply Chain Partner"
)

// TraceabilityEntry is one link of a product's hash chain.
type TraceabilityEntry struct {
	LogID          int64
	ProductID      ProductID
	Timestamp      time.Time
	Location       string
	Stage          string
	Actor          string
	Status         *string
	Notes          *string
	PreviousHash   string
	CurrentHash    string
	BlockchainTxID *string
}

// LocationUpdate is a supply chain event reported for a product.
type LocationUpdate struct {
	ProductID ProductID
	Location  string
	Stage     string
	Status    *string
	Notes     *string
	Actor     string
}

// ChainVerification is the outcome of re-checking a product's hash chain.
type ChainVerification struct {
	Valid   bool
	Entries int
	// BrokenAt is the log ID of the first entry that failed verification.
	BrokenAt *int64
}
