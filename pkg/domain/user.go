package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies an account (consumer or manufacturer).
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// Scope is the role an authenticated account acts in.
type Scope string

const (
	// ScopeConsumer is granted to consumers logging in through the consumer portal.
	ScopeConsumer Scope = "consumer"
	// ScopeManufacturer is granted to manufacturers managing products and recalls.
	ScopeManufacturer Scope = "manufacturer"
)

// Valid reports whether s is one of the known scopes.
func (s Scope) Valid() bool {
	return s == ScopeConsumer || s == ScopeManufacturer
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    UserID
	Email string
	Scope Scope
}

// Consumer is an end user holding a Swasth Wallet.
type Consumer struct {
	ID             UserID
	Email          string
	HashedPassword string `json:"-"`
	Profile        HealthProfile
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Manufacturer owns products, logs their genesis and issues recalls.
type Manufacturer struct {
	ID             UserID
	Email          string
	Name           string
	HashedPassword string `json:"-"`
	CreatedAt      time.Time
}
