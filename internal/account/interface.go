package account

import (
	"context"

	"foodtrace/pkg/domain"
)

// Token is an issued bearer access token.
type Token struct {
	AccessToken string
	TokenType   string
}

// Accounts is the account management service.
//
//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Accounts interface {
	// Register creates a consumer with an empty health profile.
	Register(ctx context.Context, email, password string) (*domain.Consumer, error)
	// LoginConsumer exchanges consumer credentials for a consumer scoped token.
	LoginConsumer(ctx context.Context, email, password string) (*Token, error)
	// LoginManufacturer exchanges manufacturer credentials for a manufacturer scoped token.
	LoginManufacturer(ctx context.Context, email, password string) (*Token, error)
	Profile(ctx context.Context, consumerID domain.UserID) (*domain.Consumer, error)
	// UpdateProfile normalizes and replaces the consumer's health profile.
	UpdateProfile(ctx context.Context, consumerID domain.UserID, profile domain.HealthProfile) (*domain.Consumer, error)
	CreateManufacturer(ctx context.Context, email, password, name string) (*domain.Manufacturer, error)
}

// TokenIssuer signs access tokens for authenticated principals.
type TokenIssuer interface {
	Issue(p domain.Principal) (string, error)
}
