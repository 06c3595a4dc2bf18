// Package account manages consumer and manufacturer accounts: registration,
// credential checks, token issuance and the consumer health profile.
package account

import (
	"context"
	"errors"
	"fmt"

	"foodtrace/pkg/auth"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/logger"
	"foodtrace/pkg/serrors"
	"foodtrace/pkg/storage"

	"go.uber.org/zap"
)

const bearerTokenType = "bearer"

var errBadCredentials = serrors.With(serrors.ErrUnauthorized, "Incorrect email or password")

type accounts struct {
	storage storage.Storage
	issuer  TokenIssuer
}

func (a accounts) Register(ctx context.Context, email, password string) (*domain.Consumer, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	consumer, err := a.storage.StoreConsumer(ctx, domain.Consumer{
		Email:          email,
		HashedPassword: hashed,
		Profile:        NormalizeProfile(domain.HealthProfile{}),
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrBadRequest, "Email already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store consumer: %w", err)
	}

	logger.Info(ctx, "consumer registered", zap.String("consumer_id", consumer.ID.String()))

	return consumer, nil
}

func (a accounts) LoginConsumer(ctx context.Context, email, password string) (*Token, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, errBadCredentials
	}

	consumer, err := a.storage.ConsumerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get consumer: %w", err)
	}
	if consumer == nil || !auth.CheckPassword(consumer.HashedPassword, password) {
		return nil, errBadCredentials
	}

	return a.token(domain.Principal{ID: consumer.ID, Email: consumer.Email, Scope: domain.ScopeConsumer})
}

func (a accounts) LoginManufacturer(ctx context.Context, email, password string) (*Token, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, errBadCredentials
	}

	manufacturer, err := a.storage.ManufacturerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get manufacturer: %w", err)
	}
	if manufacturer == nil || !auth.CheckPassword(manufacturer.HashedPassword, password) {
		return nil, errBadCredentials
	}

	return a.token(domain.Principal{
		ID:    manufacturer.ID,
		Email: manufacturer.Email,
		Scope: domain.ScopeManufacturer,
	})
}

func (a accounts) token(p domain.Principal) (*Token, error) {
	signed, err := a.issuer.Issue(p)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &Token{AccessToken: signed, TokenType: bearerTokenType}, nil
}

func (a accounts) Profile(ctx context.Context, consumerID domain.UserID) (*domain.Consumer, error) {
	consumer, err := a.storage.ConsumerByID(ctx, consumerID)
	if err != nil {
		return nil, fmt.Errorf("could not get consumer: %w", err)
	}
	if consumer == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	}

	return consumer, nil
}

func (a accounts) UpdateProfile(ctx context.Context,
	consumerID domain.UserID,
	profile domain.HealthProfile) (*domain.Consumer, error) {
	consumer, err := a.storage.UpdateConsumerProfile(ctx, consumerID, NormalizeProfile(profile))
	if err != nil {
		return nil, fmt.Errorf("could not update profile: %w", err)
	}
	if consumer == nil {
		return nil, serrors.With(serrors.ErrNotFound, "User not found")
	}

	return consumer, nil
}

// CreateManufacturer seeds a manufacturer account. Manufacturers cannot sign
// up through the API.
func (a accounts) CreateManufacturer(ctx context.Context,
	email, password, name string) (*domain.Manufacturer, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	manufacturer, err := a.storage.StoreManufacturer(ctx, domain.Manufacturer{
		Email:          email,
		Name:           name,
		HashedPassword: hashed,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrConflict, "manufacturer %s already exists", email)
	}
	if err != nil {
		return nil, fmt.Errorf("could not store manufacturer: %w", err)
	}

	return manufacturer, nil
}

// New creates an Accounts service signing tokens with issuer.
func New(storage storage.Storage, issuer TokenIssuer) Accounts {
	return &accounts{
		storage: storage,
		issuer:  issuer,
	}
}
