package account_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"foodtrace/internal/account"
	mockaccount "foodtrace/internal/account/mock"
	"foodtrace/pkg/auth"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"
	"foodtrace/pkg/storage"
	mockstorage "foodtrace/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAccounts(t *testing.T) (*mockstorage.MockStorage, *mockaccount.MockTokenIssuer, account.Accounts) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	issuer := mockaccount.NewMockTokenIssuer(ctrl)

	return st, issuer, account.New(st, issuer)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	require.NoError(t, err)

	return h
}

func TestAccounts_Register(t *testing.T) {
	st, _, a := newTestAccounts(t)
	id := domain.UserID(uuid.New())

	st.EXPECT().StoreConsumer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.Consumer) (*domain.Consumer, error) {
			require.Equal(t, "asha@example.com", c.Email)
			require.True(t, auth.CheckPassword(c.HashedPassword, "s3cret"))
			require.False(t, c.Profile.Completed())
			c.ID = id

			return &c, nil
		})

	c, err := a.Register(context.Background(), " Asha@Example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, id, c.ID)
}

func TestAccounts_Register_Duplicate(t *testing.T) {
	st, _, a := newTestAccounts(t)

	st.EXPECT().StoreConsumer(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("could not store: %w", storage.ErrDuplicate))

	_, err := a.Register(context.Background(), "asha@example.com", "s3cret")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Email already registered", serrors.PublicMessage(err))
}

func TestAccounts_Register_EmptyPassword(t *testing.T) {
	_, _, a := newTestAccounts(t)

	_, err := a.Register(context.Background(), "asha@example.com", "")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestAccounts_LoginConsumer(t *testing.T) {
	st, issuer, a := newTestAccounts(t)
	consumer := &domain.Consumer{
		ID:             domain.UserID(uuid.New()),
		Email:          "asha@example.com",
		HashedPassword: mustHash(t, "s3cret"),
	}

	st.EXPECT().ConsumerByEmail(gomock.Any(), "asha@example.com").Return(consumer, nil).Times(2)
	issuer.EXPECT().Issue(domain.Principal{
		ID:    consumer.ID,
		Email: consumer.Email,
		Scope: domain.ScopeConsumer,
	}).Return("signed", nil)

	tok, err := a.LoginConsumer(context.Background(), "ASHA@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, &account.Token{AccessToken: "signed", TokenType: "bearer"}, tok)

	_, err = a.LoginConsumer(context.Background(), "asha@example.com", "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestAccounts_LoginConsumer_Unknown(t *testing.T) {
	st, _, a := newTestAccounts(t)
	st.EXPECT().ConsumerByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	_, err := a.LoginConsumer(context.Background(), "nobody@example.com", "x")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	require.Equal(t, "Incorrect email or password", serrors.PublicMessage(err))
}

func TestAccounts_LoginManufacturer(t *testing.T) {
	st, issuer, a := newTestAccounts(t)
	m := &domain.Manufacturer{
		ID:             domain.UserID(uuid.New()),
		Email:          "qa@amul.example",
		HashedPassword: mustHash(t, "factory"),
	}

	st.EXPECT().ManufacturerByEmail(gomock.Any(), "qa@amul.example").Return(m, nil)
	issuer.EXPECT().Issue(gomock.Any()).DoAndReturn(func(p domain.Principal) (string, error) {
		require.Equal(t, domain.ScopeManufacturer, p.Scope)

		return "signed", nil
	})

	tok, err := a.LoginManufacturer(context.Background(), "qa@amul.example", "factory")
	require.NoError(t, err)
	require.Equal(t, "signed", tok.AccessToken)
}

func TestAccounts_LoginManufacturer_IssuerError(t *testing.T) {
	st, issuer, a := newTestAccounts(t)
	m := &domain.Manufacturer{Email: "qa@amul.example", HashedPassword: mustHash(t, "factory")}

	st.EXPECT().ManufacturerByEmail(gomock.Any(), gomock.Any()).Return(m, nil)
	issuer.EXPECT().Issue(gomock.Any()).Return("", errors.New("no key"))

	_, err := a.LoginManufacturer(context.Background(), "qa@amul.example", "factory")
	require.Error(t, err)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestAccounts_Profile(t *testing.T) {
	st, _, a := newTestAccounts(t)
	id := domain.UserID(uuid.New())

	st.EXPECT().ConsumerByID(gomock.Any(), id).Return(nil, nil)
	_, err := a.Profile(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().ConsumerByID(gomock.Any(), id).Return(&domain.Consumer{ID: id}, nil)
	c, err := a.Profile(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, id, c.ID)
}

func TestAccounts_UpdateProfile_Normalizes(t *testing.T) {
	st, _, a := newTestAccounts(t)
	id := domain.UserID(uuid.New())

	st.EXPECT().UpdateConsumerProfile(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, p domain.HealthProfile) (*domain.Consumer, error) {
			require.Equal(t, []string{"peanuts"}, p.Allergies)
			require.Equal(t, []string{"celiac disease"}, p.Conditions)

			return &domain.Consumer{ID: id, Profile: p}, nil
		})

	c, err := a.UpdateProfile(context.Background(), id, domain.HealthProfile{
		Allergies:  []string{"Peanuts", "peanuts "},
		Conditions: []string{"Celiac Disease"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"peanuts"}, c.Profile.Allergies)
}

func TestAccounts_CreateManufacturer(t *testing.T) {
	st, _, a := newTestAccounts(t)

	st.EXPECT().StoreManufacturer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m domain.Manufacturer) (*domain.Manufacturer, error) {
			require.Equal(t, "Amul", m.Name)

			return &m, nil
		})
	m, err := a.CreateManufacturer(context.Background(), "QA@amul.example", "factory", "Amul")
	require.NoError(t, err)
	require.Equal(t, "qa@amul.example", m.Email)

	st.EXPECT().StoreManufacturer(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)
	_, err = a.CreateManufacturer(context.Background(), "qa@amul.example", "factory", "Amul")
	require.ErrorIs(t, err, serrors.ErrConflict)
}
