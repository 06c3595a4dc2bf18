package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"foodtrace/internal/account"
	"foodtrace/internal/api/handler/v1handler"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister_Created(t *testing.T) {
	s := newTestServer(t)

	s.accounts.EXPECT().Register(gomock.Any(), "asha@example.com", "s3cret").
		Return(&domain.Consumer{Email: "asha@example.com"}, nil)

	rec := s.do(t, http.MethodPost, "/v1/users/register", "",
		v1handler.RegisterRequest{Email: "asha@example.com", Password: "s3cret"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{
		"email": "asha@example.com",
		"profile": {
			"allergies": [], "diet": [], "conditions": [], "goals": [],
			"age": null, "gender": null, "height_cm": null, "weight_kg": null, "activity_level": null
		}
	}`, rec.Body.String())
}

func TestRegister_Duplicate(t *testing.T) {
	s := newTestServer(t)

	s.accounts.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Email already registered"))

	rec := s.do(t, http.MethodPost, "/v1/users/register", "",
		v1handler.RegisterRequest{Email: "asha@example.com", Password: "s3cret"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Email already registered", decodeError(t, rec).Detail)
}

func TestConsumerToken(t *testing.T) {
	s := newTestServer(t)

	s.accounts.EXPECT().LoginConsumer(gomock.Any(), "asha@example.com", "s3cret").
		Return(&account.Token{AccessToken: "tok", TokenType: "bearer"}, nil)

	rec := s.form(t, "/v1/users/token", url.Values{"username": {"asha@example.com"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"access_token":"tok","token_type":"bearer"}`, rec.Body.String())
}

func TestManufacturerToken_WrongPassword(t *testing.T) {
	s := newTestServer(t)

	s.accounts.EXPECT().LoginManufacturer(gomock.Any(), "qa@amul.example", "nope").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "Incorrect email or password"))

	rec := s.form(t, "/v1/token", url.Values{"username": {"qa@amul.example"}, "password": {"nope"}})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	require.Equal(t, "Incorrect email or password", decodeError(t, rec).Detail)
}

func TestMe_NotFound(t *testing.T) {
	s := newTestServer(t)
	p, tok := s.token(t, domain.ScopeConsumer)

	s.accounts.EXPECT().Profile(gomock.Any(), p.ID).
		Return(nil, serrors.With(serrors.ErrNotFound, "User not found"))

	rec := s.do(t, http.MethodGet, "/v1/users/me", tok, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "User not found", decodeError(t, rec).Detail)
}

func TestUpdateMe(t *testing.T) {
	s := newTestServer(t)
	p, tok := s.token(t, domain.ScopeConsumer)
	age := 34

	s.accounts.EXPECT().UpdateProfile(gomock.Any(), p.ID, gomock.Any()).
		DoAndReturn(func(_ any, _ domain.UserID, profile domain.HealthProfile) (*domain.Consumer, error) {
			require.Equal(t, []string{"Peanuts"}, profile.Allergies)
			require.Equal(t, []string{"diabetes"}, profile.Conditions)
			require.Equal(t, &age, profile.Age)

			profile.Allergies = []string{"peanuts"}

			return &domain.Consumer{ID: p.ID, Email: p.Email, Profile: profile}, nil
		})

	rec := s.do(t, http.MethodPut, "/v1/users/me", tok, map[string]any{
		"allergies":  []string{"Peanuts"},
		"conditions": []string{"diabetes"},
		"age":        34,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got v1handler.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, []string{"peanuts"}, got.Profile.Allergies)
	require.Equal(t, []string{}, got.Profile.Diet)
}
