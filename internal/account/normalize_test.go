package account_test

import (
	"testing"

	"foodtrace/internal/account"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "Asha@Example.com", want: "asha@example.com"},
		{in: "  ravi@example.in ", want: "ravi@example.in"},
		{in: "", wantErr: true},
		{in: "not-an-email", wantErr: true},
		{in: "Asha <asha@example.com>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := account.NormalizeEmail(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, serrors.ErrBadRequest)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeProfile(t *testing.T) {
	age := 40
	in := domain.HealthProfile{
		Allergies:  []string{" Peanuts", "tree_nuts", "peanuts", ""},
		Conditions: []string{"High Blood Pressure ", "diabetes", "DIABETES"},
		Diet:       []string{"Vegetarian"},
		Age:        &age,
	}

	got := account.NormalizeProfile(in)
	require.Equal(t, []string{"peanuts", "tree_nuts"}, got.Allergies)
	require.Equal(t, []string{"high blood pressure", "diabetes"}, got.Conditions)
	require.Equal(t, []string{"vegetarian"}, got.Diet)
	require.Equal(t, []string{}, got.Goals)
	require.Equal(t, &age, got.Age)
	require.True(t, got.HasCondition(domain.ConditionHighBloodPressure))
}
