package domain_test

import (
	"encoding/json"
	"testing"

	"foodtrace/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestAllergens_DecodeKeepsOrder(t *testing.T) {
	var a domain.Allergens
	err := json.Unmarshal([]byte(`{"contains_soy":true,"contains_milk":false,"contains_eggs":null,"contains_peanuts":true}`), &a)
	require.NoError(t, err)
	require.Equal(t, []domain.AllergenFlag{
		{Name: "contains_soy", Present: true},
		{Name: "contains_milk", Present: false},
		{Name: "contains_eggs", Present: false},
		{Name: "contains_peanuts", Present: true},
	}, a.Flags)
	require.True(t, a.Contains("soy"))
	require.False(t, a.Contains("eggs"))
	require.False(t, a.Contains("fish"))
}

func TestAllergens_EncodeKeepsOrder(t *testing.T) {
	a := domain.Allergens{Flags: []domain.AllergenFlag{
		{Name: "contains_wheat", Present: true},
		{Name: "contains_fish", Present: false},
	}}
	b, err := json.Marshal(a)
	require.NoError(t, err)
	require.JSONEq(t, `{"contains_wheat":true,"contains_fish":false}`, string(b))
	require.Equal(t, `{"contains_wheat":true,"contains_fish":false}`, string(b))
}

func TestAllergens_EmptyObject(t *testing.T) {
	var a domain.Allergens
	require.NoError(t, json.Unmarshal([]byte(`{}`), &a))
	require.NotNil(t, a.Flags)
	require.Empty(t, a.Flags)

	b, err := json.Marshal(a)
	require.NoError(t, err)
	require.Equal(t, `{}`, string(b))
}

func TestAllergens_RejectsNonBoolean(t *testing.T) {
	var a domain.Allergens
	require.Error(t, json.Unmarshal([]byte(`{"contains_soy":"yes"}`), &a))
	require.Error(t, json.Unmarshal([]byte(`[true]`), &a))
}

func TestNewAllergensAndSet(t *testing.T) {
	a := domain.NewAllergens("milk", "soy")
	require.Len(t, a.Flags, len(domain.StandardAllergens))
	require.Equal(t, "contains_peanuts", a.Flags[0].Name)
	require.Equal(t, "peanuts", a.Flags[0].Allergen())
	require.True(t, a.Contains("milk"))
	require.True(t, a.Contains("soy"))
	require.False(t, a.Contains("peanuts"))

	a.Set("peanuts", true)
	require.True(t, a.Contains("peanuts"))
	a.Set("sesame", true)
	require.Equal(t, "contains_sesame", a.Flags[len(a.Flags)-1].Name)

	var nilAllergens *domain.Allergens
	require.False(t, nilAllergens.Contains("milk"))
}

func TestHealthProfile(t *testing.T) {
	p := domain.HealthProfile{
		Allergies:  []string{"peanuts"},
		Conditions: []string{domain.ConditionHighBloodPressure},
	}
	require.True(t, p.HasAllergy("peanuts"))
	require.False(t, p.HasAllergy("milk"))
	require.True(t, p.HasCondition("high blood pressure"))
	require.False(t, p.HasCondition("high_blood_pressure"))
	require.True(t, p.Completed())
	require.False(t, domain.HealthProfile{}.Completed())
}

func TestScopeValid(t *testing.T) {
	require.True(t, domain.ScopeConsumer.Valid())
	require.True(t, domain.ScopeManufacturer.Valid())
	require.False(t, domain.Scope("admin").Valid())
}
