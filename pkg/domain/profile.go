package domain

import "slices"

// Conditions recognized by the health evaluator. They are kept as the literal
// human-readable labels the consumer portal stores, spaces included.
const (
	ConditionHighBloodPressure = "high blood pressure"
	ConditionDiabetes          = "diabetes"
	ConditionHighCholesterol   = "high cholesterol"
	ConditionCeliacDisease     = "celiac disease"
)

// HealthProfile is the consumer-owned Swasth Wallet. Only Allergies and
// Conditions take part in the health evaluation; the remaining fields are
// stored and returned as-is.
type HealthProfile struct {
	Allergies     []string `json:"allergies"`
	Diet          []string `json:"diet"`
	Conditions    []string `json:"conditions"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	HeightCM      *int     `json:"height_cm"`
	WeightKG      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	Goals         []string `json:"goals"`
}

// HasAllergy reports whether allergen is listed in the profile allergies.
func (p HealthProfile) HasAllergy(allergen string) bool {
	return slices.Contains(p.Allergies, allergen)
}

// HasCondition reports whether condition is listed in the profile conditions.
func (p HealthProfile) HasCondition(condition string) bool {
	return slices.Contains(p.Conditions, condition)
}

// Completed reports whether the consumer has filled in the first phase of the
// wallet (any allergy, diet or condition).
func (p HealthProfile) Completed() bool {
	return len(p.Allergies) > 0 || len(p.Diet) > 0 || len(p.Conditions) > 0
}
