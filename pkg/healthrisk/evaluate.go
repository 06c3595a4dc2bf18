// Package healthrisk matches a consumer's health profile against a product
// record and produces the ordered list of issues shown on the product page.
//
// Evaluate is pure: it holds no state, performs no I/O and may be called from
// any number of goroutines at once.
package healthrisk

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"
)

const (
	// SodiumLimitMG is the sodium content per serving above which a
	// high blood pressure warning is raised.
	SodiumLimitMG = 400
	// SugarLimitG is the sugar content per serving above which a diabetes
	// warning is raised.
	SugarLimitG = 10
)

const (
	recallPrefix  = "PRODUCT RECALLED: "
	msgHighSodium = "High Sodium Content"
	msgHighSugar  = "High Sugar Content"
	msgCeliac     = "Contains Gluten (Celiac Disease)"
	msgSafe       = "No Major Concerns Found based on your profile."
)

// Evaluate runs every rule in a fixed order and returns the issues they raise.
// Rules never short-circuit each other and the result is neither sorted nor
// deduplicated, so an allergy to wheat and celiac disease both show up.
// When no rule fires, a single safe issue is returned.
//
// A product without nutrition facts or without allergen flags cannot be
// evaluated and yields a BAD_REQUEST error.
func Evaluate(profile domain.HealthProfile, product domain.Product) ([]domain.Issue, error) {
	if product.Nutrition == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "product %s has no nutrition facts", product.ID)
	}
	if product.Allergens == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "product %s has no allergen flags", product.ID)
	}

	var issues []domain.Issue

	if len(product.Recalls) > 0 {
		issues = append(issues, domain.Issue{
			Type:    domain.IssueRecall,
			Message: recallPrefix + product.Recalls[0].Reason,
		})
	}

	for _, flag := range product.Allergens.Flags {
		if !flag.Present {
			continue
		}
		allergen := flag.Allergen()
		if profile.HasAllergy(allergen) {
			issues = append(issues, domain.Issue{
				Type:    domain.IssueDanger,
				Message: "Contains " + DisplayName(allergen),
			})
		}
	}

	if product.Nutrition.Sodium > SodiumLimitMG && profile.HasCondition(domain.ConditionHighBloodPressure) {
		issues = append(issues, domain.Issue{Type: domain.IssueWarning, Message: msgHighSodium})
	}

	if product.Nutrition.Sugar > SugarLimitG && profile.HasCondition(domain.ConditionDiabetes) {
		issues = append(issues, domain.Issue{Type: domain.IssueWarning, Message: msgHighSugar})
	}

	if product.Allergens.Contains("wheat") && profile.HasCondition(domain.ConditionCeliacDisease) {
		issues = append(issues, domain.Issue{Type: domain.IssueDanger, Message: msgCeliac})
	}

	if len(issues) == 0 {
		issues = append(issues, domain.Issue{Type: domain.IssueSafe, Message: msgSafe})
	}

	return issues, nil
}

// DisplayName turns an allergen identifier such as "tree_nuts" into the
// label used in issue messages ("Tree nuts").
func DisplayName(allergen string) string {
	name := strings.ReplaceAll(allergen, "_", " ")
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}
