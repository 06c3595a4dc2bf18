package v1handler

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"

	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

// Date is a calendar date encoded as "YYYY-MM-DD".
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	*d = Date(t)

	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
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

type User struct {
	Email   string  `json:"email"`
	Profile Profile `json:"profile"`
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}

	return in
}

func DomainProfileToV1(p domain.HealthProfile) Profile {
	return Profile{
		Allergies:     nonNil(p.Allergies),
		Diet:          nonNil(p.Diet),
		Conditions:    nonNil(p.Conditions),
		Age:           p.Age,
		Gender:        p.Gender,
		HeightCM:      p.HeightCM,
		WeightKG:      p.WeightKG,
		ActivityLevel: p.ActivityLevel,
		Goals:         nonNil(p.Goals),
	}
}

func (p Profile) ToDomain() domain.HealthProfile {
	return domain.HealthProfile(p)
}

func DomainConsumerToV1(c *domain.Consumer) User {
	return User{Email: c.Email, Profile: DomainProfileToV1(c.Profile)}
}

type Nutrition struct {
	Sodium          int     `json:"sodium"`
	Sugar           int     `json:"sugar"`
	CaloriesPer100g int     `json:"calories_per_100g"`
	ProteinG        float64 `json:"protein_g"`
	CarbsG          float64 `json:"carbs_g"`
	FatG            float64 `json:"fat_g"`
	FiberG          float64 `json:"fiber_g"`
}

type ProductCreate struct {
	Name              string                `json:"name"`
	Brand             string                `json:"brand"`
	Category          string                `json:"category"`
	SubCategory       string                `json:"sub_category"`
	ImageURL          string                `json:"image_url"`
	Ingredients       []string              `json:"ingredients"`
	Nutrition         *Nutrition            `json:"nutrition"`
	Allergens         *domain.Allergens     `json:"allergens"`
	Certifications    domain.Certifications `json:"certifications"`
	BatchNumber       string                `json:"batch_number"`
	ManufacturingDate Date                  `json:"manufacturing_date"`
	ExpiryDate        Date                  `json:"expiry_date"`
	MRP               json.Number           `json:"mrp"`
	NetWeight         string                `json:"net_weight"`
}

// ToDomain validates the request and converts it to a draft. Allergen flags
// are mapped onto the standard set; unknown flags are ignored.
func (p ProductCreate) ToDomain() (domain.ProductDraft, error) {
	if p.Nutrition == nil {
		return domain.ProductDraft{}, serrors.With(serrors.ErrBadRequest, "nutrition is required")
	}
	mrp, err := decimal.NewFromString(p.MRP.String())
	if err != nil {
		return domain.ProductDraft{}, serrors.Wrap(serrors.ErrBadRequest, err, "mrp must be a number")
	}

	allergens := domain.NewAllergens()
	if p.Allergens != nil {
		known := make(map[string]struct{}, len(domain.StandardAllergens))
		for _, name := range domain.StandardAllergens {
			known[name] = struct{}{}
		}
		for _, f := range p.Allergens.Flags {
			if _, ok := known[f.Allergen()]; ok && strings.HasPrefix(f.Name, domain.AllergenFlagPrefix) {
				allergens.Set(f.Allergen(), f.Present)
			}
		}
	}

	ingredients := make([]string, 0, len(p.Ingredients))
	for _, i := range p.Ingredients {
		if i = strings.TrimSpace(i); i != "" {
			ingredients = append(ingredients, i)
		}
	}

	return domain.ProductDraft{
		Name:              strings.TrimSpace(p.Name),
		Brand:             strings.TrimSpace(p.Brand),
		Category:          p.Category,
		SubCategory:       p.SubCategory,
		ImageURL:          p.ImageURL,
		Ingredients:       ingredients,
		Nutrition:         domain.Nutrition(*p.Nutrition),
		Allergens:         *allergens,
		Certifications:    p.Certifications,
		BatchNumber:       strings.TrimSpace(p.BatchNumber),
		ManufacturingDate: time.Time(p.ManufacturingDate),
		ExpiryDate:        time.Time(p.ExpiryDate),
		MRP:               mrp,
		NetWeight:         p.NetWeight,
	}, nil
}

type TraceabilityEntry struct {
	LogID          int64     `json:"log_id"`
	ProductID      string    `json:"product_id"`
	Timestamp      time.Time `json:"timestamp"`
	Location       string    `json:"location"`
	Stage          string    `json:"stage"`
	Actor          string    `json:"actor"`
	Status         *string   `json:"status"`
	Notes          *string   `json:"notes"`
	PreviousHash   string    `json:"previous_hash"`
	CurrentHash    string    `json:"current_hash"`
	BlockchainTxID *string   `json:"blockchain_tx_id"`
}

func DomainEntryToV1(e domain.TraceabilityEntry) TraceabilityEntry {
	return TraceabilityEntry{
		LogID:          e.LogID,
		ProductID:      string(e.ProductID),
		Timestamp:      e.Timestamp,
		Location:       e.Location,
		Stage:          e.Stage,
		Actor:          e.Actor,
		Status:         e.Status,
		Notes:          e.Notes,
		PreviousHash:   e.PreviousHash,
		CurrentHash:    e.CurrentHash,
		BlockchainTxID: e.BlockchainTxID,
	}
}

type LocationUpdate struct {
	ProductID string  `json:"product_id"`
	Location  string  `json:"location"`
	Stage     string  `json:"stage"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
	Actor     *string `json:"actor"`
}

func (u LocationUpdate) ToDomain() domain.LocationUpdate {
	actor := domain.DefaultActor
	if u.Actor != nil {
		actor = *u.Actor
	}

	return domain.LocationUpdate{
		ProductID: domain.ProductID(u.ProductID),
		Location:  u.Location,
		Stage:     u.Stage,
		Status:    u.Status,
		Notes:     u.Notes,
		Actor:     actor,
	}
}

type ChainVerification struct {
	Valid    bool   `json:"valid"`
	Entries  int    `json:"entries"`
	BrokenAt *int64 `json:"broken_at,omitempty"`
}

type Recall struct {
	RecallID    int64     `json:"recall_id"`
	BatchNumber string    `json:"batch_number"`
	Reason      string    `json:"reason"`
	RecallDate  time.Time `json:"recall_date"`
}

func DomainRecallToV1(r domain.Recall) Recall {
	return Recall{
		RecallID:    r.ID,
		BatchNumber: r.BatchNumber,
		Reason:      r.Reason,
		RecallDate:  r.RecallDate,
	}
}

type RecallCreate struct {
	BatchNumber string `json:"batch_number"`
	Reason      string `json:"reason"`
}

type Review struct {
	ReviewID      int64     `json:"review_id"`
	ProductID     string    `json:"product_id"`
	ConsumerEmail string    `json:"consumer_email"`
	Rating        int       `json:"rating"`
	Comment       *string   `json:"comment"`
	ReviewDate    time.Time `json:"review_date"`
}

func DomainReviewToV1(r domain.Review) Review {
	return Review{
		ReviewID:      r.ID,
		ProductID:     string(r.ProductID),
		ConsumerEmail: r.ConsumerEmail,
		Rating:        r.Rating,
		Comment:       r.Comment,
		ReviewDate:    r.ReviewDate,
	}
}

type ReviewCreate struct {
	ProductID string  `json:"product_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
}

type Product struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Brand             string                `json:"brand"`
	Category          string                `json:"category"`
	SubCategory       string                `json:"sub_category"`
	ImageURL          string                `json:"image_url"`
	Ingredients       []string              `json:"ingredients"`
	Nutrition         *Nutrition            `json:"nutrition"`
	Allergens         *domain.Allergens     `json:"allergens"`
	Certifications    domain.Certifications `json:"certifications"`
	Traceability      []TraceabilityEntry   `json:"traceability"`
	BatchNumber       string                `json:"batch_number"`
	ManufacturingDate Date                  `json:"manufacturing_date"`
	ExpiryDate        Date                  `json:"expiry_date"`
	MRP               json.Number           `json:"mrp"`
	NetWeight         string                `json:"net_weight"`
	ManufacturerID    string                `json:"manufacturer_id"`
	Recalls           []Recall              `json:"recalls"`
	Reviews           []Review              `json:"reviews"`
}

func DomainProductToV1(p *domain.Product) Product {
	out := Product{
		ID:                string(p.ID),
		Name:              p.Name,
		Brand:             p.Brand,
		Category:          p.Category,
		SubCategory:       p.SubCategory,
		ImageURL:          p.ImageURL,
		Ingredients:       nonNil(p.Ingredients),
		Allergens:         p.Allergens,
		Certifications:    p.Certifications,
		Traceability:      make([]TraceabilityEntry, 0, len(p.Traceability)),
		BatchNumber:       p.BatchNumber,
		ManufacturingDate: Date(p.ManufacturingDate),
		ExpiryDate:        Date(p.ExpiryDate),
		MRP:               json.Number(p.MRP.String()),
		NetWeight:         p.NetWeight,
		ManufacturerID:    p.ManufacturerID.String(),
		Recalls:           make([]Recall, 0, len(p.Recalls)),
		Reviews:           make([]Review, 0, len(p.Reviews)),
	}
	if p.Nutrition != nil {
		n := Nutrition(*p.Nutrition)
		out.Nutrition = &n
	}
	for _, e := range p.Traceability {
		out.Traceability = append(out.Traceability, DomainEntryToV1(e))
	}
	for _, r := range p.Recalls {
		out.Recalls = append(out.Recalls, DomainRecallToV1(r))
	}
	for _, r := range p.Reviews {
		out.Reviews = append(out.Reviews, DomainReviewToV1(r))
	}

	return out
}

type Analysis struct {
	Issues []domain.Issue `json:"issues"`
}
