package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foodtrace/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgConsumer struct {
	ID             uuid.UUID       `db:"id"              goqu:"skipinsert"`
	Email          string          `db:"email"`
	HashedPassword string          `db:"hashed_password"`
	ProfileJSON    json.RawMessage `db:"profile_json"`
	CreatedAt      time.Time       `db:"created_at"      goqu:"skipinsert"`
	UpdatedAt      sql.NullTime    `db:"updated_at"      goqu:"skipinsert"`
}

func (p *PgConsumer) ToDomain() (*domain.Consumer, error) {
	var profile domain.HealthProfile
	if len(p.ProfileJSON) > 0 {
		if err := json.Unmarshal(p.ProfileJSON, &profile); err != nil {
			return nil, fmt.Errorf("could not unmarshal health profile: %w", err)
		}
	}

	return &domain.Consumer{
		ID:             domain.UserID(p.ID),
		Email:          p.Email,
		HashedPassword: p.HashedPassword,
		Profile:        profile,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}, nil
}

func (p *PgConsumer) FromDomain(c domain.Consumer) error {
	profile, err := json.Marshal(c.Profile)
	if err != nil {
		return fmt.Errorf("could not marshal health profile: %w", err)
	}

	*p = PgConsumer{
		ID:             uuid.UUID(c.ID),
		Email:          c.Email,
		HashedPassword: c.HashedPassword,
		ProfileJSON:    profile,
	}

	return nil
}

type PgManufacturer struct {
	ID             uuid.UUID `db:"id"              goqu:"skipinsert"`
	Email          string    `db:"email"`
	Name           string    `db:"name"`
	HashedPassword string    `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"      goqu:"skipinsert"`
}

func (p *PgManufacturer) ToDomain() *domain.Manufacturer {
	return &domain.Manufacturer{
		ID:             domain.UserID(p.ID),
		Email:          p.Email,
		Name:           p.Name,
		HashedPassword: p.HashedPassword,
		CreatedAt:      p.CreatedAt,
	}
}

// PgProduct mirrors the products table. Allergens are one boolean column per
// standard allergen; ingredients are stored comma separated.
type PgProduct struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Brand       string `db:"brand"`
	Category    string `db:"category"`
	SubCategory string `db:"sub_category"`
	ImageURL    string `db:"image_url"`
	Ingredients string `db:"ingredients"`

	Sodium          int     `db:"sodium"`
	Sugar           int     `db:"sugar"`
	CaloriesPer100g int     `db:"calories_per_100g"`
	ProteinG        float64 `db:"protein_g"`
	CarbsG          float64 `db:"carbs_g"`
	FatG            float64 `db:"fat_g"`
	FiberG          float64 `db:"fiber_g"`

	ContainsPeanuts   bool `db:"contains_peanuts"`
	ContainsTreeNuts  bool `db:"contains_tree_nuts"`
	ContainsMilk      bool `db:"contains_milk"`
	ContainsEggs      bool `db:"contains_eggs"`
	ContainsFish      bool `db:"contains_fish"`
	ContainsShellfish bool `db:"contains_shellfish"`
	ContainsWheat     bool `db:"contains_wheat"`
	ContainsSoy       bool `db:"contains_soy"`

	OrganicCertified bool           `db:"organic_certified"`
	FSSAILicense     string         `db:"fssai_license"`
	ISOCertification sql.NullString `db:"iso_certification"`

	BatchNumber       string          `db:"batch_number"`
	ManufacturingDate time.Time       `db:"manufacturing_date"`
	ExpiryDate        time.Time       `db:"expiry_date"`
	MRP               decimal.Decimal `db:"mrp"`
	NetWeight         string          `db:"net_weight"`
	ManufacturerID    uuid.UUID       `db:"manufacturer_id"`
	CreatedAt         time.Time       `db:"created_at"         goqu:"skipinsert"`
}

func (p *PgProduct) allergenColumns() []*bool {
	return []*bool{
		&p.ContainsPeanuts,
		&p.ContainsTreeNuts,
		&p.ContainsMilk,
		&p.ContainsEggs,
		&p.ContainsFish,
		&p.ContainsShellfish,
		&p.ContainsWheat,
		&p.ContainsSoy,
	}
}

func (p *PgProduct) ToDomain() *domain.Product {
	allergens := domain.NewAllergens()
	for i, col := range p.allergenColumns() {
		allergens.Flags[i].Present = *col
	}

	return &domain.Product{
		ID:          domain.ProductID(p.ID),
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		ImageURL:    p.ImageURL,
		Ingredients: splitIngredients(p.Ingredients),
		Nutrition: &domain.Nutrition{
			Sodium:          p.Sodium,
			Sugar:           p.Sugar,
			CaloriesPer100g: p.CaloriesPer100g,
			ProteinG:        p.ProteinG,
			CarbsG:          p.CarbsG,
			FatG:            p.FatG,
			FiberG:          p.FiberG,
		},
		Allergens: allergens,
		Certifications: domain.Certifications{
			OrganicCertified: p.OrganicCertified,
			FSSAILicense:     p.FSSAILicense,
			ISOCertification: nullStringPtr(p.ISOCertification),
		},
		BatchNumber:       p.BatchNumber,
		ManufacturingDate: p.ManufacturingDate,
		ExpiryDate:        p.ExpiryDate,
		MRP:               p.MRP,
		NetWeight:         p.NetWeight,
		ManufacturerID:    domain.UserID(p.ManufacturerID),
		CreatedAt:         p.CreatedAt,
	}
}

func (p *PgProduct) FromDomain(product domain.Product) {
	*p = PgProduct{
		ID:                string(product.ID),
		Name:              product.Name,
		Brand:             product.Brand,
		Category:          product.Category,
		SubCategory:       product.SubCategory,
		ImageURL:          product.ImageURL,
		Ingredients:       strings.Join(product.Ingredients, ","),
		OrganicCertified:  product.Certifications.OrganicCertified,
		FSSAILicense:      product.Certifications.FSSAILicense,
		ISOCertification:  ptrNullString(product.Certifications.ISOCertification),
		BatchNumber:       product.BatchNumber,
		ManufacturingDate: product.ManufacturingDate,
		ExpiryDate:        product.ExpiryDate,
		MRP:               product.MRP,
		NetWeight:         product.NetWeight,
		ManufacturerID:    uuid.UUID(product.ManufacturerID),
	}
	if n := product.Nutrition; n != nil {
		p.Sodium = n.Sodium
		p.Sugar = n.Sugar
		p.CaloriesPer100g = n.CaloriesPer100g
		p.ProteinG = n.ProteinG
		p.CarbsG = n.CarbsG
		p.FatG = n.FatG
		p.FiberG = n.FiberG
	}
	for i, col := range p.allergenColumns() {
		*col = product.Allergens.Contains(domain.StandardAllergens[i])
	}
}

func splitIngredients(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

type PgTraceabilityEntry struct {
	LogID          int64          `db:"log_id"           goqu:"skipinsert"`
	ProductID      string         `db:"product_id"`
	Timestamp      time.Time      `db:"timestamp"`
	Location       string         `db:"location"`
	Stage          string         `db:"stage"`
	Actor          string         `db:"actor"`
	Status         sql.NullString `db:"status"`
	Notes          sql.NullString `db:"notes"`
	PreviousHash   string         `db:"previous_hash"`
	CurrentHash    string         `db:"current_hash"`
	BlockchainTxID sql.NullString `db:"blockchain_tx_id"`
}

func (p *PgTraceabilityEntry) ToDomain() domain.TraceabilityEntry {
	return domain.TraceabilityEntry{
		LogID:          p.LogID,
		ProductID:      domain.ProductID(p.ProductID),
		Timestamp:      p.Timestamp.UTC(),
		Location:       p.Location,
		Stage:          p.Stage,
		Actor:          p.Actor,
		Status:         nullStringPtr(p.Status),
		Notes:          nullStringPtr(p.Notes),
		PreviousHash:   p.PreviousHash,
		CurrentHash:    p.CurrentHash,
		BlockchainTxID: nullStringPtr(p.BlockchainTxID),
	}
}

func (p *PgTraceabilityEntry) FromDomain(e domain.TraceabilityEntry) {
	*p = PgTraceabilityEntry{
		ProductID:      string(e.ProductID),
		Timestamp:      e.Timestamp,
		Location:       e.Location,
		Stage:          e.Stage,
		Actor:          e.Actor,
		Status:         ptrNullString(e.Status),
		Notes:          ptrNullString(e.Notes),
		PreviousHash:   e.PreviousHash,
		CurrentHash:    e.CurrentHash,
		BlockchainTxID: ptrNullString(e.BlockchainTxID),
	}
}

type PgRecall struct {
	RecallID    int64     `db:"recall_id"    goqu:"skipinsert"`
	BatchNumber string    `db:"batch_number"`
	Reason      string    `db:"reason"`
	RecallDate  time.Time `db:"recall_date"`
}

func (p *PgRecall) ToDomain() domain.Recall {
	return domain.Recall{
		ID:          p.RecallID,
		BatchNumber: p.BatchNumber,
		Reason:      p.Reason,
		RecallDate:  p.RecallDate.UTC(),
	}
}

type PgReview struct {
	ReviewID      int64          `db:"review_id"      goqu:"skipinsert"`
	ProductID     string         `db:"product_id"`
	ConsumerEmail string         `db:"consumer_email"`
	Rating        int            `db:"rating"`
	Comment       sql.NullString `db:"comment"`
	ReviewDate    time.Time      `db:"review_date"`
}

func (p *PgReview) ToDomain() domain.Review {
	return domain.Review{
		ID:            p.ReviewID,
		ProductID:     domain.ProductID(p.ProductID),
		ConsumerEmail: p.ConsumerEmail,
		Rating:        p.Rating,
		Comment:       nullStringPtr(p.Comment),
		ReviewDate:    p.ReviewDate.UTC(),
	}
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

func ptrNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}
