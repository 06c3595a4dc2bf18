package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductID identifies a product batch listing, e.g. "BFT_B2024X_1A2B3C".
type ProductID string

// Nutrition holds the per-100g nutrition facts of a product.
type Nutrition struct {
	// Sodium in milligrams.
	Sodium int `json:"sodium"`
	// Sugar in grams.
	Sugar           int     `json:"sugar"`
	CaloriesPer100g int     `json:"calories_per_100g"`
	ProteinG        float64 `json:"protein_g"`
	CarbsG          float64 `json:"carbs_g"`
	FatG            float64 `json:"fat_g"`
	FiberG          float64 `json:"fiber_g"`
}

// Certifications lists the regulatory information printed on a product.
type Certifications struct {
	OrganicCertified bool    `json:"organic_certified"`
	FSSAILicense     string  `json:"fssai_license"`
	ISOCertification *string `json:"iso_certification"`
}

// ProductDraft is the manufacturer input used to list a new product.
type ProductDraft struct {
	Name              string
	Brand             string
	Category          string
	SubCategory       string
	ImageURL          string
	Ingredients       []string
	Nutrition         Nutrition
	Allergens         Allergens
	Certifications    Certifications
	BatchNumber       string
	ManufacturingDate time.Time
	ExpiryDate        time.Time
	MRP               decimal.Decimal
	NetWeight         string
}

// Product is the full product record shown to consumers. Nutrition and
// Allergens are pointers so that a record lacking them entirely can be told
// apart from one with zero values.
type Product struct {
	ID                ProductID
	Name              string
	Brand             string
	Category          string
	SubCategory       string
	ImageURL          string
	Ingredients       []string
	Nutrition         *Nutrition
	Allergens         *Allergens
	Certifications    Certifications
	BatchNumber       string
	ManufacturingDate time.Time
	ExpiryDate        time.Time
	MRP               decimal.Decimal
	NetWeight         string
	ManufacturerID    UserID
	CreatedAt         time.Time

	// Traceability is ordered from the genesis entry to the latest one.
	Traceability []TraceabilityEntry
	// Recalls are the recalls issued for the product batch, oldest first.
	Recalls []Recall
	// Reviews are ordered newest first.
	Reviews []Review
}

// Recalled reports whether any recall was issued for the product batch.
func (p Product) Recalled() bool {
	return len(p.Recalls) > 0
}
