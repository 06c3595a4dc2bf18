package v1handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"foodtrace/internal/api/handler/v1handler"
	"foodtrace/pkg/domain"
	"foodtrace/pkg/serrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const productCreateBody = `{
	"name": "Amul Gold Milk",
	"brand": "Amul",
	"category": "Dairy",
	"sub_category": "Milk",
	"image_url": "https://example.com/milk.png",
	"ingredients": ["Milk", " "],
	"nutrition": {"sodium": 45, "sugar": 5, "calories_per_100g": 66},
	"allergens": {"contains_milk": true, "contains_gluten": true, "contains_peanuts": null},
	"certifications": {"organic_certified": false, "fssai_license": "10012345000123", "iso_certification": null},
	"batch_number": " B2025 01 ",
	"manufacturing_date": "2025-03-01",
	"expiry_date": "2025-03-08",
	"mrp": 34.50,
	"net_weight": "500ml"
}`

func sampleProduct() *domain.Product {
	return &domain.Product{
		ID:                "BFT_B202501_A1B2C3",
		Name:              "Amul Gold Milk",
		Brand:             "Amul",
		Nutrition:         &domain.Nutrition{Sodium: 45, Sugar: 5},
		Allergens:         domain.NewAllergens("milk"),
		BatchNumber:       "B2025 01",
		ManufacturingDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:        time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		MRP:               decimal.RequireFromString("34.5"),
		ManufacturerID:    domain.UserID(uuid.MustParse("5f0c5d6e-8a55-4b3e-9c1d-2b1f0c9e7a11")),
		Traceability: []domain.TraceabilityEntry{{
			LogID:        1,
			ProductID:    "BFT_B202501_A1B2C3",
			Stage:        domain.StageManufacturing,
			PreviousHash: domain.GenesisPreviousHash,
			CurrentHash:  "abc",
		}},
	}
}

func TestAddProduct(t *testing.T) {
	s := newTestServer(t)
	p, tok := s.token(t, domain.ScopeManufacturer)

	s.catalog.EXPECT().CreateProduct(gomock.Any(), p, gomock.Any()).
		DoAndReturn(func(_ any, _ domain.Principal, draft domain.ProductDraft) (*domain.Product, error) {
			require.Equal(t, "B2025 01", draft.BatchNumber)
			require.Equal(t, []string{"Milk"}, draft.Ingredients)
			require.True(t, draft.MRP.Equal(decimal.RequireFromString("34.5")))
			require.True(t, draft.Allergens.Contains("milk"))
			require.False(t, draft.Allergens.Contains("gluten"))
			require.Len(t, draft.Allergens.Flags, len(domain.StandardAllergens))
			require.Equal(t, 45, draft.Nutrition.Sodium)

			return sampleProduct(), nil
		})

	rec := s.do(t, http.MethodPost, "/v1/products/add", tok, productCreateBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got v1handler.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "BFT_B202501_A1B2C3", got.ID)
	require.Equal(t, json.Number("34.5"), got.MRP)
	require.Len(t, got.Traceability, 1)
	require.Equal(t, []v1handler.Recall{}, got.Recalls)
	require.Equal(t, []v1handler.Review{}, got.Reviews)
	require.Contains(t, rec.Body.String(), `"manufacturing_date":"2025-03-01"`)
	require.Contains(t, rec.Body.String(),
		`"allergens":{"contains_peanuts":false,"contains_tree_nuts":false,"contains_milk":true`)
}

func TestAddProduct_MissingNutrition(t *testing.T) {
	s := newTestServer(t)
	_, tok := s.token(t, domain.ScopeManufacturer)

	rec := s.do(t, http.MethodPost, "/v1/products/add", tok, `{"name":"x","mrp":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "nutrition is required", decodeError(t, rec).Detail)
}

func TestAddProduct_BadDate(t *testing.T) {
	s := newTestServer(t)
	_, tok := s.token(t, domain.ScopeManufacturer)

	rec := s.do(t, http.MethodPost, "/v1/products/add", tok, `{"manufacturing_date":"01/03/2025"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_NotFound(t *testing.T) {
	s := newTestServer(t)

	s.catalog.EXPECT().Product(gomock.Any(), domain.ProductID("BFT_NOPE_000000")).
		Return(nil, serrors.With(serrors.ErrNotFound, "Product not found"))

	rec := s.do(t, http.MethodGet, "/v1/product/BFT_NOPE_000000", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Product not found", decodeError(t, rec).Detail)
}

func TestManufacturerProducts_Empty(t *testing.T) {
	s := newTestServer(t)
	p, tok := s.token(t, domain.ScopeManufacturer)

	s.catalog.EXPECT().ManufacturerProducts(gomock.Any(), p.ID).Return(nil, nil)

	rec := s.do(t, http.MethodGet, "/v1/manufacturer/products", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestAnalyzeProduct(t *testing.T) {
	s := newTestServer(t)
	p, tok := s.token(t, domain.ScopeConsumer)

	s.catalog.EXPECT().Analyze(gomock.Any(), p.ID, domain.ProductID("BFT_B202501_A1B2C3")).
		Return([]domain.Issue{
			{Type: domain.IssueRecall, Message: "PRODUCT RECALLED: contamination"},
			{Type: domain.IssueDanger, Message: "Contains Milk"},
		}, nil)

	rec := s.do(t, http.MethodGet, "/v1/product/BFT_B202501_A1B2C3/analysis", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"issues":[
		{"type":"recall","message":"PRODUCT RECALLED: contamination"},
		{"type":"danger","message":"Contains Milk"}
	]}`, rec.Body.String())
}

func TestAnalyzeProduct_RequiresConsumer(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/product/BFT_B202501_A1B2C3/analysis", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddRecall_Forbidden(t *testing.T) {
	s := newTestServer(t)
	p, tok := s.token(t, domain.ScopeManufacturer)

	s.catalog.EXPECT().AddRecall(gomock.Any(), p.ID, "B2025 01", "contamination").
		Return(nil, serrors.With(serrors.ErrForbidden,
			"You can only recall products linked to your manufacturer account."))

	rec := s.do(t, http.MethodPost, "/v1/recalls/add", tok,
		v1handler.RecallCreate{BatchNumber: "B2025 01", Reason: "contamination"})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddRecall_Created(t *testing.T) {
	s := newTestServer(t)
	p, tok := s.token(t, domain.ScopeManufacturer)
	date := time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC)

	s.catalog.EXPECT().AddRecall(gomock.Any(), p.ID, "B2025 01", "contamination").
		Return(&domain.Recall{ID: 7, BatchNumber: "B2025 01", Reason: "contamination", RecallDate: date}, nil)

	rec := s.do(t, http.MethodPost, "/v1/recalls/add", tok,
		v1handler.RecallCreate{BatchNumber: "B2025 01", Reason: "contamination"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"recall_id":7,"batch_number":"B2025 01","reason":"contamination",
		"recall_date":"2025-03-02T08:00:00Z"}`, rec.Body.String())
}

func TestAddReview(t *testing.T) {
	s := newTestServer(t)
	p, tok := s.token(t, domain.ScopeConsumer)
	comment := "Fresh"

	s.catalog.EXPECT().AddReview(gomock.Any(), p, domain.ProductID("BFT_B202501_A1B2C3"), 5, &comment).
		Return(&domain.Review{
			ID:            3,
			ProductID:     "BFT_B202501_A1B2C3",
			ConsumerEmail: p.Email,
			Rating:        5,
			Comment:       &comment,
		}, nil)

	rec := s.do(t, http.MethodPost, "/v1/reviews/add", tok,
		v1handler.ReviewCreate{ProductID: "BFT_B202501_A1B2C3", Rating: 5, Comment: &comment})
	require.Equal(t, http.StatusCreated, rec.Code)

	var got v1handler.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, p.Email, got.ConsumerEmail)
}

func TestAddReview_RatingOutOfRange(t *testing.T) {
	s := newTestServer(t)
	_, tok := s.token(t, domain.ScopeConsumer)

	s.catalog.EXPECT().AddReview(gomock.Any(), gomock.Any(), gomock.Any(), 9, nil).
		Return(nil, serrors.With(serrors.ErrBadRequest, "rating must be between 1 and 5"))

	rec := s.do(t, http.MethodPost, "/v1/reviews/add", tok,
		v1handler.ReviewCreate{ProductID: "BFT_B202501_A1B2C3", Rating: 9})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListReviews_Empty(t *testing.T) {
	s := newTestServer(t)

	s.catalog.EXPECT().Reviews(gomock.Any(), domain.ProductID("BFT_X_000000")).Return(nil, nil)

	rec := s.do(t, http.MethodGet, "/v1/reviews/BFT_X_000000", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}
