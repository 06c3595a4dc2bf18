package catalog

import (
	"strings"

	"foodtrace/pkg/domain"

	"github.com/google/uuid"
)

const productIDPrefix = "BFT_"

// NewProductID derives a product ID from its batch number:
// BFT_<batch without spaces>_<6 random upper-case hex digits>.
func NewProductID(batchNumber string) domain.ProductID {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]

	return domain.ProductID(productIDPrefix +
		strings.ReplaceAll(batchNumber, " ", "") + "_" +
		strings.ToUpper(random))
}
