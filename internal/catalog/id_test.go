package catalog_test

import (
	"regexp"
	"testing"

	"foodtrace/internal/catalog"

	"github.com/stretchr/testify/require"
)

func TestNewProductID(t *testing.T) {
	re := regexp.MustCompile(`^BFT_B2024X1_[0-9A-F]{6}$`)

	seen := map[string]struct{}{}
	for range 50 {
		id := string(catalog.NewProductID("B2024 X 1"))
		require.Regexp(t, re, id)
		seen[id] = struct{}{}
	}
	require.Greater(t, len(seen), 1)
}
