package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportProductsCSV(t *testing.T) {
	compareAt := 1999.0
	p := models.Product{
		ID:             uuid.MustParse("0192b6f0-0000-7000-8000-000000000001"),
		Name:           `Oxford Shirt, "Slim"`,
		Slug:           "oxford-shirt-slim",
		Category:       "men",
		Subcategories:  []string{"shirts", "formal"},
		Brand:          "Strevo",
		Price:          1299,
		CompareAtPrice: &compareAt,
		StockQuantity:  14,
		Colors:         []string{"white", "blue"},
		Sizes:          []string{"M"},
		IsActive:       true,
		CreatedAt:      time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC),
	}

	out, err := ExportProductsCSV([]models.Product{p})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, productCSVHeader, records[0])

	row := records[1]
	assert.Equal(t, p.ID.String(), row[0])
	assert.Equal(t, `Oxford Shirt, "Slim"`, row[1])
	assert.Equal(t, "shirts|formal", row[4])
	assert.Equal(t, "1299.00", row[7])
	assert.Equal(t, "1999.00", row[8])
	assert.Equal(t, "14", row[9])
	assert.Equal(t, "", row[12])
	assert.Equal(t, "true", row[13])
	assert.Equal(t, "2026-10-01T08:30:00Z", row[14])
}

func TestExportProductsCSV_HeaderOnly(t *testing.T) {
	out, err := ExportProductsCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
