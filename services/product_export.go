package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
)

var productCSVHeader = []string{
	"id", "name", "slug", "category", "subcategories", "brand", "material",
	"price", "compare_at_price", "stock_quantity", "colors", "sizes",
	"collections", "is_active", "created_at",
}

// ExportProductsCSV writes one row per product; array columns are joined with "|"
func ExportProductsCSV(products []models.Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(productCSVHeader); err != nil {
		return nil, err
	}

	for _, p := range products {
		compareAt := ""
		if p.CompareAtPrice != nil {
			compareAt = strconv.FormatFloat(*p.CompareAtPrice, 'f', 2, 64)
		}
		record := []string{
			p.ID.String(),
			p.Name,
			p.Slug,
			p.Category,
			strings.Join(p.Subcategories, "|"),
			p.Brand,
			p.Material,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			compareAt,
			strconv.Itoa(p.StockQuantity),
			strings.Join(p.Colors, "|"),
			strings.Join(p.Sizes, "|"),
			strings.Join(p.Collections, "|"),
			strconv.FormatBool(p.IsActive),
			p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write product %s: %w", p.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
