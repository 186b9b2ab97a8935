package models

import (
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string         `json:"name" gorm:"not null;index"`
	Slug           string         `json:"slug" gorm:"not null;uniqueIndex"`
	Description    string         `json:"description" gorm:"not null"`
	Category       string         `json:"category" gorm:"not null;index"`
	Subcategories  pq.StringArray `json:"subcategories" gorm:"type:text[];not null;default:'{}'"`
	Brand          string         `json:"brand" gorm:"not null;index"`
	Colors         pq.StringArray `json:"colors" gorm:"type:text[];not null;default:'{}'"`
	Sizes          pq.StringArray `json:"sizes" gorm:"type:text[];not null;default:'{}'"`
	Material       string         `json:"material" gorm:"not null;default:''"`
	Collections    pq.StringArray `json:"collections" gorm:"type:text[];not null;default:'{}'"`
	Price          float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	CompareAtPrice *float64       `json:"compare_at_price,omitempty" gorm:"type:numeric(12,2)"`
	StockQuantity  int            `json:"stock_quantity" gorm:"not null;default:0"`
	ImageURLs      pq.StringArray `json:"image_urls" gorm:"column:image_urls;type:text[];not null;default:'{}'"`
	ThumbnailURL   string         `json:"thumbnail_url" gorm:"not null;default:''"`
	IsActive       bool           `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	// nil arrays would be written as NULL
	for _, arr := range []*pq.StringArray{&p.Subcategories, &p.Colors, &p.Sizes, &p.Collections, &p.ImageURLs} {
		if *arr == nil {
			*arr = pq.StringArray{}
		}
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// OnSale reports whether a compare-at price above the selling price is set
func (p Product) OnSale() bool {
	return p.CompareAtPrice != nil && *p.CompareAtPrice > p.Price
}

// ═══════════════════════════════════════════════════════════
// Storefront projections (pgx, scanned by column name)
// ═══════════════════════════════════════════════════════════

// ProductCard is one row of the storefront listing
type ProductCard struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Slug           string    `json:"slug" db:"slug"`
	Category       string    `json:"category" db:"category"`
	Brand          string    `json:"brand" db:"brand"`
	Price          float64   `json:"price" db:"price"`
	CompareAtPrice *float64  `json:"compare_at_price,omitempty" db:"compare_at_price"`
	StockQuantity  int       `json:"stock_quantity" db:"stock_quantity"`
	Colors         []string  `json:"colors" db:"colors"`
	Sizes          []string  `json:"sizes" db:"sizes"`
	ThumbnailURL   string    `json:"thumbnail_url" db:"thumbnail_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ProductCardColumns is the select list matching ProductCard
var ProductCardColumns = []string{
	"id", "name", "slug", "category", "brand", "price", "compare_at_price",
	"stock_quantity", "colors", "sizes", "thumbnail_url", "created_at",
}

// FacetRow is the narrow projection sampled for facet counting
type FacetRow struct {
	Category      string   `db:"category"`
	Subcategories []string `db:"subcategories"`
	Brand         string   `db:"brand"`
	Colors        []string `db:"colors"`
	Sizes         []string `db:"sizes"`
	Material      string   `db:"material"`
	Price         float64  `db:"price"`
}

var FacetRowColumns = []string{
	"category", "subcategories", "brand", "colors", "sizes", "material", "price",
}

// ═══════════════════════════════════════════════════════════
// Admin request models
// ═══════════════════════════════════════════════════════════

// request models rely on the custom binding tags
func init() {
	utils.RegisterValidators()
}

// CreateProductForm is the multipart body of POST /api/admin/products/create
type CreateProductForm struct {
	Name           string   `form:"name" binding:"required,notblank"`
	Description    string   `form:"description" binding:"required,notblank"`
	Price          float64  `form:"price" binding:"required,gt=0"`
	CompareAtPrice *float64 `form:"compare_at_price" binding:"omitempty,gt=0"`
	Category       string   `form:"category" binding:"required,notblank"`
	Brand          string   `form:"brand" binding:"required,notblank"`
	StockQuantity  *int     `form:"stock_quantity" binding:"required,min=0"`
	Material       string   `form:"material"`
	Subcategories  []string `form:"subcategories"`
	Colors         []string `form:"colors"`
	Sizes          []string `form:"sizes"`
	Collections    []string `form:"collections"`
	IsActive       *bool    `form:"is_active"`
}

type UpdateProductRequest struct {
	Name           *string   `json:"name" binding:"omitempty,min=1"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price" binding:"omitempty,gt=0"`
	CompareAtPrice *float64  `json:"compare_at_price" binding:"omitempty,gte=0"`
	Category       *string   `json:"category" binding:"omitempty,min=1"`
	Brand          *string   `json:"brand"`
	StockQuantity  *int      `json:"stock_quantity" binding:"omitempty,min=0"`
	Material       *string   `json:"material"`
	Subcategories  *[]string `json:"subcategories"`
	Colors         *[]string `json:"colors"`
	Sizes          *[]string `json:"sizes"`
	Collections    *[]string `json:"collections"`
	ImageURLs      *[]string `json:"image_urls"`
	IsActive       *bool     `json:"is_active"`
}

// Updates turns the non-nil fields into a GORM column map
func (r UpdateProductRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Price != nil {
		u["price"] = *r.Price
	}
	if r.CompareAtPrice != nil {
		// 0 clears the sale price
		if *r.CompareAtPrice == 0 {
			u["compare_at_price"] = nil
		} else {
			u["compare_at_price"] = *r.CompareAtPrice
		}
	}
	if r.Category != nil {
		u["category"] = *r.Category
	}
	if r.Brand != nil {
		u["brand"] = *r.Brand
	}
	if r.StockQuantity != nil {
		u["stock_quantity"] = *r.StockQuantity
	}
	if r.Material != nil {
		u["material"] = *r.Material
	}
	if r.Subcategories != nil {
		u["subcategories"] = pq.StringArray(*r.Subcategories)
	}
	if r.Colors != nil {
		u["colors"] = pq.StringArray(*r.Colors)
	}
	if r.Sizes != nil {
		u["sizes"] = pq.StringArray(*r.Sizes)
	}
	if r.Collections != nil {
		u["collections"] = pq.StringArray(*r.Collections)
	}
	if r.ImageURLs != nil {
		u["image_urls"] = pq.StringArray(*r.ImageURLs)
		thumb := ""
		if len(*r.ImageURLs) > 0 {
			thumb = (*r.ImageURLs)[0]
		}
		u["thumbnail_url"] = thumb
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}

type BulkIDsRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1,max=200"`
}

type BulkEditRequest struct {
	IDs     []uuid.UUID          `json:"ids" binding:"required,min=1,max=200"`
	Changes UpdateProductRequest `json:"changes"`
}

type BulkResult struct {
	Affected int64    `json:"affected"`
	IDs      []string `json:"ids,omitempty"`
}

// ProductDetail is the storefront product page payload
type ProductDetail struct {
	Product
	ReviewCount   int64   `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}
