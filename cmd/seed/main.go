package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/config"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/models"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/services"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/store"
	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// main migrates the schema, marks a user as admin and seeds a demo catalog
// when the products table is empty.
// Usage: go run ./cmd/seed
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("STREVO STORE - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	config.InitLogger(cfg.Server.Env)

	if err := config.InitDB(cfg.Database, cfg.IsProduction()); err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	defer config.CloseDB()

	if err := config.Gorm.AutoMigrate(
		&models.Profile{},
		&models.Product{},
		&models.Discount{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	fmt.Println("✓ Schema migrated")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, email, name := getAdminDetails()
	profile := models.Profile{ID: userID, Email: email, FullName: name, IsAdmin: true}
	if err := store.NewProfileStore(config.Gorm).Upsert(ctx, &profile); err != nil {
		log.Fatal().Err(err).Msg("failed to save admin profile")
	}
	fmt.Printf("✓ %s is an admin\n", email)

	var count int64
	if err := config.Gorm.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to count products")
	}
	if count == 0 {
		catalog := store.NewCatalogStore(config.Gorm)
		demo := demoCatalog()
		for _, p := range demo {
			if err := catalog.Create(ctx, &p); err != nil {
				log.Fatal().Err(err).Str("product", p.Name).Msg("failed to seed product")
			}
		}
		fmt.Printf("✓ Seeded %d demo products\n", len(demo))
	} else {
		fmt.Printf("• Catalog already has %d products, skipping demo data\n", count)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Done")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Admin ID: %s\n", profile.ID)

	if cfg.Auth.JWTSecret != "" {
		jwtService, err := services.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create JWT service")
		}
		token, err := jwtService.Generate(profile.ID, profile.Email, profile.FullName, 24*time.Hour)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to sign token")
		}
		fmt.Println()
		fmt.Println("Admin token (valid 24h):")
		fmt.Println(token)
		fmt.Println()
		fmt.Println("Use it as 'Authorization: Bearer <token>' on /api/admin routes")
	}
}

// getAdminDetails prompts for the admin; the id is the auth provider's user id
func getAdminDetails() (uuid.UUID, string, string) {
	fmt.Println("Enter Admin Details:")
	fmt.Println()

	var email, name, rawID string
	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		email = strings.TrimSpace(email)
		if strings.Contains(email, "@") {
			break
		}
		fmt.Println("❌ Enter a valid email")
	}

	fmt.Print("Name: ")
	fmt.Scanln(&name)

	fmt.Print("Auth user ID (blank to generate): ")
	fmt.Scanln(&rawID)
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return uuid.Must(uuid.NewV7()), email, strings.TrimSpace(name)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		fmt.Println("❌ Auth user ID must be a UUID")
		os.Exit(1)
	}
	return id, email, strings.TrimSpace(name)
}

func price(v float64) *float64 { return &v }

func demoCatalog() []models.Product {
	mk := func(name, category, brand, material string, p float64, compareAt *float64, stock int, subs, colors, sizes, collections []string) models.Product {
		return models.Product{
			Name:           name,
			Slug:           utils.Slugify(name),
			Description:    name + " from the " + brand + " range.",
			Category:       category,
			Subcategories:  pq.StringArray(subs),
			Brand:          brand,
			Colors:         pq.StringArray(colors),
			Sizes:          pq.StringArray(sizes),
			Material:       material,
			Collections:    pq.StringArray(collections),
			Price:          p,
			CompareAtPrice: compareAt,
			StockQuantity:  stock,
			IsActive:       true,
		}
	}
	return []models.Product{
		mk("Oversized Cotton Tee", "men", "Strevo", "cotton", 599, nil, 40,
			[]string{"t-shirts"}, []string{"black", "white"}, []string{"S", "M", "L", "XL"}, []string{"essentials"}),
		mk("Relaxed Linen Shirt", "men", "Strevo", "linen", 1299, price(1799), 18,
			[]string{"shirts"}, []string{"beige", "olive"}, []string{"M", "L", "XL"}, []string{"summer"}),
		mk("Tapered Cargo Pants", "men", "Northline", "cotton", 1899, nil, 12,
			[]string{"pants"}, []string{"olive", "black"}, []string{"30", "32", "34"}, nil),
		mk("Washed Denim Jacket", "men", "Northline", "denim", 2999, price(3499), 6,
			[]string{"jackets"}, []string{"blue"}, []string{"M", "L"}, []string{"winter"}),
		mk("Ribbed Crop Top", "women", "Strevo", "cotton", 499, nil, 35,
			[]string{"tops"}, []string{"white", "pink"}, []string{"XS", "S", "M"}, []string{"essentials"}),
		mk("Pleated Midi Skirt", "women", "Aurel", "polyester", 1499, price(1999), 14,
			[]string{"skirts"}, []string{"black", "green"}, []string{"S", "M", "L"}, []string{"summer"}),
		mk("Wide Leg Trousers", "women", "Aurel", "viscose", 1699, nil, 0,
			[]string{"pants"}, []string{"beige"}, []string{"S", "M", "L"}, nil),
		mk("Canvas Low Sneakers", "footwear", "Stride", "canvas", 2199, nil, 22,
			[]string{"sneakers"}, []string{"white", "black"}, []string{"7", "8", "9", "10"}, []string{"essentials"}),
	}
}
