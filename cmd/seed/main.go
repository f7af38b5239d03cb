package main

import (
	"database/sql"
	"os"

	"github.com/sardorbek/bozor/pkg/auth"
	"github.com/sardorbek/bozor/pkg/database"
	"github.com/sardorbek/bozor/pkg/logger"
)

type seedProduct struct {
	name        string
	brand       string
	category    string
	gender      string
	description string
	imageURL    string
	oldPrice    float64
	newPrice    float64
	quantity    int
	featured    bool
}

var products = []seedProduct{
	{"Air Runner 90", "Nike", "sneakers", "men", "Lightweight mesh runner with a cushioned midsole.", "/images/air-runner-90.jpg", 145000, 129000, 40, true},
	{"Classic Court", "Adidas", "sneakers", "women", "Leather court shoe with a rubber cupsole.", "/images/classic-court.jpg", 0, 95000, 55, true},
	{"Trail Flex GTX", "Salomon", "boots", "men", "Waterproof trail boot with an aggressive outsole.", "/images/trail-flex-gtx.jpg", 210000, 189000, 18, false},
	{"City Loafer", "Clarks", "loafers", "women", "Soft suede loafer for everyday wear.", "/images/city-loafer.jpg", 0, 78000, 32, false},
	{"Street Canvas Low", "Converse", "sneakers", "unisex", "Canvas low-top in the original silhouette.", "/images/street-canvas-low.jpg", 69000, 59000, 80, true},
	{"Winter Guard", "Columbia", "boots", "women", "Insulated winter boot rated to -20C.", "/images/winter-guard.jpg", 240000, 199000, 12, false},
	{"Marathon Elite", "Asics", "sneakers", "men", "Race-day shoe with a carbon plate.", "/images/marathon-elite.jpg", 0, 310000, 9, true},
	{"Office Derby", "Ecco", "formal", "men", "Full-grain leather derby with a flexible sole.", "/images/office-derby.jpg", 165000, 149000, 25, false},
	{"Summer Slide", "Puma", "sandals", "unisex", "One-piece slide with a contoured footbed.", "/images/summer-slide.jpg", 0, 35000, 120, false},
	{"Kids Sprint", "Nike", "sneakers", "kids", "Hook-and-loop runner sized for small feet.", "/images/kids-sprint.jpg", 55000, 45000, 60, false},
}

func main() {
	logger.Init("storefront-seed", true)

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "bozordb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := seedProducts(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed products")
	}

	if err := seedAdmin(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed admin user")
	}

	logger.Logger.Info().Msg("Seed complete")
}

func seedProducts(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM products WHERE deleted_at IS NULL").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Logger.Info().Int("existing", count).Msg("Products already present, skipping")
		return nil
	}

	stmt, err := db.Prepare(`
		INSERT INTO products (name, brand, category, gender, description, image_url, old_price, new_price, quantity, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.Exec(p.name, p.brand, p.category, p.gender, p.description, p.imageURL, p.oldPrice, p.newPrice, p.quantity, p.featured); err != nil {
			return err
		}
	}

	logger.Logger.Info().Int("count", len(products)).Msg("Products seeded")
	return nil
}

func seedAdmin(db *sql.DB) error {
	username := getEnv("ADMIN_USERNAME", "admin")

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE username = $1", username).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		logger.Logger.Info().Str("username", username).Msg("Admin user already present, skipping")
		return nil
	}

	hash, err := auth.HashPassword(getEnv("ADMIN_PASSWORD", "admin123"))
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO users (username, email, password, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, 'admin', true, NOW(), NOW())`,
		username, getEnv("ADMIN_EMAIL", "admin@bozor.local"), hash)
	if err != nil {
		return err
	}

	logger.Logger.Info().Str("username", username).Msg("Admin user seeded")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
