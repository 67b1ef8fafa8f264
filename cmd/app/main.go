package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/nextsocial/shop-backend/internal/cart"
	"github.com/nextsocial/shop-backend/internal/config"
	"github.com/nextsocial/shop-backend/internal/dataset"
	"github.com/nextsocial/shop-backend/internal/order"
	"github.com/nextsocial/shop-backend/internal/product"
	"github.com/nextsocial/shop-backend/internal/recommend"
	"github.com/nextsocial/shop-backend/internal/review"
	"github.com/nextsocial/shop-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	userHandler := user.NewHandler(user.NewService(user.NewPostgresRepository(db)))
	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)
	reviewHandler := review.NewHandler(review.NewService(review.NewPostgresRepository(db)))
	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(db)))
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db)))
	recommendHandler := recommend.NewHandler(recommend.NewService(
		recommend.NewPostgresStore(db),
		cfg.ReviewsFile,
		cfg.MetadataFile,
		cfg.ModelPath,
	))

	// mirror the metadata catalog into the products table so the read API and
	// the recommender enrichment agree on titles and prices
	if metaRecords, err := dataset.Load(cfg.MetadataFile); err != nil {
		log.Printf("metadata catalog load: %v", err)
	} else if n, err := productService.SyncFromMetadata(metaRecords); err != nil {
		log.Printf("metadata catalog sync: %v", err)
	} else if n > 0 {
		log.Printf("metadata catalog synced: %d products", n)
	}

	// public surface
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	recommendHandler.RegisterPublicRoutes(app)

	// everything registered after this point requires a valid token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	log.Fatal(app.Listen(cfg.Addr))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s %v", c.Method(), c.OriginalURL(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			reviewer_name TEXT,
			age INT,
			gender TEXT,
			address TEXT,
			liked_products TEXT[] NOT NULL DEFAULT '{}',
			cart jsonb NOT NULL DEFAULT '{}',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			review_id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			asin TEXT NOT NULL,
			overall DOUBLE PRECISION NOT NULL,
			summary TEXT,
			review_text TEXT,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			cart jsonb NOT NULL DEFAULT '{}',
			quantity INT NOT NULL DEFAULT 0,
			total_price numeric NOT NULL DEFAULT 0,
			status TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			asin TEXT PRIMARY KEY,
			parent_asin TEXT,
			title TEXT,
			price DOUBLE PRECISION,
			main_category TEXT,
			average_rating DOUBLE PRECISION,
			images jsonb,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_asin ON reviews (asin)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders (user_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
