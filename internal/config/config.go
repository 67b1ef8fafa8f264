package config

import "os"

// Config carries the environment-driven settings the app needs at startup.
// Values come from the process environment (a .env file is loaded in main).
type Config struct {
	Addr         string
	DatabaseURL  string
	JWTSecret    string
	ReviewsFile  string
	MetadataFile string
	ModelPath    string
}

func Load() Config {
	return Config{
		Addr:         getenv("SHOP_ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ReviewsFile:  getenv("REVIEWS_FILE", "data/absa_reviews.json"),
		MetadataFile: getenv("METADATA_FILE", "data/metadata.jsonl"),
		ModelPath:    getenv("MODEL_PATH", "models/hybrid_model.pkl"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
