package config

import (
	"log"
	"os"
	"strconv"
)

// Config groups everything the server reads from the environment.
type Config struct {
	Port         string
	DatabasePath string
	Env          string
	Company      CompanyConfig
}

// CompanyConfig holds the lines printed at the top of generated invoices.
type CompanyConfig struct {
	Name    string
	Address string
	Phone   string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by the caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabasePath = getEnv("DATABASE_PATH", "factures.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.Company.Name = getEnv("COMPANY_NAME", "Entreprise XYZ")
	cfg.Company.Address = getEnv("COMPANY_ADDRESS", "Adresse : 123 Rue de l'Exemple, Ville")
	cfg.Company.Phone = getEnv("COMPANY_PHONE", "Téléphone : +225 123 456 789")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
