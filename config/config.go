package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string

	// Pricing knobs for cart preview and checkout. The same threshold rule
	// applies on both paths: shipping is free only when the subtotal is
	// strictly greater than FreeShippingThreshold.
	TaxRate               float64
	FreeShippingThreshold float64
	FlatShippingFee       float64

	// Optional fulfillment queue. Publishing is disabled when RabbitMQURL
	// is empty.
	RabbitMQURL   string
	RabbitMQQueue string
}

func Load() *Config {
	return &Config{
		Port:                  getEnv("PORT", "8080"),
		DatabaseURL:           databaseURL(),
		TaxRate:               getEnvAsFloat("TAX_RATE", 0.10),
		FreeShippingThreshold: getEnvAsFloat("FREE_SHIPPING_THRESHOLD", 50),
		FlatShippingFee:       getEnvAsFloat("FLAT_SHIPPING_FEE", 10),
		RabbitMQURL:           getEnv("RABBITMQ_URL", ""),
		RabbitMQQueue:         getEnv("RABBITMQ_QUEUE", "fulfillment_orders"),
	}
}

// databaseURL prefers DATABASE_URL and falls back to the individual DB_* vars.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_NAME", "shopez"),
		getEnv("DB_PORT", "5432"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
