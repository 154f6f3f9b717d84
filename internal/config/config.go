package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Config holds the client configuration.
type Config struct {
	// APIBaseURL is the base URL of the wallet backend.
	APIBaseURL string
	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration
	// MinPaymentAmount is the smallest amount a payment QR may request.
	// Amounts below it are rejected before any network call.
	MinPaymentAmount decimal.Decimal
	// DefaultQRExpiryMinutes is used when the caller does not pick an expiry.
	DefaultQRExpiryMinutes int
	// Currency is the wallet currency code.
	Currency string
	// CurrencyExponent is the number of minor-unit decimals. Whole-franc
	// currencies use 0.
	CurrencyExponent int32
	// MinPhoneDigits is the minimum number of digits before a phone search
	// is allowed.
	MinPhoneDigits int
}

// Defaults for the transit wallet deployment.
const (
	DefaultRequestTimeout   = 30 * time.Second
	DefaultQRExpiry         = 15
	DefaultCurrency         = "GNF"
	DefaultCurrencyExponent = 0
	DefaultMinPhoneDigits   = 8
)

// DefaultMinPaymentAmount is the platform-wide fare floor.
var DefaultMinPaymentAmount = decimal.NewFromInt(1000)

// Load builds a Config from the environment, falling back to defaults. A
// .env file in the working directory is merged in first.
func Load() Config {
	LoadEnv()

	timeout, err := time.ParseDuration(GetEnv("API_REQUEST_TIMEOUT", "30s"))
	if err != nil {
		timeout = DefaultRequestTimeout
	}

	minAmount := DefaultMinPaymentAmount
	if raw := GetEnv("MIN_PAYMENT_AMOUNT", ""); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			minAmount = d
		}
	}

	return Config{
		APIBaseURL:             GetEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
		RequestTimeout:         timeout,
		MinPaymentAmount:       minAmount,
		DefaultQRExpiryMinutes: GetIntEnv("QR_EXPIRY_MINUTES", DefaultQRExpiry),
		Currency:               GetEnv("WALLET_CURRENCY", DefaultCurrency),
		CurrencyExponent:       int32(GetIntEnv("CURRENCY_EXPONENT", DefaultCurrencyExponent)),
		MinPhoneDigits:         GetIntEnv("MIN_PHONE_DIGITS", DefaultMinPhoneDigits),
	}
}
