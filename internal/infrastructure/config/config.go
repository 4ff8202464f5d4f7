package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type PolicyConfig struct {
	MinLoanAmount     float64
	MaxLoanAmount     float64
	MinRatePct        float64
	MaxRatePct        float64
	ProcessingFeeBase float64
	GSTRate           float64
}

type BrandingConfig struct {
	LogoURL      string
	FetchTimeout time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether a broker list was configured. Without brokers the
// service falls back to logging events instead of publishing them.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type Config struct {
	HTTPPort    int
	Policy      PolicyConfig
	Branding    BrandingConfig
	Kafka       KafkaConfig
	SMTP        SMTPConfig
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
}

func Load() Config {
	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8090),
		Policy: PolicyConfig{
			MinLoanAmount:     getEnvFloat("POLICY_MIN_LOAN_AMOUNT", 50000),
			MaxLoanAmount:     getEnvFloat("POLICY_MAX_LOAN_AMOUNT", 5000000),
			MinRatePct:        getEnvFloat("POLICY_MIN_RATE_PCT", 5.0),
			MaxRatePct:        getEnvFloat("POLICY_MAX_RATE_PCT", 25.0),
			ProcessingFeeBase: getEnvFloat("POLICY_PROCESSING_FEE_BASE", 1499),
			GSTRate:           getEnvFloat("POLICY_GST_RATE", 0.18),
		},
		Branding: BrandingConfig{
			LogoURL:      getEnv("BRAND_LOGO_URL", ""),
			FetchTimeout: getEnvDuration("BRAND_LOGO_FETCH_TIMEOUT", 5*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "sanction.events"),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		Environment: getEnv("ENVIRONMENT", "development"),
		ServiceName: "sanction-service",
	}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
