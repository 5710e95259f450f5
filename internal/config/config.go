package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderLocal     = "local"
)

type Config struct {
	// HTTP server
	Port        string
	CORSOrigins []string

	// Model provider
	LLMProvider     string
	LLMBaseURL      string
	LLMModel        string
	LLMTimeout      time.Duration
	AnthropicAPIKey string

	// AMQP budget alerts (optional)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Rate limiting
	RateLimitPerMinute int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		LLMProvider:     getEnv("LLM_PROVIDER", ProviderLocal),
		LLMBaseURL:      getEnv("LLM_BASE_URL", "http://localhost:11434"),
		LLMModel:        getEnv("LLM_MODEL", ""),
		LLMTimeout:      getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "ledgerchat"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "budget_alerts"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate model provider
	switch c.LLMProvider {
	case ProviderAnthropic, ProviderLocal:
	default:
		errors = append(errors, fmt.Sprintf("invalid LLM provider '%s': must be one of [%s %s]",
			c.LLMProvider, ProviderAnthropic, ProviderLocal))
	}

	if c.LLMProvider == ProviderLocal {
		if c.LLMBaseURL == "" {
			errors = append(errors, "LLM base URL cannot be empty when using the local provider")
		} else if parsed, err := url.Parse(c.LLMBaseURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid LLM base URL '%s': %v", c.LLMBaseURL, err))
		} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid LLM base URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
		}
		if c.LLMModel == "" {
			errors = append(errors, "LLM model name is required when using the local provider")
		}
	}

	if c.LLMTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid LLM timeout %v: must be at least 1 second", c.LLMTimeout))
	} else if c.LLMTimeout > 10*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid LLM timeout %v: must be at most 10 minutes", c.LLMTimeout))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.RateLimitPerMinute < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.RateLimitPerMinute))
	} else if c.RateLimitPerMinute > 10000 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at most 10000", c.RateLimitPerMinute))
	}

	if len(c.CORSOrigins) == 0 {
		errors = append(errors, "CORS origins cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
