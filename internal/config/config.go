package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by OOTD_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("OOTD_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

// VisionProvider returns the configured attribute-classification provider.
// Valid values: openai, mock. Defaults to "openai".
func VisionProvider() string {
	p := os.Getenv("VISION_PROVIDER")
	if p == "" {
		return "openai"
	}
	return p
}

// RerankProvider returns the configured re-ranking provider.
// Valid values: openai, anthropic, mock, off. Defaults to "off" —
// re-ranking is an optional enrichment, never a dependency.
func RerankProvider() string {
	p := os.Getenv("RERANK_PROVIDER")
	if p == "" {
		return "off"
	}
	return p
}

// RerankAPIKey returns the API key for the configured re-rank provider.
func RerankAPIKey() string {
	switch RerankProvider() {
	case "anthropic":
		return AnthropicAPIKey()
	case "openai":
		return OpenAIAPIKey()
	default:
		return ""
	}
}

// WeatherProvider returns the configured weather provider.
// Valid values: openmeteo, mock, off. Defaults to "openmeteo".
func WeatherProvider() string {
	p := os.Getenv("WEATHER_PROVIDER")
	if p == "" {
		return "openmeteo"
	}
	return p
}

// RecommendTopK returns how many garments per slot survive the pre-filter
// before combinations are generated. Defaults to 3.
func RecommendTopK() int {
	k, err := strconv.Atoi(os.Getenv("RECOMMEND_TOP_K"))
	if err != nil || k <= 0 {
		return 3
	}
	return k
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
