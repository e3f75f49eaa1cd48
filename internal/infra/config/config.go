package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Review    ReviewConfig    `yaml:"review"`
	Trending  TrendingConfig  `yaml:"trending"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// KnowledgeConfig locates the FAQ corpus file.
type KnowledgeConfig struct {
	Path string `yaml:"path"`
}

// RetrievalConfig tunes the TF-IDF matcher.
type RetrievalConfig struct {
	SimilarityThreshold float64 `yaml:"similarityThreshold"`
	RemoveStopwords     bool    `yaml:"removeStopwords"`
	MaxSuggestions      int     `yaml:"maxSuggestions"`
	FallbackAnswer      string  `yaml:"fallbackAnswer"`
}

// SentimentConfig selects the classifier backend.
type SentimentConfig struct {
	// Backend is "lexicon" (offline default) or "remote".
	Backend   string `yaml:"backend"`
	RemoteURL string `yaml:"remoteUrl"`
}

// ReviewConfig holds the goodwill policy knobs.
type ReviewConfig struct {
	PositiveThreshold  float64 `yaml:"positiveThreshold"`
	NegativeThreshold  float64 `yaml:"negativeThreshold"`
	RefundPercent      float64 `yaml:"refundPercent"`
	CouponValidityDays int     `yaml:"couponValidityDays"`
	CouponPercentOff   int     `yaml:"couponPercentOff"`
}

// TrendingConfig controls the question popularity store.
type TrendingConfig struct {
	TopRecommendations int          `yaml:"topRecommendations"`
	Valkey             ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the shared store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from an optional .env file, a YAML file and
// environment variables, in that order of increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("KNOWLEDGE_PATH"); v != "" {
		cfg.Knowledge.Path = v
	}
	if v := os.Getenv("RETRIEVAL_SIMILARITY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Retrieval.SimilarityThreshold = parsed
		}
	}
	if v := os.Getenv("RETRIEVAL_REMOVE_STOPWORDS"); v != "" {
		cfg.Retrieval.RemoveStopwords = isTruthy(v)
	}
	if v := os.Getenv("RETRIEVAL_MAX_SUGGESTIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Retrieval.MaxSuggestions = parsed
		}
	}
	if v := os.Getenv("RETRIEVAL_FALLBACK_ANSWER"); v != "" {
		cfg.Retrieval.FallbackAnswer = v
	}
	if v := os.Getenv("SENTIMENT_BACKEND"); v != "" {
		cfg.Sentiment.Backend = v
	}
	if v := os.Getenv("SENTIMENT_REMOTE_URL"); v != "" {
		cfg.Sentiment.RemoteURL = v
	}
	if v := os.Getenv("REVIEW_POSITIVE_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Review.PositiveThreshold = parsed
		}
	}
	if v := os.Getenv("REVIEW_NEGATIVE_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Review.NegativeThreshold = parsed
		}
	}
	if v := os.Getenv("REVIEW_REFUND_PERCENT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Review.RefundPercent = parsed
		}
	}
	if v := os.Getenv("TRENDING_TOP_RECOMMENDATIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Trending.TopRecommendations = parsed
		}
	}
	if v := os.Getenv("TRENDING_VALKEY_ENABLED"); v != "" {
		cfg.Trending.Valkey.Enabled = isTruthy(v)
	}
	if v := os.Getenv("TRENDING_VALKEY_ADDR"); v != "" {
		cfg.Trending.Valkey.Addr = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Knowledge: KnowledgeConfig{
			Path: "data/hotel_faq.json",
		},
		Retrieval: RetrievalConfig{
			SimilarityThreshold: 0.2,
			RemoveStopwords:     true,
			MaxSuggestions:      3,
		},
		Sentiment: SentimentConfig{
			Backend: "lexicon",
		},
		Review: ReviewConfig{
			PositiveThreshold:  0.70,
			NegativeThreshold:  0.30,
			RefundPercent:      15,
			CouponValidityDays: 30,
			CouponPercentOff:   100,
		},
		Trending: TrendingConfig{
			TopRecommendations: 10,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Knowledge.Path) == "" {
		return errors.New("knowledge.path cannot be empty")
	}
	if c.Retrieval.SimilarityThreshold < 0 || c.Retrieval.SimilarityThreshold > 1 {
		return errors.New("retrieval.similarityThreshold must be within [0, 1]")
	}
	if c.Retrieval.MaxSuggestions < 0 {
		return errors.New("retrieval.maxSuggestions cannot be negative")
	}
	switch c.Sentiment.Backend {
	case "lexicon":
	case "remote":
		if strings.TrimSpace(c.Sentiment.RemoteURL) == "" {
			return errors.New("sentiment.remoteUrl cannot be empty when backend is remote")
		}
	default:
		return fmt.Errorf("sentiment.backend %q is not supported", c.Sentiment.Backend)
	}
	if c.Review.PositiveThreshold < 0 || c.Review.PositiveThreshold > 1 {
		return errors.New("review.positiveThreshold must be within [0, 1]")
	}
	if c.Review.NegativeThreshold < 0 || c.Review.NegativeThreshold > 1 {
		return errors.New("review.negativeThreshold must be within [0, 1]")
	}
	if c.Review.RefundPercent <= 0 || c.Review.RefundPercent > 100 {
		return errors.New("review.refundPercent must be within (0, 100]")
	}
	if c.Review.CouponValidityDays <= 0 {
		return errors.New("review.couponValidityDays must be positive")
	}
	if c.Trending.TopRecommendations < 0 {
		return errors.New("trending.topRecommendations cannot be negative")
	}
	if c.Trending.Valkey.Enabled && strings.TrimSpace(c.Trending.Valkey.Addr) == "" {
		return errors.New("trending.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
