package config

import (
	"os"
	"strconv"
	"time"
)

// Backend selectors. Memory is always the default so the binary runs
// with zero external services.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	ActivityBackendMemory = "memory"
	ActivityBackendSQLite = "sqlite"

	ClassifierRules  = "rules"
	ClassifierOpenAI = "openai"
)

type Config struct {
	Port string

	LogFormat string // "json" or "text"
	LogLevel  string

	SessionBackend string // "memory" or "redis"
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	SessionTTL     time.Duration

	ActivityBackend string // "memory" or "sqlite"
	ActivityDBPath  string

	ChatLogDir string // "" disables the file chat log

	ClassifierBackend string // "rules" or "openai"
	OpenAIModel       string
	OpenAIAPIKey      string

	// BankFile optionally overrides the built-in response bank (YAML).
	BankFile string

	// Escalation policy knobs. Defaults match observed behavior.
	FollowUpProbability float64
	ReferralProbability float64
	ReferralMinMessages int
	ReferralMaxMessages int
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getFloatEnv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Load reads all env vars and builds the config.
func Load() *Config {
	return &Config{
		Port: getEnv("CALMBOT_PORT", "8080"),

		LogFormat: getEnv("CALMBOT_LOG_FORMAT", "json"),
		LogLevel:  getEnv("CALMBOT_LOG_LEVEL", "info"),

		SessionBackend: getEnv("CALMBOT_SESSION_BACKEND", SessionBackendMemory),
		RedisAddr:      getEnv("CALMBOT_REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("CALMBOT_REDIS_PASSWORD", ""),
		RedisDB:        getIntEnv("CALMBOT_REDIS_DB", 0),
		SessionTTL:     getDurationEnv("CALMBOT_SESSION_TTL", 24*time.Hour),

		ActivityBackend: getEnv("CALMBOT_ACTIVITY_BACKEND", ActivityBackendSQLite),
		ActivityDBPath:  getEnv("CALMBOT_ACTIVITY_DB", "data/calmbot.db"),

		ChatLogDir: getEnv("CALMBOT_CHAT_LOG_DIR", "logs"),

		ClassifierBackend: getEnv("CALMBOT_CLASSIFIER", ClassifierRules),
		OpenAIModel:       getEnv("CALMBOT_OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),

		BankFile: getEnv("CALMBOT_BANK_FILE", ""),

		FollowUpProbability: getFloatEnv("CALMBOT_FOLLOWUP_PROBABILITY", 0.5),
		ReferralProbability: getFloatEnv("CALMBOT_REFERRAL_PROBABILITY", 0.3),
		ReferralMinMessages: getIntEnv("CALMBOT_REFERRAL_MIN_MESSAGES", 6),
		ReferralMaxMessages: getIntEnv("CALMBOT_REFERRAL_MAX_MESSAGES", 8),
	}
}
