package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"shipsched/internal/utils"
)

// Env is the process configuration, read once at startup and passed down
// explicitly to every component.
type Env struct {
	AppAddr      string
	GinMode      string
	LogLevel     string
	LogFormat    string
	CORSOrigins  []string
	JWTSecret    string
	ExposeTraces bool

	LLMProvider    string
	OpenAIKey      string
	OpenAIBase     string
	OpenAIVersion  string
	OpenAIModel    string
	LLMTemperature float64
	LLMTimeout     time.Duration
	OllamaURL      string
	OllamaModel    string

	MySQL MySQLConfig
	Redis RedisConfig

	RegionCacheTTL time.Duration
	MaerskAPIKey   string
	MaerskBaseURL  string

	AuditLogPath    string
	FeedbackLogPath string
	DownloadDir     string

	FetchTimeout        time.Duration
	PageTimeout         time.Duration
	AnchorWaitTimeout   time.Duration
	AnchorPollInterval  time.Duration
	CandidateCharBudget int
	CarrierConcurrency  int
	EnabledCarriers     []string
	CoscoLookbackDays   int
}

type MySQLConfig struct {
	Host     string
	User     string
	Password string
	Database string
}

// Enabled is false when no host is configured; fares are then left empty.
func (c MySQLConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Address) != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("EXPOSE_TRACES", true)

	v.SetDefault("LLM_PROVIDER", "azure")
	v.SetDefault("OPENAI_MODEL", "gpt-4o")
	v.SetDefault("LLM_TEMPERATURE", 0.0)
	v.SetDefault("LLM_TIMEOUT", "120s")
	v.SetDefault("OLLAMA_URL", "http://localhost:11434")
	v.SetDefault("OLLAMA_MODEL", "llama3.2")

	v.SetDefault("MYSQL_DATABASE", "corporaiters")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REGION_CACHE_TTL", "24h")
	v.SetDefault("MAERSK_BASE_URL", "https://api.maersk.com")

	v.SetDefault("AUDIT_LOG_PATH", "gpt_feedback_log.csv")
	v.SetDefault("FEEDBACK_LOG_PATH", "feedback_log.csv")
	v.SetDefault("DOWNLOAD_DIR", "")

	v.SetDefault("FETCH_TIMEOUT", "60s")
	v.SetDefault("PAGE_TIMEOUT", "60s")
	v.SetDefault("ANCHOR_WAIT_TIMEOUT", "10s")
	v.SetDefault("ANCHOR_POLL_INTERVAL", "1s")
	v.SetDefault("CANDIDATE_CHAR_BUDGET", 4096)
	v.SetDefault("CARRIER_CONCURRENCY", 1)
	v.SetDefault("ENABLED_CARRIERS", "ONE,COSCO,KINKA,Shipmentlink,Maersk")
	v.SetDefault("COSCO_LOOKBACK_DAYS", 3)
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) Env {
	concurrency := v.GetInt("CARRIER_CONCURRENCY")
	if concurrency < 1 {
		concurrency = 1
	}
	budget := v.GetInt("CANDIDATE_CHAR_BUDGET")
	if budget <= 0 {
		budget = 4096
	}

	return Env{
		AppAddr:      strings.TrimSpace(v.GetString("APP_ADDR")),
		GinMode:      strings.TrimSpace(v.GetString("GIN_MODE")),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		CORSOrigins:  utils.SplitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		JWTSecret:    strings.TrimSpace(v.GetString("API_JWT_SECRET")),
		ExposeTraces: v.GetBool("EXPOSE_TRACES"),

		LLMProvider:    strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
		OpenAIKey:      strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		OpenAIBase:     strings.TrimSpace(v.GetString("OPENAI_API_BASE")),
		OpenAIVersion:  strings.TrimSpace(v.GetString("OPENAI_API_VERSION")),
		OpenAIModel:    strings.TrimSpace(v.GetString("OPENAI_MODEL")),
		LLMTemperature: v.GetFloat64("LLM_TEMPERATURE"),
		LLMTimeout:     v.GetDuration("LLM_TIMEOUT"),
		OllamaURL:      strings.TrimSpace(v.GetString("OLLAMA_URL")),
		OllamaModel:    strings.TrimSpace(v.GetString("OLLAMA_MODEL")),

		MySQL: MySQLConfig{
			Host:     strings.TrimSpace(v.GetString("MYSQL_HOST")),
			User:     strings.TrimSpace(v.GetString("MYSQL_USER")),
			Password: v.GetString("MYSQL_PASSWORD"),
			Database: strings.TrimSpace(v.GetString("MYSQL_DATABASE")),
		},
		Redis: RedisConfig{
			Address:  strings.TrimSpace(v.GetString("REDIS_ADDR")),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},

		RegionCacheTTL: v.GetDuration("REGION_CACHE_TTL"),
		MaerskAPIKey:   strings.TrimSpace(v.GetString("MAERSK_API_KEY")),
		MaerskBaseURL:  strings.TrimRight(strings.TrimSpace(v.GetString("MAERSK_BASE_URL")), "/"),

		AuditLogPath:    v.GetString("AUDIT_LOG_PATH"),
		FeedbackLogPath: v.GetString("FEEDBACK_LOG_PATH"),
		DownloadDir:     v.GetString("DOWNLOAD_DIR"),

		FetchTimeout:        v.GetDuration("FETCH_TIMEOUT"),
		PageTimeout:         v.GetDuration("PAGE_TIMEOUT"),
		AnchorWaitTimeout:   v.GetDuration("ANCHOR_WAIT_TIMEOUT"),
		AnchorPollInterval:  v.GetDuration("ANCHOR_POLL_INTERVAL"),
		CandidateCharBudget: budget,
		CarrierConcurrency:  concurrency,
		EnabledCarriers:     utils.SplitList(v.GetString("ENABLED_CARRIERS")),
		CoscoLookbackDays:   v.GetInt("COSCO_LOOKBACK_DAYS"),
	}
}
