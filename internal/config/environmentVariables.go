package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//session policy
	//a new upload starts a new conversation - answers about a replaced
	//document would be misleading
	ClearTranscriptOnUpload = true

	//spreadsheets: first sheet only by default
	ScanAllSheets = false

	//upload handling
	MaxUploadSizeBytes  = 32 << 20 //32mb
	PDFPageTimeout      = 10 * time.Second
	ContentPreviewChars = 2000

	//prompt building - document context is prefix-truncated beyond this
	MaxPromptContextChars = 24000

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 120 * time.Second //ask is a blocking upstream round trip
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//llm
	UpstreamCallTimeout = 60 * time.Second
	LLMProviderOpenAI   = "openai"
	LLMProviderGemini   = "gemini"

	//the openai provider also speaks to Ollama's OpenAI-compatible endpoint
	DefaultLLMBaseURL = "http://127.0.0.1:11434/v1"
	DefaultLLMModel   = "llama2"
	GeminiModelName   = "gemini-2.5-flash-lite-preview-09-2025"

	ModelSystemInstruction = "You are a financial document assistant. Answer only from the provided document data. If the information is not available in the data, say so."

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisTranscriptStore = 0

	RedisTranscriptStoreTTL = 24 * time.Hour
)

// NoAuthBypass should be true only for local development
const NoAuthBypass = true

var (
	AuthToken     = os.Getenv("FINDOC_AUTH_TOKEN")
	RedisPassword = os.Getenv("REDIS_PASSWORD")

	LLMProvider = getEnvOrDefault("FINDOC_LLM_PROVIDER", LLMProviderOpenAI)
	LLMBaseURL  = getEnvOrDefault("FINDOC_LLM_BASE_URL", DefaultLLMBaseURL)
	LLMModel    = getEnvOrDefault("FINDOC_LLM_MODEL", DefaultLLMModel)
	LLMAPIKey   = os.Getenv("FINDOC_LLM_API_KEY")
)

func getEnvOrDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
