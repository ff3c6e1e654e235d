package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm" validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name" validate:"required"`

	// MaxRetries bounds the retry loop for transient API failures.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0,lte=10"`

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=1,lte=60"`

	// TimeoutSeconds caps each generation call; the pipeline fails with a
	// timeout error rather than waiting indefinitely.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=1,lte=600"`
}

// GenerationConfig contains the pipeline's tunable parameters.
type GenerationConfig struct {
	// DefaultCardCount is used when a request does not specify a count.
	DefaultCardCount int `mapstructure:"default_card_count" validate:"gte=1"`

	// MaxInputChars is the character budget for one generation cycle.
	// Larger normalized texts are rejected, never silently truncated.
	MaxInputChars int `mapstructure:"max_input_chars" validate:"gte=100"`

	// ChunkSize is the per-prompt character budget for long texts.
	ChunkSize int `mapstructure:"chunk_size" validate:"gte=100"`

	// MaxStoredDecks bounds the in-memory deck store.
	MaxStoredDecks int `mapstructure:"max_stored_decks" validate:"gte=1"`
}
