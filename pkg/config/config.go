package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini   = "gemini"
	ProviderGigaChat = "gigachat"

	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Server ServerConfig
	AI     AIConfig
	Store  StoreConfig
	Logger LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AIConfig struct {
	Provider string
	Timeout  time.Duration
	Gemini   GeminiConfig
	GigaChat GigaChatConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string // override for tests, empty means the public endpoint
}

type GigaChatConfig struct {
	APIKey             string
	Model              string
	Scope              string
	InsecureSkipVerify bool
}

type StoreConfig struct {
	Backend      string
	HistoryLimit int
	Supabase     SupabaseConfig
	Database     DatabaseConfig
}

type SupabaseConfig struct {
	URL string
	Key string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string // full connection string, overrides the parts above
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	aiTimeout, _ := strconv.Atoi(getEnv("AI_TIMEOUT", "60"))
	historyLimit, _ := strconv.Atoi(getEnv("HISTORY_LIMIT", "5"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		AI: AIConfig{
			Provider: getEnv("AI_PROVIDER", ProviderGemini),
			Timeout:  time.Duration(aiTimeout) * time.Second,
			Gemini: GeminiConfig{
				APIKey:  getEnv("GEMINI_API_KEY", ""),
				Model:   getEnv("GEMINI_MODEL", "gemini-pro"),
				BaseURL: getEnv("GEMINI_BASE_URL", ""),
			},
			GigaChat: GigaChatConfig{
				APIKey:             getEnv("GIGACHAT_API_KEY", ""),
				Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
				Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
				InsecureSkipVerify: insecureSkipVerify,
			},
		},
		Store: StoreConfig{
			Backend:      getEnv("STORE_BACKEND", BackendSupabase),
			HistoryLimit: historyLimit,
			Supabase: SupabaseConfig{
				URL: getEnv("SUPABASE_URL", ""),
				Key: getEnv("SUPABASE_KEY", ""),
			},
			Database: DatabaseConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnv("DB_PORT", "5432"),
				User:     getEnv("DB_USER", "postgres"),
				Password: getEnv("DB_PASSWORD", "postgres"),
				DBName:   getEnv("DB_NAME", "scent_matcher"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
				DSN:      getEnv("DB_DSN", ""),
			},
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate enforces the fatal-absence rules: secrets carry no defaults and
// the process must not start without the ones its configuration selects.
func (c *Config) validate() error {
	switch c.AI.Provider {
	case ProviderGemini:
		if c.AI.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when AI_PROVIDER=%s", ProviderGemini)
		}
	case ProviderGigaChat:
		if c.AI.GigaChat.APIKey == "" {
			return fmt.Errorf("GIGACHAT_API_KEY is required when AI_PROVIDER=%s", ProviderGigaChat)
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AI.Provider)
	}

	switch c.Store.Backend {
	case BackendSupabase:
		if c.Store.Supabase.URL == "" {
			return fmt.Errorf("SUPABASE_URL is required when STORE_BACKEND=%s", BackendSupabase)
		}
		if c.Store.Supabase.Key == "" {
			return fmt.Errorf("SUPABASE_KEY is required when STORE_BACKEND=%s", BackendSupabase)
		}
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
