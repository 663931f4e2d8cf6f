package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for the optional config file.
const DefaultPath = "config/config.yaml"

// File-based configuration. Values from the file are exported into
// environment variables so the rest of the app only reads the environment.
// Keys map to env vars as follows:
//
//	listen            -> LISTEN (e.g. :8080)
//	backend           -> BACKEND (postgres|rest)
//	database_url      -> DATABASE_URL
//	supabase_url      -> SUPABASE_URL
//	supabase_anon_key -> SUPABASE_ANON_KEY
//	projects_limit    -> PROJECTS_LIMIT
//	auto_migrate      -> AUTO_MIGRATE ("1" to enable)
//	log               -> LOG ("1" to enable)
//	log_level         -> LOG_LEVEL (debug|info|error|off)
type file struct {
	Listen          string `yaml:"listen"`
	Backend         string `yaml:"backend"`
	DatabaseURL     string `yaml:"database_url"`
	SupabaseURL     string `yaml:"supabase_url"`
	SupabaseAnonKey string `yaml:"supabase_anon_key"`
	ProjectsLimit   string `yaml:"projects_limit"`
	AutoMigrate     string `yaml:"auto_migrate"`
	Log             string `yaml:"log"`
	LogLevel        string `yaml:"log_level"`
}

const (
	BackendPostgres = "postgres"
	BackendREST     = "rest"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	Listen          string
	Backend         string
	DatabaseURL     string
	SupabaseURL     string
	SupabaseAnonKey string
	ProjectsLimit   int
	AutoMigrate     bool
	Version         string
}

func setEnvIfNotEmpty(key, val string) {
	if val == "" {
		return
	}
	// Real environment wins over the file.
	if _, ok := os.LookupEnv(key); ok {
		return
	}
	_ = os.Setenv(key, val)
}

// Load reads the config file at path and the .env file in the working
// directory and exports their values to the environment. A missing file is
// not an error; a malformed one is.
func Load(path string) error {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var c file
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	setEnvIfNotEmpty("LISTEN", c.Listen)
	setEnvIfNotEmpty("BACKEND", c.Backend)
	setEnvIfNotEmpty("DATABASE_URL", c.DatabaseURL)
	setEnvIfNotEmpty("SUPABASE_URL", c.SupabaseURL)
	setEnvIfNotEmpty("SUPABASE_ANON_KEY", c.SupabaseAnonKey)
	setEnvIfNotEmpty("PROJECTS_LIMIT", c.ProjectsLimit)
	setEnvIfNotEmpty("AUTO_MIGRATE", c.AutoMigrate)
	setEnvIfNotEmpty("LOG", c.Log)
	setEnvIfNotEmpty("LOG_LEVEL", c.LogLevel)
	return nil
}

// FromEnv builds Settings from the environment, applying defaults.
func FromEnv() (*Settings, error) {
	limit, err := getEnvAsInt("PROJECTS_LIMIT", 100)
	if err != nil {
		return nil, err
	}
	s := &Settings{
		Listen:          getEnv("LISTEN", ":8080"),
		Backend:         strings.ToLower(strings.TrimSpace(os.Getenv("BACKEND"))),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SupabaseURL:     strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		ProjectsLimit:   limit,
		AutoMigrate:     os.Getenv("AUTO_MIGRATE") == "1",
		Version:         getEnv("APP_VERSION", "1.0.0"),
	}
	if s.Backend == "" {
		// The REST gateway is what the hosted service hands out first.
		if s.SupabaseURL != "" {
			s.Backend = BackendREST
		} else {
			s.Backend = BackendPostgres
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Listen == "" {
		return fmt.Errorf("LISTEN is required")
	}
	if s.ProjectsLimit <= 0 {
		return fmt.Errorf("PROJECTS_LIMIT must be positive, got %d", s.ProjectsLimit)
	}
	switch s.Backend {
	case BackendPostgres:
		if s.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s backend", BackendPostgres)
		}
	case BackendREST:
		if s.SupabaseURL == "" || s.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY are required for the %s backend", BackendREST)
		}
	default:
		return fmt.Errorf("unknown BACKEND %q", s.Backend)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, valueStr)
	}
	return value, nil
}
