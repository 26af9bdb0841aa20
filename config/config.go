package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// DataDir holds the per-user tracker files, the credential file, and the
	// sync marker. It must be (the root of) the git working copy when sync is
	// enabled.
	DataDir     string
	FrontendURL string
	// Session token settings
	JWTSecret   string
	JWTTTLHours int
	// Git sync settings; all three of token, identity, and repo are required
	// together or sync is skipped.
	GitToken     string
	GitIdentity  string
	GitRepo      string // owner/name on the remote host
	GitRemoteURL string // optional explicit remote URL, overrides GitRepo
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DataDir:      getEnv("DATA_DIR", "."),
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTTTLHours:  getEnvInt("JWT_TTL_HOURS", 12),
		GitToken:     getEnv("GITHUB_TOKEN", ""),
		GitIdentity:  getEnv("GIT_USERNAME", ""),
		GitRepo:      getEnv("GIT_REPO", ""),
		GitRemoteURL: getEnv("GIT_REMOTE_URL", ""),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Logins will fail until it is set.")
	}

	if cfg.GitToken == "" || cfg.GitIdentity == "" || (cfg.GitRepo == "" && cfg.GitRemoteURL == "") {
		log.Println("WARNING: GITHUB_TOKEN, GIT_USERNAME, or GIT_REPO not configured. Remote sync is disabled.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
