package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "5000"
	defaultMongoDB   = "carDoctor"
	defaultMongoHost = "cluster0.t2hcl8v.mongodb.net"
	defaultEnvFile   = ".env"
	defaultOrigin    = "http://localhost:5173"
)

// Config is read once at startup and passed to whatever needs it.
type Config struct {
	Port           string
	JWTSecret      string
	MongoURI       string
	MongoDBName    string
	MySQLDSN       string
	AllowedOrigins []string
	LogLevel       string
}

// Load reads the env file named by ENV_FILE (".env" by default) if it
// exists, then builds the Config from the environment.
func Load() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{
		Port:           getenv("PORT", defaultPort),
		JWTSecret:      os.Getenv("ACCESS_TOKEN_SECRET"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDBName:    getenv("MONGO_DB_NAME", defaultMongoDB),
		MySQLDSN:       os.Getenv("MYSQL_DSN"),
		AllowedOrigins: splitList(getenv("CORS_ORIGINS", defaultOrigin)),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}

	if cfg.MongoURI == "" {
		user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
		if user != "" && pass != "" {
			cfg.MongoURI = atlasURI(user, pass, getenv("MONGO_HOST", defaultMongoHost))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is not set in environment")
	}
	if c.MongoURI == "" {
		return errors.New("MONGO_URI (or DB_USER and DB_PASS) is not set in environment")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// CredentialsEnabled reports whether logins are checked against MySQL.
func (c *Config) CredentialsEnabled() bool {
	return c.MySQLDSN != ""
}

func atlasURI(user, pass, host string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
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
