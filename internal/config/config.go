package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	ServerPort int    `env:"PORT" envDefault:"8080"`
	MongoURI   string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB    string `env:"MONGODB_DB" envDefault:"staffdesk"`
	JWTSecret  string `env:"JWT_SECRET" envDefault:"devsecret"`
	UploadDir  string `env:"UPLOAD_DIR" envDefault:"./uploads"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ProtectEmployeeRoutes reports whether the employee routes require a bearer
// token. It reads the environment on every call so the flag can be flipped
// without restarting the process. Absent or unparsable values mean disabled.
func ProtectEmployeeRoutes() bool {
	v, err := strconv.ParseBool(os.Getenv("PROTECT_EMP_ROUTES"))
	if err != nil {
		return false
	}
	return v
}
