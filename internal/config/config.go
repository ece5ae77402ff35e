package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB      DBConfig
	Server  ServerConfig
	JWT     JWTConfig
	Seeder  SeederConfig
	Storage StorageConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "wayfinder" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// JWTConfig holds settings for verifying bearer tokens issued by the
// external auth provider
type JWTConfig struct {
	Secret []byte
	Issuer string
}

// SeederConfig holds settings for the geographic catalog import
type SeederConfig struct {
	DataDir   string
	BatchSize int
}

// StorageConfig holds settings for the blob store keeping uploaded images
type StorageConfig struct {
	MediaDir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "wayfinder"),
			Password: getEnv("DB_PASSWORD", "wayfinder_password"),
			Name:     getEnv("DB_NAME", "wayfinder"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		JWT: JWTConfig{
			Secret: []byte(getEnv("JWT_SECRET", "")),
			Issuer: getEnv("JWT_ISSUER", "wayfinder-auth"),
		},
		Seeder: SeederConfig{
			DataDir:   getEnv("SEEDER_DATA_DIR", "data"),
			BatchSize: getEnvAsInt("SEEDER_BATCH_SIZE", 1000),
		},
		Storage: StorageConfig{
			MediaDir: getEnv("MEDIA_DIR", "media"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
