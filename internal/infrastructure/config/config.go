package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/nebiyou-tadesse/go-user-service/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL        string
	AccessTokenExpiry time.Duration
	UploadFolder      string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:        getEnv("APP_BASE_URL", "http://localhost:8080"),
		AccessTokenExpiry: time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)), // 1 hour
		UploadFolder:      getEnv("PROFILE_PICTURE_FOLDER", "profile_pictures"),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetUploadFolder returns the media-host folder for profile pictures.
func (c *Config) GetUploadFolder() string {
	return c.UploadFolder
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
