package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds the environment-driven settings for the app.
type Config struct {
	// DatabaseURL is the Heroku Postgres connection string.
	DatabaseURL string

	// SecretKey signs session cookies and CSRF tokens. When unset, a fresh
	// high-entropy value is generated at startup; it does not survive a
	// restart, so outstanding form tokens are invalidated whenever the
	// process restarts without an explicit SECRET_KEY.
	SecretKey string

	// Port the HTTP server listens on.
	Port string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")

	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	secret := v.GetString("SECRET_KEY")
	if secret == "" {
		var err error
		secret, err = randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
	}

	return &Config{
		DatabaseURL: dbURL,
		SecretKey:   secret,
		Port:        v.GetString("PORT"),
	}, nil
}

// InitPostgres opens the Heroku Postgres database. No migration runs here:
// the contact table's schema is owned by Heroku Connect and must not be
// altered by this app.
func InitPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
