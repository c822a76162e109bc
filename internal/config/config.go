package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	DefaultAuthPort          = "5000"
	DefaultSolicitudesPort   = "5001"
	DefaultSOAPCalculatorURL = "http://www.dneonline.com/calculator.asmx"
)

// AuthConfig is the auth service configuration, loaded once at startup
type AuthConfig struct {
	DB         DBConfig
	SecretKey  string
	ServerPort string
}

// SolicitudesConfig is the solicitudes service configuration, loaded once at startup
type SolicitudesConfig struct {
	DB                DBConfig
	AuthServiceURL    string
	SOAPCalculatorURL string
	ServerPort        string
}

// LoadAuthConfig reads the auth service configuration from environment variables
func LoadAuthConfig() (AuthConfig, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return AuthConfig{}, fmt.Errorf("DATABASE_URL not set in environment")
	}
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return AuthConfig{}, fmt.Errorf("SECRET_KEY not set in environment")
	}

	return AuthConfig{
		DB:         DBConfig{DSN: dsn},
		SecretKey:  secret,
		ServerPort: getEnv("SERVER_PORT", DefaultAuthPort),
	}, nil
}

// LoadSolicitudesConfig reads the solicitudes service configuration from environment variables
func LoadSolicitudesConfig() (SolicitudesConfig, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return SolicitudesConfig{}, fmt.Errorf("DATABASE_URL not set in environment")
	}
	authURL := os.Getenv("AUTH_SERVICE_URL")
	if authURL == "" {
		return SolicitudesConfig{}, fmt.Errorf("AUTH_SERVICE_URL not set in environment")
	}

	return SolicitudesConfig{
		DB:                DBConfig{DSN: dsn},
		AuthServiceURL:    strings.TrimRight(authURL, "/"),
		SOAPCalculatorURL: getEnv("SOAP_CALCULATOR_URL", DefaultSOAPCalculatorURL),
		ServerPort:        getEnv("SERVER_PORT", DefaultSolicitudesPort),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
