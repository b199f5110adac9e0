// Package config provides application configuration loaded from environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diewo77/go-srm/auth"
	"github.com/diewo77/go-srm/pdf"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Company  CompanyConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// DatabaseConfig holds connection settings. Driver is "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	Debug      bool
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev        bool
	Migrations bool
	LogLevel   string
	LogFormat  string
}

type AuthConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool
}

// RedisConfig enables the audit stream when Addr is set.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	AuditStream  string
	StreamMaxLen int
}

// CompanyConfig is the issuer printed on invoices.
type CompanyConfig struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
	Email        string
	Phone        string
}

// DSN returns the PostgreSQL connection string in key=value format.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL returns the PostgreSQL connection string in URL format.
func (d DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// PDF converts the company settings to the invoice header.
func (c CompanyConfig) PDF() pdf.Company {
	company := pdf.Company{Name: c.Name, Email: c.Email, Phone: c.Phone}
	for _, line := range []string{c.AddressLine1, c.AddressLine2} {
		if line != "" {
			company.Address = append(company.Address, line)
		}
	}
	return company
}

// Load reads configuration from environment variables.
// It uses sensible defaults for local development.
func Load() *Config {
	company := pdf.DefaultCompany()
	line := func(i int) string {
		if i < len(company.Address) {
			return company.Address[i]
		}
		return ""
	}
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "srm"),
			Password:   getEnv("DB_PASSWORD", "srm123"),
			DBName:     getEnv("DB_NAME", "srm"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "srm.db"),
			Debug:      getEnvBool("DB_DEBUG", false),
		},
		App: AppConfig{
			Dev:        getEnvBool("DEV", true),
			Migrations: getEnvBool("MIGRATIONS", false),
			LogLevel:   getEnv("LOG_LEVEL", "info"),
			LogFormat:  getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			SessionSecret: getEnv("SESSION_SECRET", auth.DefaultSecret),
			SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
			SecureCookies: getEnvBool("SECURE_COOKIES", false),
		},
		Redis: RedisConfig{
			Addr:         getEnv("REDIS_ADDR", ""),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvInt("REDIS_DB", 0),
			AuditStream:  getEnv("AUDIT_STREAM", "srm:audit"),
			StreamMaxLen: getEnvInt("AUDIT_STREAM_MAXLEN", 100000),
		},
		Company: CompanyConfig{
			Name:         getEnv("COMPANY_NAME", company.Name),
			AddressLine1: getEnv("COMPANY_ADDRESS_LINE1", line(0)),
			AddressLine2: getEnv("COMPANY_ADDRESS_LINE2", line(1)),
			Email:        getEnv("COMPANY_EMAIL", company.Email),
			Phone:        getEnv("COMPANY_PHONE", company.Phone),
		},
	}
}

var ErrDefaultSecret = errors.New("SESSION_SECRET must be set outside development")

// Validate rejects settings that are unsafe or unusable.
func (c *Config) Validate() error {
	if !c.App.Dev && c.Auth.SessionSecret == auth.DefaultSecret {
		return ErrDefaultSecret
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Auth.SessionTTL)
	}
	return nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

// getEnvDuration parses values like "12h" or "30m".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
