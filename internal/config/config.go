package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides application configuration.
var Module = fx.Provide(Load)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	SiteURL       string
	WhatsAppPhone string

	AdminPassword      string
	AdminSessionSecret string
	AuthCookieSecure   bool

	CatalogFile string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int

	ImageStorageProvider string
	CloudinaryURL        string
	CloudinaryFolder     string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:     getenv("APP_SERVICE", "storefront"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: environment,
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),

		SiteURL:       getenv("SITE_URL", "https://itechperu.pe"),
		WhatsAppPhone: getenv("WHATSAPP_PHONE", "51987654321"),

		AdminPassword:      strings.TrimSpace(getenv("ADMIN_PASSWORD", "")),
		AdminSessionSecret: strings.TrimSpace(getenv("ADMIN_SESSION_SECRET", "")),
		AuthCookieSecure:   authCookieSecure,

		CatalogFile: getenv("CATALOG_FILE", "./data/products.json"),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            strings.TrimSpace(getenv("DATABASE_HOST", "")),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            strings.TrimSpace(getenv("DATABASE_NAME", "")),
		DBUser:            strings.TrimSpace(getenv("DATABASE_USER", "")),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 10),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 3600),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 600),

		ImageStorageProvider: strings.ToLower(strings.TrimSpace(getenv("IMAGE_STORAGE_PROVIDER", "cloudinary"))),
		CloudinaryURL:        strings.TrimSpace(getenv("CLOUDINARY_URL", "")),
		CloudinaryFolder:     getenv("CLOUDINARY_UPLOAD_FOLDER", "products"),
	}
}

// CatalogBackendConfigured reports whether the remote document store
// credential triple is present. Backend selection happens once at startup.
func (c Config) CatalogBackendConfigured() bool {
	return c.DBHost != "" && c.DBName != "" && c.DBUser != ""
}

// AdminPasswordConfigured reports whether the admin panel can accept logins.
func (c Config) AdminPasswordConfigured() bool {
	return c.AdminPassword != ""
}

// SessionSecret returns the HMAC key for admin session tokens.
func (c Config) SessionSecret() string {
	if c.AdminSessionSecret != "" {
		return c.AdminSessionSecret
	}
	if c.AdminPassword != "" {
		return c.AdminPassword
	}
	return "change-this-admin-secret"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
